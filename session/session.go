package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/timewinder-dev/rewinder/cas"
	"github.com/timewinder-dev/rewinder/interp"
)

// Session binds an interpreter to an output stream and a checkpoint store.
// It is what both the interactive shell and the script runner drive.
type Session struct {
	ID     string
	Interp *interp.Interpreter
	Store  cas.CAS
	Out    io.Writer

	config *Config
	style  style
}

func New(cfg *Config, out io.Writer) *Session {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	var store cas.CAS = cas.NewMemoryCAS()
	if cfg.Checkpoints.CacheSize > 0 {
		store = cas.NewLRUCache(store, cfg.Checkpoints.CacheSize)
	}
	s := &Session{
		ID:     uuid.NewString(),
		Interp: interp.New(),
		Store:  store,
		Out:    out,
		config: cfg,
		style:  style{enabled: cfg.Output.Color},
	}
	log.Debug().Str("session", s.ID).Bool("color", cfg.Output.Color).Int("cache_size", cfg.Checkpoints.CacheSize).Msg("session started")
	return s
}

func (s *Session) Config() *Config {
	return s.config
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.Out, format, args...)
}

// Execute parses and runs one line. It returns false once the line asks to
// exit. Malformed lines are reported on Out and are not errors; the returned
// error is always an interpreter or checkpoint failure.
func (s *Session) Execute(line string) (bool, error) {
	cmd, err := ParseCommand(line)
	if err != nil {
		var usage *UsageError
		if errors.As(err, &usage) {
			s.printf("%s\n", s.style.warn(usage.Msg))
			return true, nil
		}
		return true, err
	}
	if cmd.Kind == ExitCommand {
		return false, nil
	}
	return true, s.ExecuteCommand(cmd)
}

func (s *Session) ExecuteCommand(cmd Command) error {
	if cmd.Kind != NoCommand {
		log.Debug().Str("session", s.ID).Str("command", cmd.Kind.String()).Msg("executing command")
	}
	in := s.Interp
	switch cmd.Kind {
	case NoCommand, ExitCommand:
	case AddCommand:
		for _, pe := range cmd.ParseErrs {
			s.printf("%s\n", s.style.warn(pe.Error()))
		}
		if len(cmd.Ops) == 0 {
			s.printf("%s\n", s.style.warn("No valid instructions provided"))
			return nil
		}
		in.AddInstructions(cmd.Ops...)
		s.printf("Instructions added.\n")
	case CurrentCommand:
		if op := in.Current(); op != nil {
			s.printf("Current instruction: %s\n", s.style.op(op.String()))
		} else {
			s.printf("No instructions in the queue.\n")
		}
	case QueueCommand:
		s.printf("Instruction queue: %s\n", interp.FormatOps(in.Instructions()))
	case ForwardCommand:
		op, err := in.Forward()
		if err != nil {
			return err
		}
		s.printf("Executed %s. Stack: %s\n", s.style.op(op.String()), s.stack())
	case RunCommand:
		if err := in.Run(); err != nil {
			return err
		}
		s.printf("All instructions executed. Stack: %s\n", s.stack())
	case BackCommand:
		n, err := in.BackN(max(cmd.Count, 1))
		if n > 1 || (n == 1 && err != nil) {
			s.printf("Reversed %d instructions. Stack: %s\n", n, s.stack())
		} else if n == 1 {
			s.printf("Reversed last instruction. Stack: %s\n", s.stack())
		}
		if err != nil {
			return err
		}
	case PrintCommand:
		s.printf("Stack: %s\n", s.stack())
	case HistoryCommand:
		hist := in.History()
		if len(hist) == 0 {
			s.printf("History is empty.\n")
			return nil
		}
		s.printf("History (oldest first):\n")
		for i, h := range hist {
			s.printf("  %d: %s\n", i+1, h)
		}
	case CheckpointCommand:
		h, err := s.Store.Put(in.Snapshot())
		if err != nil {
			return fmt.Errorf("saving checkpoint: %w", err)
		}
		log.Debug().Str("session", s.ID).Str("checkpoint", h.String()).Msg("checkpoint saved")
		s.printf("Checkpoint %s saved.\n", s.style.id(h.String()))
	case RestoreCommand:
		snap, err := cas.Retrieve[interp.Snapshot](s.Store, cmd.Checkpoint)
		if err != nil {
			return fmt.Errorf("restoring checkpoint: %w", err)
		}
		in.Restore(snap)
		s.printf("Restored checkpoint %s. Stack: %s\n", s.style.id(cmd.Checkpoint.String()), s.stack())
	case HelpCommand:
		s.printf("%s", helpText)
	default:
		return fmt.Errorf("unhandled command %s", cmd.Kind)
	}
	return nil
}

// ReportError prints a runtime failure the way both front ends show it.
func (s *Session) ReportError(err error) {
	s.printf("%s %v\n", s.style.err("Error:"), err)
}

func (s *Session) stack() string {
	return s.style.stack(interp.FormatStack(s.Interp.Stack()))
}

const helpText = `Available commands:
  add <instructions>      - Add instructions to the interpreter's queue
                            Instructions are separated by semicolons (;)
  current                 - Show the current instruction in the queue
  queue                   - Show the instruction queue
  forward                 - Execute the next instruction
  run                     - Execute all instructions
  back [n]                - Reverse the last n executed instructions (default 1)
  print                   - Display the current state of the stack
  history                 - Show executed instructions that can be reversed
  checkpoint              - Save the interpreter state and print its id
  restore <id>            - Return to a saved checkpoint
  help                    - Display this help message
  exit                    - Exit

Instructions:
  PUSH <value>            - Push a 32-bit integer onto the stack
  POP                     - Pop a value from the stack
  ADD                     - Add the top two values on the stack
  SUB                     - Subtract the top value from the one below it
  MUL                     - Multiply the top two values on the stack
  DIV                     - Divide the second value by the top value
`
