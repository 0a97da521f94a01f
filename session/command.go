package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/timewinder-dev/rewinder/cas"
	"github.com/timewinder-dev/rewinder/vm"
)

type CommandKind int

const (
	NoCommand CommandKind = iota
	AddCommand
	CurrentCommand
	QueueCommand
	ForwardCommand
	RunCommand
	BackCommand
	PrintCommand
	HistoryCommand
	CheckpointCommand
	RestoreCommand
	HelpCommand
	ExitCommand
)

func (k CommandKind) String() string {
	switch k {
	case NoCommand:
		return "none"
	case AddCommand:
		return "add"
	case CurrentCommand:
		return "current"
	case QueueCommand:
		return "queue"
	case ForwardCommand:
		return "forward"
	case RunCommand:
		return "run"
	case BackCommand:
		return "back"
	case PrintCommand:
		return "print"
	case HistoryCommand:
		return "history"
	case CheckpointCommand:
		return "checkpoint"
	case RestoreCommand:
		return "restore"
	case HelpCommand:
		return "help"
	case ExitCommand:
		return "exit"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

type Command struct {
	Kind CommandKind
	// Ops and ParseErrs are filled for AddCommand.
	Ops       []vm.Op
	ParseErrs []vm.ParseError
	// Count is the number of steps for BackCommand.
	Count int
	// Checkpoint is the target of RestoreCommand.
	Checkpoint cas.Hash
}

// UsageError is a malformed command line. Front ends report it and carry on
// in both shell and script modes.
type UsageError struct {
	Msg string
}

func (u *UsageError) Error() string {
	return u.Msg
}

func usagef(format string, args ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// ParseCommand parses one line of shell or script input. Blank lines and
// lines starting with '#' parse to NoCommand.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Command{Kind: NoCommand}, nil
	}
	name, args, _ := strings.Cut(line, " ")
	name = strings.ToLower(name)
	args = strings.TrimSpace(args)

	switch name {
	case "add", "add-instruction":
		ops, errs := vm.ParseOps(args)
		return Command{Kind: AddCommand, Ops: ops, ParseErrs: errs}, nil
	case "current", "current-instruction":
		return Command{Kind: CurrentCommand}, nil
	case "queue":
		return Command{Kind: QueueCommand}, nil
	case "forward":
		return Command{Kind: ForwardCommand}, nil
	case "run":
		return Command{Kind: RunCommand}, nil
	case "back":
		n := 1
		if args != "" {
			v, err := strconv.Atoi(args)
			if err != nil || v < 1 {
				return Command{}, usagef("back takes a positive count, got '%s'", args)
			}
			n = v
		}
		return Command{Kind: BackCommand, Count: n}, nil
	case "print", "stack":
		return Command{Kind: PrintCommand}, nil
	case "history":
		return Command{Kind: HistoryCommand}, nil
	case "checkpoint":
		return Command{Kind: CheckpointCommand}, nil
	case "restore":
		if args == "" {
			return Command{}, usagef("restore requires a checkpoint id")
		}
		h, err := cas.ParseHash(args)
		if err != nil {
			return Command{}, usagef("invalid checkpoint id '%s'", args)
		}
		return Command{Kind: RestoreCommand, Checkpoint: h}, nil
	case "help":
		return Command{Kind: HelpCommand}, nil
	case "exit", "quit":
		return Command{Kind: ExitCommand}, nil
	}
	return Command{}, usagef("Unknown command: '%s'", name)
}
