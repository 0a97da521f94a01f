package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
)

// RunScript executes r line by line. The first runtime error is printed and
// returned wrapped with its line number; an exit command ends the script
// early without error.
func (s *Session) RunScript(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		cont, err := s.Execute(scanner.Text())
		if err != nil {
			s.ReportError(err)
			log.Debug().Str("session", s.ID).Int("line", lineNo).Err(err).Msg("script failed")
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if !cont {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading script: %w", err)
	}
	return nil
}

// LineReader is the part of *readline.Instance the shell loop needs.
type LineReader interface {
	Readline() (string, error)
}

const banner = `Reversible Stack-Based Interpreter Shell
Enter commands. Type 'help' for a list of commands. Type 'exit' or press Ctrl+D to quit.
`

// RunShell reads commands until exit, end of input or an interrupt.
// Runtime errors are printed and the loop continues.
func (s *Session) RunShell(lr LineReader) error {
	if s.config.Shell.Banner {
		s.printf("%s", banner)
	}
	for {
		line, err := lr.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			s.printf("Interrupted\n")
			return nil
		}
		if errors.Is(err, io.EOF) {
			s.printf("Exiting\n")
			return nil
		}
		if err != nil {
			return err
		}
		cont, err := s.Execute(line)
		if err != nil {
			s.ReportError(err)
			continue
		}
		if !cont {
			return nil
		}
	}
}

// NewReadline builds a line editor from the shell section of the config.
func (s *Session) NewReadline() (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          s.config.Shell.Prompt,
		HistoryFile:     s.config.Shell.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdout:          s.Out,
	})
}
