package vm

import (
	"fmt"
	"strconv"
	"strings"
)

var keywords = map[string]Opcode{
	"PUSH": PUSH,
	"POP":  POP,
	"ADD":  ADD,
	"SUB":  SUBTRACT,
	"MUL":  MULTIPLY,
	"DIV":  DIVIDE,
}

// ParseOp parses a single instruction such as "push 5" or "ADD". Keywords
// are case-insensitive. Every failure wraps ErrInvalidCommand.
func ParseOp(s string) (Op, error) {
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return Op{}, fmt.Errorf("%w: empty instruction", ErrInvalidCommand)
	}
	kw := strings.ToUpper(tokens[0])
	code, ok := keywords[kw]
	if !ok {
		return Op{}, fmt.Errorf("%w: unknown instruction %s", ErrInvalidCommand, kw)
	}
	if code != PUSH {
		if len(tokens) != 1 {
			return Op{}, fmt.Errorf("%w: %s takes no arguments", ErrInvalidCommand, kw)
		}
		return Op{Code: code}, nil
	}
	if len(tokens) != 2 {
		return Op{}, fmt.Errorf("%w: PUSH requires one argument", ErrInvalidCommand)
	}
	v, err := strconv.ParseInt(tokens[1], 10, 32)
	if err != nil {
		return Op{}, fmt.Errorf("%w: bad PUSH argument %q", ErrInvalidCommand, tokens[1])
	}
	return Push(int32(v)), nil
}

// ParseError records one item of a ParseOps input that failed to parse.
type ParseError struct {
	Input string
	Err   error
}

func (p ParseError) Error() string {
	return fmt.Sprintf("Error parsing instruction '%s': %v", p.Input, p.Err)
}

func (p ParseError) Unwrap() error {
	return p.Err
}

// ParseOps parses a semicolon separated list of instructions. Empty items
// are skipped. Items that fail to parse are reported in errs and left out of
// ops, so the caller decides whether a partially valid line is acceptable.
func ParseOps(input string) (ops []Op, errs []ParseError) {
	for _, item := range strings.Split(input, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		op, err := ParseOp(item)
		if err != nil {
			errs = append(errs, ParseError{Input: item, Err: err})
			continue
		}
		ops = append(ops, op)
	}
	return ops, errs
}
