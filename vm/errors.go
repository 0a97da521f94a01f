package vm

import "fmt"

// RuntimeError is the closed set of failures the interpreter and its
// instruction parser can report. Values are comparable, so errors.Is works
// against the Err* constants even through fmt.Errorf wrapping.
type RuntimeError uint8

const (
	ErrDivideByZero RuntimeError = iota + 1
	ErrStackUnderflow
	ErrNoInstructions
	ErrArithmeticOverflow
	ErrInvalidCommand
)

func (e RuntimeError) Error() string {
	switch e {
	case ErrDivideByZero:
		return "divide by zero"
	case ErrStackUnderflow:
		return "stack underflow"
	case ErrNoInstructions:
		return "no instructions"
	case ErrArithmeticOverflow:
		return "arithmetic overflow"
	case ErrInvalidCommand:
		return "invalid command"
	}
	return fmt.Sprintf("runtime error %d", uint8(e))
}

// String returns the kind name, e.g. "StackUnderflow".
func (e RuntimeError) String() string {
	switch e {
	case ErrDivideByZero:
		return "DivideByZero"
	case ErrStackUnderflow:
		return "StackUnderflow"
	case ErrNoInstructions:
		return "NoInstructions"
	case ErrArithmeticOverflow:
		return "ArithmeticOverflow"
	case ErrInvalidCommand:
		return "InvalidCommand"
	}
	return fmt.Sprintf("RuntimeError(%d)", uint8(e))
}
