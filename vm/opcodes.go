package vm

import "fmt"

type Opcode uint8

const (
	// PRE-STACK ... TOS+1 TOS | OP | POST-STACK |
	PUSH     Opcode = iota // | x | x
	POP                    // A | |
	ADD                    // A B | C = A + B | C
	SUBTRACT               // A B | C = A - B | C
	MULTIPLY               // A B | C = A * B | C
	DIVIDE                 // A B | C = A / B | C
	OpcodeMax
)

func (o Opcode) String() string {
	switch o {
	case PUSH:
		return "PUSH"
	case POP:
		return "POP"
	case ADD:
		return "ADD"
	case SUBTRACT:
		return "SUB"
	case MULTIPLY:
		return "MUL"
	case DIVIDE:
		return "DIV"
	}
	return fmt.Sprintf("Opcode(%d)", uint8(o))
}

// Arity reports how many values the opcode takes off the stack and how many
// it leaves in their place.
func (o Opcode) Arity() (consumed, produced int) {
	switch o {
	case PUSH:
		return 0, 1
	case POP:
		return 1, 0
	case ADD, SUBTRACT, MULTIPLY, DIVIDE:
		return 2, 1
	}
	return 0, 0
}

func (o Opcode) IsBinary() bool {
	switch o {
	case ADD, SUBTRACT, MULTIPLY, DIVIDE:
		return true
	}
	return false
}

func (o Opcode) Valid() bool {
	return o < OpcodeMax
}
