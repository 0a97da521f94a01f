package vm

import "fmt"

// Op is a single instruction. Arg is only meaningful for PUSH and is zero
// for every other opcode, so two Ops are equal exactly when they would
// execute identically.
type Op struct {
	Code Opcode
	Arg  int32
}

func Push(v int32) Op { return Op{Code: PUSH, Arg: v} }
func Pop() Op         { return Op{Code: POP} }
func Add() Op         { return Op{Code: ADD} }
func Sub() Op         { return Op{Code: SUBTRACT} }
func Mul() Op         { return Op{Code: MULTIPLY} }
func Div() Op         { return Op{Code: DIVIDE} }

func (o Op) String() string {
	if o.Code == PUSH {
		return fmt.Sprintf("%s %d", o.Code, o.Arg)
	}
	return o.Code.String()
}

// StackEffect is the Arity of the op's opcode.
func (o Op) StackEffect() (consumed, produced int) {
	return o.Code.Arity()
}
