package interp

import (
	"math"

	"github.com/rs/zerolog/log"
	"github.com/timewinder-dev/rewinder/vm"
)

// Forward executes the instruction at the front of the queue.
//
// The instruction leaves the queue whether or not it succeeds. On failure no
// history is recorded and the stack is left as it was before the call.
func (in *Interpreter) Forward() (vm.Op, error) {
	op, ok := in.queue.PopFront()
	if !ok {
		log.Trace().Msg("Forward: empty queue")
		return vm.Op{}, vm.ErrNoInstructions
	}

	log.Trace().
		Str("op", op.String()).
		Int("queue_len", in.queue.Len()).
		Interface("stack", in.stack).
		Msg("Forward: executing instruction")

	switch op.Code {
	case vm.PUSH:
		in.push(op.Arg)
		in.record(op, nil, []int32{op.Arg})
		log.Trace().Int32("value", op.Arg).Interface("stack", in.stack).Msg("  PUSH")
	case vm.POP:
		v, ok := in.pop()
		if !ok {
			log.Trace().Err(vm.ErrStackUnderflow).Msg("  POP: error")
			return op, vm.ErrStackUnderflow
		}
		in.record(op, []int32{v}, nil)
		log.Trace().Int32("value", v).Interface("stack", in.stack).Msg("  POP")
	case vm.ADD, vm.SUBTRACT, vm.MULTIPLY, vm.DIVIDE:
		if len(in.stack) < 2 {
			log.Trace().Str("op", op.Code.String()).Err(vm.ErrStackUnderflow).Msg("  BINARY_OP: error")
			return op, vm.ErrStackUnderflow
		}
		b, _ := in.pop()
		a, _ := in.pop()
		v, err := arith(op.Code, a, b)
		if err != nil {
			in.push(a)
			in.push(b)
			log.Trace().Str("op", op.Code.String()).Int32("a", a).Int32("b", b).Err(err).Msg("  BINARY_OP: error")
			return op, err
		}
		in.push(v)
		in.record(op, []int32{b, a}, []int32{v})
		log.Trace().Str("op", op.Code.String()).Int32("a", a).Int32("b", b).Int32("result", v).Interface("stack", in.stack).Msg("  BINARY_OP")
	default:
		log.Trace().Str("op", op.String()).Msg("Forward: unknown opcode")
		return op, vm.ErrInvalidCommand
	}
	return op, nil
}

func (in *Interpreter) record(op vm.Op, popped, pushed []int32) {
	in.history = append(in.history, HistoryEntry{
		Op:     op,
		Popped: popped,
		Pushed: pushed,
	})
}

// arith applies a binary opcode with checked 32-bit semantics. Division
// truncates toward zero.
func arith(code vm.Opcode, a, b int32) (int32, error) {
	x, y := int64(a), int64(b)
	var r int64
	switch code {
	case vm.ADD:
		r = x + y
	case vm.SUBTRACT:
		r = x - y
	case vm.MULTIPLY:
		r = x * y
	case vm.DIVIDE:
		if y == 0 {
			return 0, vm.ErrDivideByZero
		}
		r = x / y
	default:
		return 0, vm.ErrInvalidCommand
	}
	if r < math.MinInt32 || r > math.MaxInt32 {
		return 0, vm.ErrArithmeticOverflow
	}
	return int32(r), nil
}
