package interp

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/timewinder-dev/rewinder/vm"
)

const propertyRuns = 300

func randomValue(r *rand.Rand) int32 {
	switch r.IntN(6) {
	case 0:
		return 0
	case 1:
		return math.MaxInt32
	case 2:
		return math.MinInt32
	case 3:
		return -1
	default:
		return int32(r.Uint32())
	}
}

func randomOp(r *rand.Rand) vm.Op {
	switch r.IntN(6) {
	case 0:
		return vm.Pop()
	case 1:
		return vm.Add()
	case 2:
		return vm.Sub()
	case 3:
		return vm.Mul()
	case 4:
		return vm.Div()
	default:
		return vm.Push(randomValue(r))
	}
}

func randomProgram(r *rand.Rand) []vm.Op {
	ops := make([]vm.Op, 1+r.IntN(99))
	for i := range ops {
		ops[i] = randomOp(r)
	}
	return ops
}

func historyOps(in *Interpreter) []vm.Op {
	var out []vm.Op
	for _, h := range in.History() {
		out = append(out, h.Op)
	}
	return out
}

func TestPropertyRunNeverPanics(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < propertyRuns; i++ {
		prog := randomProgram(r)
		in := New()
		in.AddInstructions(prog...)
		require.NotPanics(t, func() {
			for in.QueueLen() > 0 {
				_ = in.Run()
			}
		})
	}
}

func TestPropertyStepRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < propertyRuns; i++ {
		prog := randomProgram(r)
		in := New()
		in.AddInstructions(prog...)
		for in.QueueLen() > 0 {
			before := in.Stack()
			histBefore := in.HistoryLen()
			op, err := in.Forward()
			if err != nil {
				require.Equal(t, before, in.Stack(), "failed %s must leave the stack alone", op)
				require.Equal(t, histBefore, in.HistoryLen())
				continue
			}
			require.Equal(t, histBefore+1, in.HistoryLen())
			require.NoError(t, in.Back())
			require.Equal(t, before, in.Stack(), "undo of %s", op)
			require.Equal(t, op, *in.Current())
			_, err = in.Forward()
			require.NoError(t, err, "re-executing %s", op)
		}
	}
}

func TestPropertyDrainRestoresProgram(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < propertyRuns; i++ {
		prog := randomProgram(r)
		in := New()
		in.AddInstructions(prog...)

		runErr := in.Run()
		executed := historyOps(in)
		if runErr == nil {
			require.Equal(t, prog, executed)
			require.Zero(t, in.QueueLen())
		} else {
			// Everything is either in history, still queued, or the one
			// instruction that failed.
			require.Equal(t, len(prog)-1, len(executed)+in.QueueLen())
		}

		for in.Back() == nil {
		}
		require.Empty(t, in.Stack())
		require.Zero(t, in.HistoryLen())

		expected := append([]vm.Op{}, executed...)
		if runErr != nil {
			expected = append(expected, prog[len(executed)+1:]...)
		}
		require.Equal(t, expected, in.Instructions())
	}
}

func TestPropertyAddition(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	for i := 0; i < propertyRuns; i++ {
		a, b := randomValue(r), randomValue(r)
		in := New()
		in.AddInstructions(vm.Push(a), vm.Push(b), vm.Add())
		err := in.Run()
		sum := int64(a) + int64(b)
		if sum > math.MaxInt32 || sum < math.MinInt32 {
			require.ErrorIs(t, err, vm.ErrArithmeticOverflow)
			require.Equal(t, []int32{a, b}, in.Stack())
		} else {
			require.NoError(t, err)
			require.Equal(t, []int32{int32(sum)}, in.Stack())
		}
	}
}

func TestPropertyMultiplication(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 10))
	for i := 0; i < propertyRuns; i++ {
		a, b := randomValue(r), randomValue(r)
		in := New()
		in.AddInstructions(vm.Push(a), vm.Push(b), vm.Mul())
		err := in.Run()
		prod := int64(a) * int64(b)
		if prod > math.MaxInt32 || prod < math.MinInt32 {
			require.ErrorIs(t, err, vm.ErrArithmeticOverflow)
			require.Equal(t, []int32{a, b}, in.Stack())
		} else {
			require.NoError(t, err)
			require.Equal(t, []int32{int32(prod)}, in.Stack())
		}
	}
}
