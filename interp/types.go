package interp

import (
	"slices"

	"github.com/timewinder-dev/rewinder/vm"
)

// HistoryEntry records exactly what one executed instruction took off the
// stack and what it left there. Popped is in pop order (top of stack first).
type HistoryEntry struct {
	Op     vm.Op
	Popped []int32
	Pushed []int32
}

func (h HistoryEntry) Clone() HistoryEntry {
	return HistoryEntry{
		Op:     h.Op,
		Popped: slices.Clone(h.Popped),
		Pushed: slices.Clone(h.Pushed),
	}
}

// Interpreter is a reversible stack machine. It is not safe for concurrent
// use; callers sharing one across goroutines must serialize access.
type Interpreter struct {
	queue   Deque[vm.Op]
	stack   []int32
	history []HistoryEntry
}

func New() *Interpreter {
	return &Interpreter{}
}

// AddInstructions appends ops to the back of the pending queue.
func (in *Interpreter) AddInstructions(ops ...vm.Op) {
	for _, op := range ops {
		in.queue.PushBack(op)
	}
}

// Current returns the next instruction to execute, or nil if the queue is
// empty. Edits through the pointer change the queued instruction.
func (in *Interpreter) Current() *vm.Op {
	return in.queue.Front()
}

// Instructions returns a copy of the pending queue, front first.
func (in *Interpreter) Instructions() []vm.Op {
	return in.queue.Slice()
}

// Stack returns a copy of the value stack, bottom first. The result is
// never nil.
func (in *Interpreter) Stack() []int32 {
	out := make([]int32, len(in.stack))
	copy(out, in.stack)
	return out
}

// History returns a copy of the undo history, oldest first.
func (in *Interpreter) History() []HistoryEntry {
	out := make([]HistoryEntry, len(in.history))
	for i, h := range in.history {
		out[i] = h.Clone()
	}
	return out
}

func (in *Interpreter) QueueLen() int   { return in.queue.Len() }
func (in *Interpreter) StackLen() int   { return len(in.stack) }
func (in *Interpreter) HistoryLen() int { return len(in.history) }

func (in *Interpreter) push(v int32) {
	in.stack = append(in.stack, v)
}

func (in *Interpreter) pop() (int32, bool) {
	if len(in.stack) == 0 {
		return 0, false
	}
	v := in.stack[len(in.stack)-1]
	in.stack = in.stack[:len(in.stack)-1]
	return v, true
}
