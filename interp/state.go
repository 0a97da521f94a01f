package interp

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/shamaton/msgpack/v2"
	"github.com/timewinder-dev/rewinder/vm"
)

// Snapshot is a deep copy of an interpreter's queue, stack and history.
// Callers wanting transactional batches take one before Run and Restore it
// on failure.
type Snapshot struct {
	Queue   []vm.Op
	Stack   []int32
	History []HistoryEntry
}

func (in *Interpreter) Snapshot() *Snapshot {
	return &Snapshot{
		Queue:   in.Instructions(),
		Stack:   in.Stack(),
		History: in.History(),
	}
}

// Restore replaces the interpreter's state with a copy of s.
func (in *Interpreter) Restore(s *Snapshot) {
	in.queue.Clear()
	in.AddInstructions(s.Queue...)
	in.stack = slices.Clone(s.Stack)
	in.history = make([]HistoryEntry, len(s.History))
	for i, h := range s.History {
		in.history[i] = h.Clone()
	}
}

func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Queue: slices.Clone(s.Queue),
		Stack: slices.Clone(s.Stack),
	}
	for _, h := range s.History {
		out.History = append(out.History, h.Clone())
	}
	return out
}

func (s *Snapshot) Serialize(w io.Writer) error {
	return msgpack.MarshalWrite(w, s)
}

func (s *Snapshot) Deserialize(r io.Reader) error {
	return msgpack.UnmarshalRead(r, s)
}

// FormatStack renders values as "[1, 2, 3]".
func FormatStack(stack []int32) string {
	parts := make([]string, len(stack))
	for i, v := range stack {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatOps renders instructions as "[PUSH 1, ADD]".
func FormatOps(ops []vm.Op) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = op.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (h HistoryEntry) String() string {
	return fmt.Sprintf("%s popped=%s pushed=%s", h.Op, FormatStack(h.Popped), FormatStack(h.Pushed))
}
