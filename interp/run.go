package interp

import (
	"github.com/rs/zerolog/log"
	"github.com/timewinder-dev/rewinder/vm"
)

// Run executes queued instructions until the queue is empty. It stops at the
// first failure; the failed instruction is gone from the queue but anything
// behind it is left in place.
func (in *Interpreter) Run() error {
	steps := 0
	for in.queue.Len() > 0 {
		if _, err := in.Forward(); err != nil {
			log.Trace().Int("steps", steps).Int("queue_len", in.queue.Len()).Err(err).Msg("Run: stopped")
			return err
		}
		steps++
	}
	log.Trace().Int("steps", steps).Interface("stack", in.stack).Msg("Run: queue drained")
	return nil
}

// Back undoes the most recent successful instruction and puts it back at the
// front of the queue.
func (in *Interpreter) Back() error {
	if len(in.history) == 0 {
		log.Trace().Msg("Back: empty history")
		return vm.ErrNoInstructions
	}
	h := in.history[len(in.history)-1]
	in.history = in.history[:len(in.history)-1]
	in.queue.PushFront(h.Op)

	for range h.Pushed {
		if _, ok := in.pop(); !ok {
			log.Trace().Str("op", h.Op.String()).Err(vm.ErrStackUnderflow).Msg("Back: history inconsistent with stack")
			return vm.ErrStackUnderflow
		}
	}
	for i := len(h.Popped) - 1; i >= 0; i-- {
		in.push(h.Popped[i])
	}

	log.Trace().
		Str("op", h.Op.String()).
		Interface("popped", h.Popped).
		Interface("pushed", h.Pushed).
		Interface("stack", in.stack).
		Int("history_len", len(in.history)).
		Msg("Back: reversed instruction")
	return nil
}

// BackN calls Back up to n times and reports how many succeeded. It stops at
// the first error.
func (in *Interpreter) BackN(n int) (int, error) {
	for i := 0; i < n; i++ {
		if err := in.Back(); err != nil {
			return i, err
		}
	}
	return n, nil
}
