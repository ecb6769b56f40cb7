package dispatcher

import (
	"sync/atomic"

	"calculator-service/internal/calculator"
)

// slot is a single-use completion: the worker fulfils it exactly once and
// the caller waits on it exactly once. Breaking either rule is a programming
// error and panics.
type slot struct {
	ch        chan calculator.Response
	fulfilled atomic.Bool
	awaited   atomic.Bool
}

func newSlot() *slot {
	return &slot{ch: make(chan calculator.Response, 1)}
}

func (s *slot) fulfill(resp calculator.Response) {
	if !s.fulfilled.CompareAndSwap(false, true) {
		panic("dispatcher: completion slot fulfilled twice")
	}
	s.ch <- resp
}

func (s *slot) wait() calculator.Response {
	if !s.awaited.CompareAndSwap(false, true) {
		panic("dispatcher: completion slot awaited twice")
	}
	return <-s.ch
}
