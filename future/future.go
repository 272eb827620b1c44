package future

import (
	"errors"
	"sync"
)

// ErrNotYetDone indicates Result was polled before the background call
// completed its task.
var ErrNotYetDone = errors.New("future: the call has not yet completed its task")

// Handle is the pollable result of one background call. It transitions
// from pending to completed exactly once and is safe for concurrent use.
type Handle[T any] struct {
	ch     chan T
	done   chan struct{}
	once   sync.Once
	result T
}

// Start invokes fn on a new goroutine and returns its Handle immediately.
func Start[T any](fn func() T) *Handle[T] {
	h := &Handle[T]{
		ch:   make(chan T, 1),
		done: make(chan struct{}),
	}
	go func() {
		v := fn()
		h.ch <- v // single producer, single slot: never blocks
		close(h.done)
	}()

	return h
}

// Done reports whether the background call has finished.
func (h *Handle[T]) Done() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Result returns the background call's value. Called before completion it
// fails with ErrNotYetDone; afterwards the first call receives the value
// from the completion channel and caches it, and every subsequent call
// returns the identical cached value. Safe to call from many goroutines.
func (h *Handle[T]) Result() (T, error) {
	if !h.Done() {
		var zero T

		return zero, ErrNotYetDone
	}
	h.once.Do(func() { h.result = <-h.ch })

	return h.result, nil
}

// Wait blocks until the background call finishes, then returns its value.
func (h *Handle[T]) Wait() T {
	<-h.done
	h.once.Do(func() { h.result = <-h.ch })

	return h.result
}
