// Package timeout puts a wall-clock deadline around a call.
//
// Wrap returns a callable that invokes the original and waits at most d
// for it to finish; on overrun the caller gets a *timeout.Error (which
// unwraps to ErrTimeout) instead of the result:
//
//	fetch := timeout.Wrap(2*time.Second, func() ([]byte, error) {
//		return slowFetch()
//	})
//	data, err := fetch()
//
// Deadlines are per call: every invocation arms its own timer, and the
// timer is stopped on every exit path — a timed-out call leaves nothing
// armed for the next one, and concurrent wrapped calls on different
// goroutines are independent.
//
// The enforcement is cooperative, as process-level deadlines always are:
// Go cannot abort an arbitrary running function, so a callable that
// overruns keeps executing on its helper goroutine until it returns on
// its own; its eventual result is discarded through a buffered channel,
// never leaking the goroutine on send. Callables that should stop early
// must accept a context — WrapContext passes one that is cancelled at the
// deadline (and when the caller's own context is cancelled).
//
// Errors:
//
//	ErrTimeout - the deadline elapsed before the callable returned.
package timeout
