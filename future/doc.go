// Package future runs a callable in the background and hands back a
// pollable result handle.
//
// Start launches the callable on its own goroutine and returns a
// Handle[T]. The handle moves from pending to completed exactly once:
//
//	h := future.Start(func() int { return expensive() })
//	...
//	if h.Done() {
//		v, _ := h.Result()
//	}
//
// Result called before completion fails with ErrNotYetDone — polling is
// explicit, it never blocks by accident. Once the background goroutine
// has finished, the first Result receives the value from the completion
// channel and caches it; every later call (from any goroutine) returns
// the identical cached value without touching the channel again. Wait is
// the blocking variant for callers that would rather park than poll.
//
// The completion channel has exactly one producer (the background
// goroutine) and, thanks to the once-guarded receive, effectively one
// consumer — concurrent Result calls are safe.
//
// Errors:
//
//	ErrNotYetDone - Result was called before the background call finished.
package future
