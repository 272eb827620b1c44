// Package retry re-invokes a boolean-success callable with exponential
// backoff until it succeeds or runs out of attempts.
//
// The success convention is deliberate and preserved as policy: the
// wrapped callable reports success by returning true, and exhaustion is
// reported by Do returning false — never by an error. Callables that can
// fail transiently (polling a port, waiting for a file, re-sending a
// request) fit this shape directly.
//
//	p := retry.MustNew(3, time.Second, 2)
//	ok := p.Do(func() bool { return ping(host) })
//
// tries counts the re-invocations after the first call, so tries=3 allows
// up to four invocations in total. The waits between attempts follow an
// exact ladder — delay, delay·factor, delay·factor², ... — produced by a
// backoff/v5 schedule with randomization pinned to zero. The calling
// goroutine sleeps through each wait; attempts are never parallelized.
//
// Configuration is validated when the Policy is built, not when it runs:
// a factor of 1 or less is not a backoff, a negative attempt count and a
// non-positive delay are meaningless, and all three fail New immediately.
//
// Errors:
//
//	ErrBadFactor - backoff factor is 1 or less.
//	ErrBadTries  - attempt count is negative.
//	ErrBadDelay  - initial delay is zero or negative.
package retry
