package retry

import (
	"errors"
	"math"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog"
)

// Sentinel errors for Policy configuration.
var (
	// ErrBadFactor indicates a backoff factor of 1 or less.
	ErrBadFactor = errors.New("retry: backoff factor must be greater than 1")

	// ErrBadTries indicates a negative attempt count.
	ErrBadTries = errors.New("retry: tries must be 0 or greater")

	// ErrBadDelay indicates a zero or negative initial delay.
	ErrBadDelay = errors.New("retry: delay must be greater than 0")
)

// Policy is an immutable retry configuration. Build it once with New and
// reuse it across callables; each Do call keeps its own attempt counter
// and delay, so a Policy is safe for concurrent use.
type Policy struct {
	tries  int
	delay  time.Duration
	factor float64
	log    zerolog.Logger
}

// Option configures a Policy beyond the three core parameters.
type Option func(*Policy)

// WithLogger attaches a structured logger; each failed attempt emits one
// debug event with the remaining attempts and the upcoming delay. The
// default logger discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Policy) { p.log = l }
}

// New builds a Policy that allows tries re-invocations after the first
// call, waiting delay before the first re-invocation and multiplying the
// wait by factor after each failure.
//
// Errors:
//   - ErrBadFactor - factor <= 1 (it would not back off).
//   - ErrBadTries  - tries < 0.
//   - ErrBadDelay  - delay <= 0.
func New(tries int, delay time.Duration, factor float64, opts ...Option) (*Policy, error) {
	if factor <= 1 {
		return nil, ErrBadFactor
	}
	if tries < 0 {
		return nil, ErrBadTries
	}
	if delay <= 0 {
		return nil, ErrBadDelay
	}

	p := &Policy{
		tries:  tries,
		delay:  delay,
		factor: factor,
		log:    zerolog.Nop(),
	}
	for _, o := range opts {
		o(p)
	}

	return p, nil
}

// MustNew is New for static configuration; it panics on a config defect.
func MustNew(tries int, delay time.Duration, factor float64, opts ...Option) *Policy {
	p, err := New(tries, delay, factor, opts...)
	if err != nil {
		panic(err)
	}

	return p
}

// Do invokes fn, returning true as soon as any invocation reports success.
// While attempts remain after a failure, Do sleeps the current delay,
// grows it by the backoff factor, consumes one attempt and invokes fn
// again. When attempts are exhausted without success it returns false —
// exhaustion is a boolean outcome here, never an error.
func (p *Policy) Do(fn func() bool) bool {
	// Fresh schedule per call: Retry State never outlives one Do.
	sched := &backoff.ExponentialBackOff{
		InitialInterval:     p.delay,
		RandomizationFactor: 0, // the ladder must be exact: d, d·f, d·f², ...
		Multiplier:          p.factor,
		MaxInterval:         time.Duration(math.MaxInt64),
	}

	left := p.tries
	ok := fn()
	for {
		if ok {
			return true
		}
		if left == 0 {
			p.log.Debug().Str("outcome", "exhausted").Msg("retry: attempts exhausted")

			return false
		}

		wait := sched.NextBackOff()
		p.log.Debug().
			Int("attempts_left", left).
			Dur("wait", wait).
			Msg("retry: attempt failed, backing off")
		time.Sleep(wait)
		left--
		ok = fn()
	}
}

// Wrap returns a callable with fn's shape that applies this Policy on
// every call.
func (p *Policy) Wrap(fn func() bool) func() bool {
	return func() bool { return p.Do(fn) }
}
