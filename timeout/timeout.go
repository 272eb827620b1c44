package timeout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// ErrTimeout indicates the deadline elapsed before the callable returned.
var ErrTimeout = errors.New("timeout: deadline exceeded")

// DefaultMessage is the diagnostic used when WithMessage is not given.
const DefaultMessage = "function call timed out"

// Error reports one overrun: which deadline elapsed and the configured
// message. It unwraps to ErrTimeout for errors.Is classification.
type Error struct {
	// Message is the configured diagnostic text.
	Message string

	// After is the deadline that elapsed.
	After time.Duration
}

func (e *Error) Error() string {
	return fmt.Sprintf("timeout: %s (after %v)", e.Message, e.After)
}

// Unwrap ties the structured error to the ErrTimeout sentinel.
func (e *Error) Unwrap() error { return ErrTimeout }

type config struct {
	msg string
	log zerolog.Logger
}

// Option configures a wrapped callable.
type Option func(*config)

// WithMessage overrides the diagnostic text carried by the overrun error.
func WithMessage(msg string) Option {
	return func(c *config) { c.msg = msg }
}

// WithLogger attaches a structured logger; each overrun emits one debug
// event. The default logger discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.log = l }
}

// outcome carries a callable's results across the goroutine boundary.
type outcome[T any] struct {
	v   T
	err error
}

// Wrap returns a callable that runs fn with a deadline of d per call.
// If fn returns in time, its result and error pass through unchanged and
// the timer is cancelled. On overrun the caller gets a *Error and fn's
// eventual result is discarded.
func Wrap[T any](d time.Duration, fn func() (T, error), opts ...Option) func() (T, error) {
	cfg := config{msg: DefaultMessage, log: zerolog.Nop()}
	for _, o := range opts {
		o(&cfg)
	}

	return func() (T, error) {
		ch := make(chan outcome[T], 1) // buffered: a late fn never blocks on send
		go func() {
			v, err := fn()
			ch <- outcome[T]{v: v, err: err}
		}()

		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case out := <-ch:
			return out.v, out.err
		case <-timer.C:
			cfg.log.Debug().Dur("deadline", d).Msg("timeout: deadline exceeded")
			var zero T

			return zero, &Error{Message: cfg.msg, After: d}
		}
	}
}

// WrapContext is Wrap for context-aware callables: each call derives a
// context with deadline d from the caller's, so a cooperative fn can stop
// early instead of running to completion in the background. Caller
// cancellation is reported as the context's own error; only an elapsed
// deadline becomes a *Error.
func WrapContext[T any](d time.Duration, fn func(ctx context.Context) (T, error), opts ...Option) func(context.Context) (T, error) {
	cfg := config{msg: DefaultMessage, log: zerolog.Nop()}
	for _, o := range opts {
		o(&cfg)
	}

	return func(ctx context.Context) (T, error) {
		dctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()

		ch := make(chan outcome[T], 1)
		go func() {
			v, err := fn(dctx)
			ch <- outcome[T]{v: v, err: err}
		}()

		select {
		case out := <-ch:
			return out.v, out.err
		case <-dctx.Done():
			var zero T
			if errors.Is(dctx.Err(), context.DeadlineExceeded) {
				cfg.log.Debug().Dur("deadline", d).Msg("timeout: deadline exceeded")

				return zero, &Error{Message: cfg.msg, After: d}
			}

			return zero, dctx.Err()
		}
	}
}
