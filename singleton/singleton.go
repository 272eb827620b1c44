package singleton

import "sync"

// New eagerly constructs the single instance and returns an accessor that
// always yields it. The constructor runs exactly once, before New returns.
func New[T any](construct func() T) func() T {
	instance := construct()

	return func() T { return instance }
}

// Lazy defers construction to the first access. The constructor runs at
// most once even under concurrent first access.
func Lazy[T any](construct func() T) func() T {
	return sync.OnceValue(construct)
}
