// Package singleton collapses a constructor to its one instance.
//
// New runs the constructor immediately — the original eager semantics —
// and returns an accessor that always yields that same instance:
//
//	getPool := singleton.New(func() *Pool { return newPool(16) })
//	p := getPool() // the one and only
//
// Lazy defers construction to the first access instead, built on
// sync.OnceValue; later accesses return the cached instance without
// re-running the constructor. Both accessors are safe for concurrent use.
package singleton
