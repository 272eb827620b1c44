// Package aspect is a small toolbox of cross-cutting wrappers for Go
// callables — runtime type contracts, retry with exponential backoff,
// background result handles, deadlines, guarded attributes and singletons.
//
// 🚀 What is aspect?
//
//	A library that wraps plain functions and methods with behavior you
//	would otherwise re-implement ad hoc:
//		• contract/  — bind call arguments to a declared signature and verify
//		  every parameter and return value against its declared type,
//		  including "this class or one of its ancestors" forward references
//		• retry/     — re-invoke a boolean-success callable with an exact
//		  exponential backoff ladder until it succeeds or attempts run out
//		• future/    — fire-and-forget execution with a pollable,
//		  once-cached result handle
//		• timeout/   — wall-clock deadlines around a call, with guaranteed
//		  timer cleanup on every exit path
//		• attrs/     — struct-declared attribute sets that reject
//		  wrongly-typed assignment at runtime
//		• singleton/ — a class collapsed to its one instance
//
// ✨ Why choose aspect?
//
//   - Failures are plain error values built where they are detected — no
//     wrapper frames, no stack noise, just the callable, the slot and the
//     expected/actual types
//   - Decoration-time validation — a bad contract or retry configuration
//     fails when you build it, not when production traffic hits it
//   - Each concern is an independent package with no shared state
//
// The contract package is the heart of the module; the rest are small,
// self-contained utilities built on the same "wrap a callable" idiom.
package aspect
