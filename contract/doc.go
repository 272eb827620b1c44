// Package contract enforces runtime type contracts on Go callables.
//
// A Signature declares what a callable expects: an ordered list of named
// parameters, each with an optional declared type, and an optional return
// contract (a single type or a positional tuple of types). Wrap pairs a
// Signature with a real func; every Call then runs the same pipeline:
//
//	Bind → ValidateParameters → Invoke → ValidateReturn
//
// Binding matches positional and keyword arguments to formal parameters,
// filling declared defaults; a call that cannot be matched fails with
// *ArityError before anything runs. Parameter validation checks each bound
// value's runtime type against its declared TypeRef; the first mismatch
// aborts the call with *TypeMismatchError and the wrapped callable never
// executes. Return validation applies the declared return contract to the
// callable's results, positionally for tuple contracts.
//
// Declared types come in four forms:
//
//   - To[T]() / TypeOf(v) — a concrete Go type. A value satisfies it when
//     its runtime type is assignable to it (identity, or interface
//     satisfaction — Go's subtype relation).
//   - Named("Shape") — a forward reference, resolved at call time against
//     the ancestor chain of the governing "self" argument's registered
//     type (or of the "cls" argument's descriptor). An unresolved name is
//     always an error, never "accept anything".
//   - a *Type from a Registry — satisfied by any value whose registered
//     descriptor chain contains it.
//   - Void — satisfied only by nil.
//
// Go has no inheritance to reflect over, so ancestry is declared
// explicitly: a Registry maps type names to descriptors, each with an
// optional parent, and Resolve walks the chain most-derived first.
//
// Diagnostics stay shallow by construction: every failure is a fresh error
// value created at the point of detection, carrying only the callable
// name, the offending parameter or return_value[i] slot, and the expected
// and actual types. Nothing captures stacks or wraps errors through the
// wrapper's own frames, and a panic inside the wrapped callable propagates
// unrecovered and unmodified. A non-nil trailing error returned by the
// callable is likewise passed through untouched, with return validation
// skipped — the callable's own failures are never reinterpreted as
// contract failures.
//
// Errors:
//
//	ErrArity        - arguments cannot be matched to the declared signature.
//	ErrTypeMismatch - a value's runtime type violates its declared type.
//	ErrForwardRef   - a forward-reference name could not be resolved.
//	ErrBadSignature - the contract declaration itself is defective.
//	ErrRegistration - a type registration is invalid or duplicated.
//
// The structured types *ArityError, *TypeMismatchError and
// *ForwardRefError unwrap to their sentinels, so errors.Is works for
// classification while the struct fields keep the details.
package contract
