// Package contract declares the Signature builder, TypeRef variants,
// sentinel errors and the structured failure types.
//
// This file holds everything a caller needs to declare a contract; the
// mechanics live in registry.go (ancestry), bind.go (argument matching),
// validate.go (type checks) and wrap.go (the call pipeline).
package contract

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Sentinel errors for contract declaration and enforcement.
var (
	// ErrArity indicates call arguments could not be matched to the signature.
	ErrArity = errors.New("contract: arguments do not match declared signature")

	// ErrTypeMismatch indicates a value's runtime type violates its declared type.
	ErrTypeMismatch = errors.New("contract: value violates declared type")

	// ErrForwardRef indicates a forward-reference type name could not be resolved.
	ErrForwardRef = errors.New("contract: forward reference could not be resolved")

	// ErrBadSignature indicates the contract declaration itself is defective.
	ErrBadSignature = errors.New("contract: invalid contract declaration")

	// ErrRegistration indicates an invalid or duplicate type registration.
	ErrRegistration = errors.New("contract: invalid type registration")
)

// TypeRef is a declared constraint on one parameter or return slot.
// The four concrete forms are To/TypeOf (a Go type), Named (a forward
// reference), a registered *Type, and Void. A nil TypeRef means "no check".
type TypeRef interface {
	fmt.Stringer

	// isRef keeps the set of constraint forms closed.
	isRef()
}

// goRef constrains a slot to a concrete Go type.
type goRef struct{ t reflect.Type }

func (goRef) isRef()           {}
func (r goRef) String() string { return r.t.String() }

// nameRef is a forward reference, resolved at call time against the
// governing self/cls argument's ancestor chain.
type nameRef struct{ name string }

func (nameRef) isRef()           {}
func (r nameRef) String() string { return r.name }

// voidRef matches only nil.
type voidRef struct{}

func (voidRef) isRef()         {}
func (voidRef) String() string { return "void" }

// Void is the TypeRef satisfied only by nil, the counterpart of declaring
// "no meaningful value" as a contract.
var Void TypeRef = voidRef{}

// To declares a concrete Go type constraint. A value satisfies it when its
// runtime type is assignable to T (identity, or interface satisfaction).
//
//	sig.Param("radius", contract.To[float64]())
func To[T any]() TypeRef {
	return goRef{t: reflect.TypeOf((*T)(nil)).Elem()}
}

// TypeOf declares a constraint equal to v's runtime type. TypeOf(nil) is Void.
func TypeOf(v any) TypeRef {
	t := reflect.TypeOf(v)
	if t == nil {
		return Void
	}

	return goRef{t: t}
}

// Named declares a forward reference: the slot's type is "the governing
// value's class, or one of its ancestors, with this name". Resolution
// happens per call against the first argument named "self" (or "cls").
func Named(name string) TypeRef { return nameRef{name: name} }

// Param is one formal parameter of a declared signature.
type Param struct {
	// Name identifies the parameter for keyword binding and diagnostics.
	Name string

	// Type is the declared constraint; nil means the parameter is unchecked.
	Type TypeRef

	// Default is the value bound when the call site omits this parameter.
	Default any

	// HasDefault reports whether Default participates in binding.
	HasDefault bool
}

// Signature is the declared contract of one callable: its name (used in
// diagnostics), ordered parameters and return contract. Build it fluently:
//
//	sig := reg.Signature("Circle.Scale").
//		Self().
//		Param("factor", contract.To[float64]()).
//		Returns(contract.Named("Shape"))
//
// Declaration defects (duplicate names, double return contracts, ...) are
// remembered and surfaced by Wrap or Bind, so a broken contract fails at
// decoration time, never silently at call time.
type Signature struct {
	fn     string
	reg    *Registry
	params []Param
	rets   []TypeRef
	tuple  bool
	defect error
}

// NewSignature starts a signature with no registry attached. Forward
// references declared on it fail at call time with *ForwardRefError;
// use Registry.Signature when Named refs are involved.
func NewSignature(fn string) *Signature {
	return &Signature{fn: fn}
}

// Name returns the callable name used in diagnostics.
func (s *Signature) Name() string { return s.fn }

// Params returns a copy of the declared parameter list.
func (s *Signature) Params() []Param {
	out := make([]Param, len(s.params))
	copy(out, s.params)

	return out
}

// Self declares the leading unchecked "self" parameter of a method
// signature. Its bound value governs forward-reference resolution.
func (s *Signature) Self() *Signature { return s.Param("self", nil) }

// Cls declares the leading unchecked "cls" parameter of a type-level
// callable. Its bound value must be a *Type descriptor.
func (s *Signature) Cls() *Signature { return s.Param("cls", nil) }

// Param appends a required parameter with an optional type constraint
// (nil ref means unchecked).
func (s *Signature) Param(name string, ref TypeRef) *Signature {
	return s.addParam(Param{Name: name, Type: ref})
}

// ParamDefault appends an optional parameter: when the call site omits it,
// def is bound in its place. Optional parameters must trail required ones.
func (s *Signature) ParamDefault(name string, ref TypeRef, def any) *Signature {
	return s.addParam(Param{Name: name, Type: ref, Default: def, HasDefault: true})
}

// Returns declares a single-value return contract covering the callable's
// one non-error result.
func (s *Signature) Returns(ref TypeRef) *Signature {
	if s.rets != nil {
		return s.fail("return contract declared twice")
	}
	s.rets = []TypeRef{ref}
	s.tuple = false

	return s
}

// ReturnsTuple declares a multi-value return contract: refs[i] is checked
// against the callable's i-th non-error result. A nil entry leaves that
// slot unchecked.
func (s *Signature) ReturnsTuple(refs ...TypeRef) *Signature {
	if s.rets != nil {
		return s.fail("return contract declared twice")
	}
	if len(refs) == 0 {
		return s.fail("empty tuple return contract")
	}
	s.rets = append([]TypeRef(nil), refs...)
	s.tuple = true

	return s
}

func (s *Signature) addParam(p Param) *Signature {
	if p.Name == "" {
		return s.fail("empty parameter name")
	}
	for _, q := range s.params {
		if q.Name == p.Name {
			return s.fail(fmt.Sprintf("duplicate parameter %q", p.Name))
		}
	}
	if !p.HasDefault && len(s.params) > 0 && s.params[len(s.params)-1].HasDefault {
		return s.fail(fmt.Sprintf("required parameter %q follows an optional one", p.Name))
	}
	s.params = append(s.params, p)

	return s
}

// fail records the first declaration defect; later defects are ignored so
// the reported error points at the original mistake.
func (s *Signature) fail(reason string) *Signature {
	if s.defect == nil {
		s.defect = fmt.Errorf("%w: %s: %s", ErrBadSignature, s.fn, reason)
	}

	return s
}

func (s *Signature) paramIndex(name string) int {
	for i, p := range s.params {
		if p.Name == name {
			return i
		}
	}

	return -1
}

// ArityError reports a binding failure: the supplied arguments cannot be
// matched to the declared parameters.
type ArityError struct {
	// Fn is the callable's declared name.
	Fn string

	// Reason describes the mismatch and names the offending parameter.
	Reason string
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("contract: %s: %s", e.Fn, e.Reason)
}

// Unwrap ties the structured error to the ErrArity sentinel.
func (e *ArityError) Unwrap() error { return ErrArity }

// TypeMismatchError reports a value whose runtime type violates the
// declared type of its parameter or return slot.
type TypeMismatchError struct {
	// Fn is the callable's declared name.
	Fn string

	// Slot is the parameter name, "return_value", or "return_value[i]".
	Slot string

	// Expected is the declared constraint for the slot.
	Expected TypeRef

	// Actual is the value's runtime type; nil for a nil value.
	Actual reflect.Type

	// Value is the offending value itself.
	Value any
}

func (e *TypeMismatchError) Error() string {
	if strings.HasPrefix(e.Slot, "return_value") {
		return fmt.Sprintf("contract: %s %s (%v) is of type %s, but should be of type %s",
			e.Fn, e.Slot, e.Value, typeName(e.Actual), e.Expected)
	}

	return fmt.Sprintf("contract: %s argument %s is of type %s, but should be of type %s",
		e.Fn, e.Slot, typeName(e.Actual), e.Expected)
}

// Unwrap ties the structured error to the ErrTypeMismatch sentinel.
func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// ForwardRefError reports a forward-reference name that could not be
// resolved for a slot: no governing self/cls argument, an unregistered
// governing type, or a name matching no ancestor.
type ForwardRefError struct {
	// Fn is the callable's declared name.
	Fn string

	// Slot is the parameter name, "return_value", or "return_value[i]".
	Slot string

	// Name is the forward-reference text that failed to resolve.
	Name string

	// Reason describes why resolution failed.
	Reason string
}

func (e *ForwardRefError) Error() string {
	return fmt.Sprintf("contract: %s %s: forward reference %q %s",
		e.Fn, slotLabel(e.Slot), e.Name, e.Reason)
}

// Unwrap ties the structured error to the ErrForwardRef sentinel.
func (e *ForwardRefError) Unwrap() error { return ErrForwardRef }

// slotLabel renders a slot identifier the way the diagnostics phrase it:
// parameters read "argument x", return slots keep their index form.
func slotLabel(slot string) string {
	if strings.HasPrefix(slot, "return_value") {
		return slot
	}

	return "argument " + slot
}

// typeName renders a possibly-nil reflect.Type for diagnostics.
func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}

	return t.String()
}
