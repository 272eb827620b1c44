package contract

import "reflect"

// checkValue validates one bound value against its declared constraint.
// slot is the parameter name or "return_value[i]" identifier used in
// diagnostics; b supplies the governing self/cls argument for forward
// references. A nil ref means the slot is unchecked.
//
// Every failure is a fresh structured error built right here — nothing is
// rethrown or rewrapped through the call pipeline, so the diagnostic a
// caller sees carries only the callable, the slot and the two types.
func (s *Signature) checkValue(slot string, value any, ref TypeRef, b *BoundArgs) error {
	switch r := ref.(type) {
	case nil:
		return nil

	case voidRef:
		if value == nil {
			return nil
		}

		return &TypeMismatchError{
			Fn:       s.fn,
			Slot:     slot,
			Expected: r,
			Actual:   reflect.TypeOf(value),
			Value:    value,
		}

	case goRef:
		at := reflect.TypeOf(value)
		if at != nil && at.AssignableTo(r.t) {
			return nil
		}

		return &TypeMismatchError{Fn: s.fn, Slot: slot, Expected: r, Actual: at, Value: value}

	case nameRef:
		want, err := s.resolveForwardRef(slot, r.name, b)
		if err != nil {
			return err
		}

		return s.checkRegistered(slot, value, want)

	case *Type:
		return s.checkRegistered(slot, value, r)
	}

	return nil
}

// resolveForwardRef turns a forward-reference name into the registered
// descriptor it denotes for this call, by walking the ancestor chain of
// the governing self/cls argument's type.
func (s *Signature) resolveForwardRef(slot, name string, b *BoundArgs) (*Type, error) {
	gv, isCls, ok := b.governing()
	if !ok {
		return nil, &ForwardRefError{
			Fn:     s.fn,
			Slot:   slot,
			Name:   name,
			Reason: "used outside a method context",
		}
	}

	var from *Type
	if isCls {
		t, isType := gv.(*Type)
		if !isType {
			return nil, &ForwardRefError{
				Fn:     s.fn,
				Slot:   slot,
				Name:   name,
				Reason: "cls argument is not a type descriptor",
			}
		}
		from = t
	} else {
		if s.reg == nil {
			return nil, &ForwardRefError{
				Fn:     s.fn,
				Slot:   slot,
				Name:   name,
				Reason: "signature has no type registry attached",
			}
		}
		t, known := s.reg.TypeOf(gv)
		if !known {
			return nil, &ForwardRefError{
				Fn:     s.fn,
				Slot:   slot,
				Name:   name,
				Reason: "governing value type " + typeName(reflect.TypeOf(gv)) + " is not registered",
			}
		}
		from = t
	}

	want, ok := ancestorNamed(from, name)
	if !ok {
		return nil, &ForwardRefError{
			Fn:     s.fn,
			Slot:   slot,
			Name:   name,
			Reason: "matches no ancestor of " + from.name,
		}
	}

	return want, nil
}

// checkRegistered validates a value against a registered descriptor: the
// value's own registered chain must contain want, or its Go type must be
// assignable to want's Go type.
func (s *Signature) checkRegistered(slot string, value any, want *Type) error {
	if s.reg != nil {
		if vt, ok := s.reg.TypeOf(value); ok && want.isAncestorOf(vt) {
			return nil
		}
	}
	at := reflect.TypeOf(value)
	if at != nil && at.AssignableTo(want.gt) {
		return nil
	}

	return &TypeMismatchError{Fn: s.fn, Slot: slot, Expected: want, Actual: at, Value: value}
}

// nilable reports whether a nil argument can legally occupy a value of
// type t when handed to the underlying Go function.
func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface,
		reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
