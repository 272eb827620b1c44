package contract

import (
	"fmt"
	"reflect"
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Wrapped is a callable paired with its declared Signature. Every Call
// runs the full contract pipeline around the underlying function:
//
//	Bind → ValidateParameters → Invoke → ValidateReturn
//
// A Wrapped is stateless across calls and safe for concurrent use.
type Wrapped struct {
	sig    *Signature
	fv     reflect.Value
	ft     reflect.Type
	nres   int  // results covered by the return contract
	hasErr bool // underlying func has a trailing error result
}

// Wrap pairs fn with its declared signature, validating the declaration
// eagerly: a defective contract fails here, at decoration time, never at
// call time.
//
// fn must be a non-variadic func. Its parameter count must equal the
// declared parameter count ("self"/"cls" included — use method expressions
// like Circle.Scale so the receiver is an explicit first parameter). A
// trailing error result is the callable's own failure channel and is not
// covered by return contracts: a single-value contract requires exactly
// one non-error result, a tuple contract one per declared slot.
//
// Errors:
//   - ErrBadSignature - fn is not a func, is variadic, or its shape
//     disagrees with the declaration.
func Wrap(fn any, sig *Signature) (*Wrapped, error) {
	if sig == nil {
		return nil, fmt.Errorf("%w: nil signature", ErrBadSignature)
	}
	if sig.defect != nil {
		return nil, sig.defect
	}

	fv := reflect.ValueOf(fn)
	if !fv.IsValid() || fv.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %s: not a function", ErrBadSignature, sig.fn)
	}
	ft := fv.Type()
	if ft.IsVariadic() {
		return nil, fmt.Errorf("%w: %s: variadic functions are not supported", ErrBadSignature, sig.fn)
	}
	if ft.NumIn() != len(sig.params) {
		return nil, fmt.Errorf("%w: %s: function takes %d parameters, signature declares %d",
			ErrBadSignature, sig.fn, ft.NumIn(), len(sig.params))
	}

	hasErr := ft.NumOut() > 0 && ft.Out(ft.NumOut()-1) == errType
	nres := ft.NumOut()
	if hasErr {
		nres--
	}
	if sig.rets != nil {
		if sig.tuple && nres != len(sig.rets) {
			return nil, fmt.Errorf("%w: %s: function returns %d values, tuple contract declares %d",
				ErrBadSignature, sig.fn, nres, len(sig.rets))
		}
		if !sig.tuple && nres != 1 {
			return nil, fmt.Errorf("%w: %s: single return contract requires exactly one non-error result, function has %d",
				ErrBadSignature, sig.fn, nres)
		}
	}

	return &Wrapped{sig: sig, fv: fv, ft: ft, nres: nres, hasErr: hasErr}, nil
}

// MustWrap is Wrap for wiring code that treats a contract-declaration
// defect as fatal; it panics on error.
func MustWrap(fn any, sig *Signature) *Wrapped {
	w, err := Wrap(fn, sig)
	if err != nil {
		panic(err)
	}

	return w
}

// Signature returns the declared contract.
func (w *Wrapped) Signature() *Signature { return w.sig }

// Call invokes the wrapped callable with positional arguments.
// See CallNamed for the pipeline and error contract.
func (w *Wrapped) Call(args ...any) ([]any, error) {
	return w.CallNamed(args, nil)
}

// CallNamed invokes the wrapped callable with positional and keyword
// arguments.
//
// The pipeline:
//  1. Bind the arguments to the declared parameters (*ArityError on
//     failure; the callable never runs).
//  2. Validate every bound parameter except "self"/"cls" against its
//     declared type. The first *TypeMismatchError or *ForwardRefError
//     aborts before invocation.
//  3. Invoke the underlying func. A panic inside it propagates unrecovered
//     and unmodified. If it returns a non-nil trailing error, that error
//     and the results are returned as-is and return validation is skipped.
//  4. Validate the return contract: a tuple contract checks result slots
//     positionally (failures name "return_value[i]"), a single contract
//     checks the one non-error result ("return_value").
//
// On success the callable's results are returned unchanged.
func (w *Wrapped) CallNamed(pos []any, kw map[string]any) ([]any, error) {
	b, err := w.sig.Bind(pos, kw)
	if err != nil {
		return nil, err
	}

	for i, p := range w.sig.params {
		if p.Name == "self" || p.Name == "cls" {
			continue
		}
		if err = w.sig.checkValue(p.Name, b.values[i], p.Type, b); err != nil {
			return nil, err
		}
	}

	in := make([]reflect.Value, len(b.values))
	for i, v := range b.values {
		it := w.ft.In(i)
		if v == nil {
			if !nilable(it) {
				return nil, &TypeMismatchError{
					Fn:       w.sig.fn,
					Slot:     w.sig.params[i].Name,
					Expected: goRef{t: it},
					Actual:   nil,
					Value:    nil,
				}
			}
			in[i] = reflect.Zero(it)

			continue
		}
		rv := reflect.ValueOf(v)
		if !rv.Type().AssignableTo(it) {
			// The declared contract passed but the Go parameter cannot hold
			// the value (unchecked slot, or a contract looser than the func).
			return nil, &TypeMismatchError{
				Fn:       w.sig.fn,
				Slot:     w.sig.params[i].Name,
				Expected: goRef{t: it},
				Actual:   rv.Type(),
				Value:    v,
			}
		}
		in[i] = rv
	}

	out := w.fv.Call(in)
	results := make([]any, len(out))
	for i, o := range out {
		results[i] = o.Interface()
	}

	if w.hasErr {
		if ce, _ := results[len(results)-1].(error); ce != nil {
			return results, ce
		}
	}

	if w.sig.rets != nil {
		if w.sig.tuple {
			for i, ref := range w.sig.rets {
				if err = w.sig.checkValue(fmt.Sprintf("return_value[%d]", i), results[i], ref, b); err != nil {
					return nil, err
				}
			}
		} else if err = w.sig.checkValue("return_value", results[0], w.sig.rets[0], b); err != nil {
			return nil, err
		}
	}

	return results, nil
}
