package contract

import "fmt"

// BoundArgs is the per-call mapping from formal parameter to supplied
// value, produced by Signature.Bind. It is created fresh for every call
// and never persisted.
type BoundArgs struct {
	sig    *Signature
	values []any
}

// Value returns the value bound to the named parameter.
func (b *BoundArgs) Value(name string) (any, bool) {
	i := b.sig.paramIndex(name)
	if i < 0 {
		return nil, false
	}

	return b.values[i], true
}

// Len returns the number of bound parameters.
func (b *BoundArgs) Len() int { return len(b.values) }

// governing returns the value steering forward-reference resolution: the
// argument bound to "self" if declared, else to "cls". isCls distinguishes
// the two; ok is false when the signature declares neither.
func (b *BoundArgs) governing() (value any, isCls, ok bool) {
	if i := b.sig.paramIndex("self"); i >= 0 {
		return b.values[i], false, true
	}
	if i := b.sig.paramIndex("cls"); i >= 0 {
		return b.values[i], true, true
	}

	return nil, false, false
}

// Bind matches a call site's positional and keyword arguments to the
// declared parameters, filling declared defaults for omitted optionals.
//
// Binding applies the usual rules: positionals fill parameters in order,
// keywords fill by name, and every required parameter must end up bound.
//
// Errors:
//   - ErrBadSignature - the signature declaration itself is defective.
//   - ErrArity (*ArityError) - too many positionals, an unknown keyword,
//     a parameter bound twice, or a missing required parameter.
func (s *Signature) Bind(pos []any, kw map[string]any) (*BoundArgs, error) {
	if s.defect != nil {
		return nil, s.defect
	}
	if len(pos) > len(s.params) {
		return nil, &ArityError{
			Fn:     s.fn,
			Reason: fmt.Sprintf("takes %d arguments but %d were given", len(s.params), len(pos)),
		}
	}

	values := make([]any, len(s.params))
	bound := make([]bool, len(s.params))
	for i, v := range pos {
		values[i] = v
		bound[i] = true
	}

	for name, v := range kw {
		i := s.paramIndex(name)
		if i < 0 {
			return nil, &ArityError{
				Fn:     s.fn,
				Reason: fmt.Sprintf("unexpected keyword argument %q", name),
			}
		}
		if bound[i] {
			return nil, &ArityError{
				Fn:     s.fn,
				Reason: fmt.Sprintf("multiple values for argument %q", name),
			}
		}
		values[i] = v
		bound[i] = true
	}

	for i, p := range s.params {
		if bound[i] {
			continue
		}
		if !p.HasDefault {
			return nil, &ArityError{
				Fn:     s.fn,
				Reason: fmt.Sprintf("missing required argument %q", p.Name),
			}
		}
		values[i] = p.Default
	}

	return &BoundArgs{sig: s, values: values}, nil
}
