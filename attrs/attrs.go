package attrs

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/katalvlaran/aspect/contract"
)

// Sentinel errors for attribute declaration and access.
var (
	// ErrNotStruct indicates the prototype is not a struct or *struct.
	ErrNotStruct = errors.New("attrs: prototype must be a struct or pointer to struct")

	// ErrUnknownAttr indicates the named attribute was never declared.
	ErrUnknownAttr = errors.New("attrs: unknown attribute")

	// ErrBadType indicates a value whose runtime type violates the
	// attribute's declared type.
	ErrBadType = errors.New("attrs: value violates declared attribute type")

	// ErrUnsetAttr indicates Get before any successful Set.
	ErrUnsetAttr = errors.New("attrs: attribute not set")
)

// Option configures an Object at construction.
type Option func(*Object)

// WithRegistry admits registered descendant types: a field declared as a
// registered type also accepts values whose registered ancestor chain
// contains it.
func WithRegistry(reg *contract.Registry) Option {
	return func(o *Object) { o.reg = reg }
}

// Object is a runtime-checked attribute set declared by a struct
// prototype. Declarations are frozen at New; values live behind a lock,
// so an Object is safe for concurrent use.
type Object struct {
	mu       sync.RWMutex
	declared map[string]reflect.Type
	values   map[string]any
	names    []string
	reg      *contract.Registry
}

// New declares an attribute set from the exported fields of prototype
// (a struct value or pointer to one). Unexported fields are ignored.
//
// Errors:
//   - ErrNotStruct - prototype is not a struct or pointer to struct.
func New(prototype any, opts ...Option) (*Object, error) {
	t := reflect.TypeOf(prototype)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, ErrNotStruct
	}

	o := &Object{
		declared: make(map[string]reflect.Type),
		values:   make(map[string]any),
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		o.declared[f.Name] = f.Type
		o.names = append(o.names, f.Name)
	}
	for _, opt := range opts {
		opt(o)
	}

	return o, nil
}

// Names returns the declared attribute names in declaration order.
func (o *Object) Names() []string {
	out := make([]string, len(o.names))
	copy(out, o.names)

	return out
}

// DeclaredType returns the declared type of the named attribute.
func (o *Object) DeclaredType(name string) (reflect.Type, bool) {
	t, ok := o.declared[name]

	return t, ok
}

// Set assigns v to the named attribute after checking its runtime type
// against the declared one.
//
// Errors:
//   - ErrUnknownAttr - name was never declared.
//   - ErrBadType    - v's runtime type cannot occupy the declared type.
func (o *Object) Set(name string, v any) error {
	dt, ok := o.declared[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAttr, name)
	}
	if !o.accepts(dt, v) {
		return fmt.Errorf("%w: %s attribute must be set to an instance of %s, got %s",
			ErrBadType, name, dt, runtimeTypeName(v))
	}

	o.mu.Lock()
	o.values[name] = v
	o.mu.Unlock()

	return nil
}

// Get returns the current value of the named attribute.
//
// Errors:
//   - ErrUnknownAttr - name was never declared.
//   - ErrUnsetAttr   - the attribute has no value yet.
func (o *Object) Get(name string) (any, error) {
	if _, ok := o.declared[name]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAttr, name)
	}

	o.mu.RLock()
	v, ok := o.values[name]
	o.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsetAttr, name)
	}

	return v, nil
}

// accepts reports whether v may occupy a slot of declared type dt:
// Go assignability first, then — with a registry attached — a registered
// descendant whose ancestor chain reaches dt.
func (o *Object) accepts(dt reflect.Type, v any) bool {
	vt := reflect.TypeOf(v)
	if vt == nil {
		switch dt.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface,
			reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
			return true
		default:
			return false
		}
	}
	if vt.AssignableTo(dt) {
		return true
	}
	if o.reg != nil {
		if vd, ok := o.reg.TypeOf(v); ok {
			for _, a := range vd.Ancestors() {
				if a.GoType() == dt {
					return true
				}
			}
		}
	}

	return false
}

func runtimeTypeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "nil"
	}

	return t.String()
}
