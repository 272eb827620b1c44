package contract

import (
	"fmt"
	"reflect"
	"sync"
)

// Type is a registered runtime type descriptor: a name, the Go type it
// stands for, and an optional parent forming the declared ancestor chain.
// Go offers no inheritance to reflect over, so ancestry is declared
// explicitly at registration time.
//
// A *Type is itself a TypeRef: declaring it on a slot accepts any value
// whose registered descriptor chain contains it.
type Type struct {
	name   string
	gt     reflect.Type
	parent *Type
}

func (t *Type) isRef() {}

// String returns the registered name.
func (t *Type) String() string { return t.name }

// Name returns the registered name.
func (t *Type) Name() string { return t.name }

// GoType returns the Go type this descriptor stands for.
func (t *Type) GoType() reflect.Type { return t.gt }

// Parent returns the declared parent descriptor, or nil at the root.
func (t *Type) Parent() *Type { return t.parent }

// Ancestors returns the declared chain, most-derived first: the descriptor
// itself, then its parent, up to the root.
func (t *Type) Ancestors() []*Type {
	var chain []*Type
	for a := t; a != nil; a = a.parent {
		chain = append(chain, a)
	}

	return chain
}

// isAncestorOf reports whether t appears in v's chain (v included).
func (t *Type) isAncestorOf(v *Type) bool {
	for a := v; a != nil; a = a.parent {
		if a == t {
			return true
		}
	}

	return false
}

// ancestorNamed walks from's chain most-derived first for a name match.
func ancestorNamed(from *Type, name string) (*Type, bool) {
	for a := from; a != nil; a = a.parent {
		if a.name == name {
			return a, true
		}
	}

	return nil, false
}

// Registry maps type names and Go types to descriptors. Build it once at
// startup, then share it freely: Register is guarded by a write lock, all
// lookups take a read lock.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*Type
	byGo   map[reflect.Type]*Type
}

// NewRegistry creates an empty type registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Type),
		byGo:   make(map[reflect.Type]*Type),
	}
}

// Register binds name to sample's Go type, with parent as its declared
// ancestor (nil for a root type). Each name and each Go type may be
// registered once.
//
// Errors:
//   - ErrRegistration - empty name, nil sample, foreign parent, or a
//     name/Go type that is already registered.
func (r *Registry) Register(name string, sample any, parent *Type) (*Type, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty type name", ErrRegistration)
	}
	gt := reflect.TypeOf(sample)
	if gt == nil {
		return nil, fmt.Errorf("%w: nil sample for %q", ErrRegistration, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[name]; ok {
		return nil, fmt.Errorf("%w: name %q already registered", ErrRegistration, name)
	}
	if prev, ok := r.byGo[gt]; ok {
		return nil, fmt.Errorf("%w: Go type %s already registered as %q", ErrRegistration, gt, prev.name)
	}
	if parent != nil {
		if known, ok := r.byName[parent.name]; !ok || known != parent {
			return nil, fmt.Errorf("%w: parent %q of %q is not registered here", ErrRegistration, parent.name, name)
		}
	}

	t := &Type{name: name, gt: gt, parent: parent}
	r.byName[name] = t
	r.byGo[gt] = t

	return t, nil
}

// MustRegister is Register for wiring code that treats a registration
// defect as fatal; it panics on error.
func (r *Registry) MustRegister(name string, sample any, parent *Type) *Type {
	t, err := r.Register(name, sample, parent)
	if err != nil {
		panic(err)
	}

	return t
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (*Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byName[name]

	return t, ok
}

// TypeOf returns the descriptor registered for v's runtime type.
func (r *Registry) TypeOf(v any) (*Type, bool) {
	gt := reflect.TypeOf(v)
	if gt == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byGo[gt]

	return t, ok
}

// Resolve walks from's declared ancestor chain, most-derived first
// (from itself included), and returns the first descriptor whose name
// matches. A miss is an error wrapping ErrForwardRef — an unresolved
// forward reference is a contract-definition defect, never a pass.
func (r *Registry) Resolve(from *Type, name string) (*Type, error) {
	if from == nil {
		return nil, fmt.Errorf("%w: %q resolved against nil type", ErrForwardRef, name)
	}
	if a, ok := ancestorNamed(from, name); ok {
		return a, nil
	}

	return nil, fmt.Errorf("%w: %q matches no ancestor of %s", ErrForwardRef, name, from.name)
}

// Signature starts a signature bound to this registry, so Named forward
// references on it resolve against descriptors registered here.
func (r *Registry) Signature(fn string) *Signature {
	return &Signature{fn: fn, reg: r}
}
