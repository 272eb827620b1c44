package contract_test

import (
	"testing"

	"github.com/katalvlaran/aspect/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shape struct{ tag string }

type circle struct{ r float64 }

type square struct{ side float64 }

// newShapes registers the Shape→Circle/Square hierarchy used across the
// contract tests and returns the registry plus the three descriptors.
func newShapes(t *testing.T) (reg *contract.Registry, tShape, tCircle, tSquare *contract.Type) {
	t.Helper()

	reg = contract.NewRegistry()
	tShape = reg.MustRegister("Shape", shape{}, nil)
	tCircle = reg.MustRegister("Circle", circle{}, tShape)
	tSquare = reg.MustRegister("Square", square{}, tShape)

	return reg, tShape, tCircle, tSquare
}

// TestRegistry_RegisterValidation verifies the decoration-time defects:
// empty name, nil sample, duplicate name, duplicate Go type, foreign parent.
func TestRegistry_RegisterValidation(t *testing.T) {
	reg := contract.NewRegistry()

	_, err := reg.Register("", shape{}, nil)
	assert.ErrorIs(t, err, contract.ErrRegistration, "empty name must be rejected")

	_, err = reg.Register("Shape", nil, nil)
	assert.ErrorIs(t, err, contract.ErrRegistration, "nil sample must be rejected")

	tShape, err := reg.Register("Shape", shape{}, nil)
	require.NoError(t, err)

	_, err = reg.Register("Shape", circle{}, nil)
	assert.ErrorIs(t, err, contract.ErrRegistration, "duplicate name must be rejected")

	_, err = reg.Register("AlsoShape", shape{}, nil)
	assert.ErrorIs(t, err, contract.ErrRegistration, "duplicate Go type must be rejected")

	other := contract.NewRegistry()
	_, err = other.Register("Circle", circle{}, tShape)
	assert.ErrorIs(t, err, contract.ErrRegistration, "parent from a different registry must be rejected")
}

// TestRegistry_LookupAndTypeOf verifies name and runtime-type lookups.
func TestRegistry_LookupAndTypeOf(t *testing.T) {
	reg, tShape, tCircle, _ := newShapes(t)

	got, ok := reg.Lookup("Shape")
	require.True(t, ok)
	assert.Same(t, tShape, got)

	_, ok = reg.Lookup("Triangle")
	assert.False(t, ok, "unregistered name must not resolve")

	got, ok = reg.TypeOf(circle{r: 1})
	require.True(t, ok)
	assert.Same(t, tCircle, got)

	_, ok = reg.TypeOf(3.14)
	assert.False(t, ok, "unregistered runtime type must not resolve")

	_, ok = reg.TypeOf(nil)
	assert.False(t, ok, "nil has no runtime type")
}

// TestRegistry_Ancestors verifies the declared chain is most-derived first.
func TestRegistry_Ancestors(t *testing.T) {
	_, tShape, tCircle, _ := newShapes(t)

	assert.Equal(t, []*contract.Type{tCircle, tShape}, tCircle.Ancestors())
	assert.Equal(t, []*contract.Type{tShape}, tShape.Ancestors())
	assert.Same(t, tShape, tCircle.Parent())
	assert.Nil(t, tShape.Parent())
}

// TestRegistry_Resolve verifies ancestor-chain resolution: the type's own
// name, an ancestor's name, and the failure on a miss.
func TestRegistry_Resolve(t *testing.T) {
	reg, tShape, tCircle, _ := newShapes(t)

	got, err := reg.Resolve(tCircle, "Circle")
	require.NoError(t, err)
	assert.Same(t, tCircle, got, "a type resolves its own name first")

	got, err = reg.Resolve(tCircle, "Shape")
	require.NoError(t, err)
	assert.Same(t, tShape, got, "ancestor names resolve up the chain")

	_, err = reg.Resolve(tCircle, "Square")
	assert.ErrorIs(t, err, contract.ErrForwardRef, "a sibling name matches no ancestor")

	_, err = reg.Resolve(nil, "Shape")
	assert.ErrorIs(t, err, contract.ErrForwardRef, "nil origin cannot resolve")
}
