package invariant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrecondition(t *testing.T) {
	assert.NotPanics(t, func() { Precondition(true, "never") })

	defer func() {
		r := recover()
		require.NotNil(t, r)
		assert.Contains(t, r, "PRECONDITION VIOLATION: kind must be SETUP, got CALL")
		assert.Contains(t, r, "invariant_test.go")
	}()
	Precondition(false, "kind must be SETUP, got %s", "CALL")
}

func TestInvariant(t *testing.T) {
	assert.Panics(t, func() { Invariant(false, "index must grow") })
}

func TestNotNil(t *testing.T) {
	var typedNil *struct{}
	var nilFunc func()

	assert.Panics(t, func() { NotNil(nil, "value") })
	assert.Panics(t, func() { NotNil(typedNil, "value") })
	assert.Panics(t, func() { NotNil(nilFunc, "lookup") })
	assert.NotPanics(t, func() { NotNil(&struct{}{}, "value") })
	assert.NotPanics(t, func() { NotNil(0, "value") })
}
