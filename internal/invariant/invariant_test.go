package invariant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrecondition(t *testing.T) {
	assert.NotPanics(t, func() { Precondition(true, "unused") })
	assert.PanicsWithValue(t,
		ViolationError{Kind: "precondition", Message: "n=3 must be even"},
		func() { Precondition(false, "n=%d must be even", 3) })
}

func TestPostcondition(t *testing.T) {
	assert.PanicsWithError(t, "postcondition violated: done", func() {
		Postcondition(false, "done")
	})
}

func TestNotNil(t *testing.T) {
	var m map[string]int
	var p *int

	assert.Panics(t, func() { NotNil(nil, "value") })
	assert.Panics(t, func() { NotNil(m, "map") })
	assert.Panics(t, func() { NotNil(p, "pointer") })
	assert.NotPanics(t, func() { NotNil(3, "int") })
	assert.NotPanics(t, func() { NotNil(map[string]int{}, "map") })
}

func TestInRange(t *testing.T) {
	assert.NotPanics(t, func() { InRange(0, 0, 1, "i") })
	assert.PanicsWithError(t, "precondition violated: i=1 out of range [0, 1)", func() {
		InRange(1, 0, 1, "i")
	})
}
