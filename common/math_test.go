package common

import (
	"math"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"github.com/stretchr/testify/assert"
)

const standardTol = float32(1.0e-6)

func TestLerp(t *testing.T) {
	assert.Equal(t, float32(3), Lerp(3, 7, 0))
	assert.Equal(t, float32(7), Lerp(3, 7, 1))
	tolassert.EqualTol(t, 5, Lerp(3, 7, 0.5), standardTol)

	// no clamping
	tolassert.EqualTol(t, 11, Lerp(3, 7, 2), standardTol)
}

func TestSmoothstep(t *testing.T) {
	assert.Equal(t, float32(0), Smoothstep(0))
	assert.Equal(t, float32(1), Smoothstep(1))
	tolassert.EqualTol(t, 0.5, Smoothstep(0.5), standardTol)
	tolassert.EqualTol(t, 0.15625, Smoothstep(0.25), standardTol)
	tolassert.EqualTol(t, 0.84375, Smoothstep(0.75), standardTol)
}

func TestPowInt(t *testing.T) {
	assert.Equal(t, float32(1), PowInt(2, 0))
	assert.Equal(t, float32(2), PowInt(2, 1))
	assert.Equal(t, float32(1024), PowInt(2, 10))
	tolassert.EqualTol(t, 0.25, PowInt(2, -2), standardTol)
	tolassert.EqualTol(t, 0.25, PowInt(0.5, 2), standardTol)

	// negative bases stay meaningful, unlike a float power function
	assert.Equal(t, float32(-8), PowInt(-2, 3))
	assert.Equal(t, float32(16), PowInt(-2, 4))

	assert.True(t, math.IsInf(float64(PowInt(0, -1)), 1))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 5, Coalesce(0, 0, 5))
	assert.Equal(t, 3, Coalesce(3, 5))
	assert.Equal(t, 0, Coalesce[int]())
	assert.Equal(t, "a", Coalesce("", "a"))
}
