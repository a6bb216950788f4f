package mix

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"github.com/stretchr/testify/assert"

	"cogentcore.org/core/math32"
)

func tolAssertEqualRotation(t *testing.T, want, got Rotation) {
	tolassert.EqualTol(t, want.X, got.X, standardTol)
	tolassert.EqualTol(t, want.Y, got.Y, standardTol)
	tolassert.EqualTol(t, want.Z, got.Z, standardTol)
	tolassert.EqualTol(t, want.W, got.W, standardTol)
}

func TestRotationIdentity(t *testing.T) {
	id := RotationIdentity()
	assert.Equal(t, Rotation{W: 1}, id)
}

func TestRotationBlend(t *testing.T) {
	id := RotationIdentity()
	halfTurn := Rotation{Z: math32.Sqrt2 / 2, W: math32.Sqrt2 / 2} // 90 degrees about z

	// the halfway blend of two unit rotations renormalizes to the exact
	// bisecting rotation, here 45 degrees about z
	got := Linear(id, halfTurn, 0.5)
	want := Rotation{Z: math32.Sin(math32.Pi / 8), W: math32.Cos(math32.Pi / 8)}
	tolAssertEqualRotation(t, want, got)

	l := math32.Sqrt(got.X*got.X + got.Y*got.Y + got.Z*got.Z + got.W*got.W)
	tolassert.EqualTol(t, 1, l, standardTol)
}

func TestRotationDegenerate(t *testing.T) {
	q := RotationIdentity()
	neg := Rotation{W: -1}

	// opposite rotations at equal weight cancel; the near-zero sum comes
	// back unnormalized instead of exploding into NaN
	got := Linear(q, neg, 0.5)
	assert.Equal(t, Rotation{}, got)
}

func TestQuatRawBlend(t *testing.T) {
	a := Quat{W: 1}
	b := Quat{Z: math32.Sqrt2 / 2, W: math32.Sqrt2 / 2}

	// raw component blend does not renormalize
	got := Linear(a, b, 0.5)
	tolassert.EqualTol(t, math32.Sqrt2/4, got.Z, standardTol)
	tolassert.EqualTol(t, 0.5+math32.Sqrt2/4, got.W, standardTol)

	l := math32.Sqrt(got.X*got.X + got.Y*got.Y + got.Z*got.Z + got.W*got.W)
	assert.Less(t, l, float32(1))
}
