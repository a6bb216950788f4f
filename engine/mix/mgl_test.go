package mix

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

const standardTol64 = 1.0e-12

func TestVec3d(t *testing.T) {
	a := Vec3d{1, 2, 3}
	b := Vec3d{3, 6, 9}
	mid := Linear(a, b, 0.5)
	for i := range mid {
		assert.InDelta(t, (a[i]+b[i])/2, mid[i], standardTol64)
	}
	assert.Equal(t, a, Linear(a, b, 0))
	assert.Equal(t, b, Linear(a, b, 1))
}

func TestVec2dVec4d(t *testing.T) {
	m2 := Linear(Vec2d{0, 2}, Vec2d{4, 6}, 0.5)
	assert.InDelta(t, 2, m2[0], standardTol64)
	assert.InDelta(t, 4, m2[1], standardTol64)

	m4 := Linear(Vec4d{1, 2, 3, 4}, Vec4d{5, 6, 7, 8}, 0.5)
	for i := range m4 {
		assert.InDelta(t, float64(i)+3, m4[i], standardTol64)
	}
}

func TestMat4d(t *testing.T) {
	var a, b Mat4d
	for i := range b {
		a[i] = float64(i)
		b[i] = float64(i) + 4
	}
	mid := Linear(a, b, 0.5)
	for i := range mid {
		assert.InDelta(t, float64(i)+2, mid[i], standardTol64)
	}
}

func TestQuatdBlend(t *testing.T) {
	id := QuatdIdentity()
	halfTurn := Quatd{W: math.Sqrt2 / 2, V: mgl64.Vec3{0, 0, math.Sqrt2 / 2}}

	got := Linear(id, halfTurn, 0.5)
	assert.InDelta(t, math.Cos(math.Pi/8), got.W, 1.0e-9)
	assert.InDelta(t, math.Sin(math.Pi/8), got.V[2], 1.0e-9)

	l := math.Sqrt(got.W*got.W + got.V[0]*got.V[0] + got.V[1]*got.V[1] + got.V[2]*got.V[2])
	assert.InDelta(t, 1, l, 1.0e-12)
}

func TestQuatdDegenerate(t *testing.T) {
	id := QuatdIdentity()
	neg := Quatd{W: -1}

	got := Linear(id, neg, 0.5)
	assert.Equal(t, Quatd{}, got)
}
