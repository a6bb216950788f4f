package mix

import (
	"iter"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"github.com/stretchr/testify/assert"
)

const standardTol = float32(1.0e-5)

func weighted[V Mixable[V]](vals []V, weights []Param) iter.Seq2[V, Param] {
	return func(yield func(V, Param) bool) {
		for i := range vals {
			if !yield(vals[i], weights[i]) {
				return
			}
		}
	}
}

func TestLinear(t *testing.T) {
	assert.Equal(t, Scalar(3), Linear(Scalar(3), Scalar(7), 0))
	assert.Equal(t, Scalar(7), Linear(Scalar(3), Scalar(7), 1))
	tolassert.EqualTol(t, 5, float32(Linear(Scalar(3), Scalar(7), 0.5)), standardTol)

	// factors outside [0, 1] extrapolate along the same line
	tolassert.EqualTol(t, 11, float32(Linear(Scalar(3), Scalar(7), 2)), standardTol)
	tolassert.EqualTol(t, -1, float32(Linear(Scalar(3), Scalar(7), -1)), standardTol)
}

func TestQuadratic(t *testing.T) {
	a, b, c := Scalar(1), Scalar(2), Scalar(3)
	assert.Equal(t, a, Quadratic(a, b, c, 0))
	assert.Equal(t, c, Quadratic(a, b, c, 1))
	tolassert.EqualTol(t, 0.25*1+0.5*2+0.25*3, float32(Quadratic(a, b, c, 0.5)), standardTol)
}

func TestCubic(t *testing.T) {
	a, b, c, d := Scalar(0), Scalar(1), Scalar(2), Scalar(3)
	assert.Equal(t, a, Cubic(a, b, c, d, 0))
	assert.Equal(t, d, Cubic(a, b, c, d, 1))
	tolassert.EqualTol(t, (0+3*1+3*2+3)/8.0, float32(Cubic(a, b, c, d, 0.5)), standardTol)
}

func TestMix(t *testing.T) {
	got := Mix(weighted([]Scalar{3, 7}, []Param{0.25, 0.75}))
	tolassert.EqualTol(t, 6, float32(got), standardTol)

	got = Mix(weighted([]Scalar{1, 2, 4}, []Param{0.5, 0.25, 0.25}))
	tolassert.EqualTol(t, 2, float32(got), standardTol)
}

func TestMixEmpty(t *testing.T) {
	got := Mix(weighted[Scalar](nil, nil))
	assert.Equal(t, Scalar(0), got)
}

func TestScalar64(t *testing.T) {
	got := Linear(Scalar64(3), Scalar64(7), 0.75)
	assert.InDelta(t, 6, float64(got), 1.0e-9)

	got = Mix(weighted([]Scalar64{3, 7}, []Param{0.25, 0.75}))
	assert.InDelta(t, 6, float64(got), 1.0e-9)
}

func TestMixerReuse(t *testing.T) {
	// each blend gets a fresh accumulator, so back-to-back blends of the
	// same values cannot contaminate each other
	a, b := Scalar(1), Scalar(5)
	first := Linear(a, b, 0.5)
	second := Linear(a, b, 0.5)
	assert.Equal(t, first, second)
}
