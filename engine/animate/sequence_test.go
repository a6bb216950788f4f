package animate

import (
	"math"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"github.com/stretchr/testify/assert"

	"github.com/Carmen-Shannon/animate-go/engine/mix"
)

func TestSequenceEmpty(t *testing.T) {
	seq := NewSequence(mix.Scalar(4))
	assert.Equal(t, mix.Scalar(4), seq.Now())
	assert.True(t, seq.Steady())
	assert.Equal(t, 0, seq.Len())
	assert.Equal(t, mix.Scalar(4), seq.End())

	seq.Step(1)
	assert.Equal(t, mix.Scalar(4), seq.Now())
}

func TestSequenceCarriesResidual(t *testing.T) {
	seq := NewSequence(mix.Scalar(2))
	seq.After(1, Slide(mix.Scalar(0), mix.Scalar(1), 1))
	seq.After(1, Slide(mix.Scalar(1), mix.Scalar(2), 1))

	// one large step consumes the first entry and lands 0.5 into the second
	seq.Step(1.5)
	tolassert.EqualTol(t, 1.5, float32(seq.Now()), standardTol)
	assert.Equal(t, 1, seq.Len())
}

func TestSequenceConsumeBoundary(t *testing.T) {
	seq := NewSequence(mix.Scalar(7))
	seq.After(1, Slide(mix.Scalar(0), mix.Scalar(1), 1))

	// a step of exactly the entry's time consumes it whole
	seq.Step(1)
	assert.Equal(t, mix.Scalar(7), seq.Now())
	assert.Equal(t, 0, seq.Len())
}

func TestSequenceDrains(t *testing.T) {
	seq := NewSequence(mix.Scalar(5))
	seq.After(1, Slide(mix.Scalar(0), mix.Scalar(1), 1))
	seq.After(1, Slide(mix.Scalar(1), mix.Scalar(2), 1))

	seq.Step(10)
	assert.Equal(t, mix.Scalar(5), seq.Now())
	assert.Equal(t, 0, seq.Len())
	assert.True(t, seq.Steady())
}

func TestSequenceBefore(t *testing.T) {
	seq := NewSequence(mix.Scalar(0))
	seq.After(1, Fixed(mix.Scalar(1)))
	seq.Before(1, Fixed(mix.Scalar(2)))

	// the prepended entry plays first
	assert.Equal(t, mix.Scalar(2), seq.Now())
	assert.Equal(t, 2, seq.Len())

	seq.Step(1)
	assert.Equal(t, mix.Scalar(1), seq.Now())
	assert.Equal(t, 1, seq.Len())
}

func TestSequenceNormalize(t *testing.T) {
	seq := NewSequence(mix.Scalar(0))
	seq.After(0, Fixed(mix.Scalar(1)))
	seq.After(1, Slide(mix.Scalar(3), mix.Scalar(4), 1))

	// a zero-duration head entry is consumed without spending time
	seq.Normalize()
	assert.Equal(t, 1, seq.Len())
	assert.Equal(t, mix.Scalar(3), seq.Now())

	seq.Normalize()
	assert.Equal(t, 1, seq.Len())
	assert.Equal(t, mix.Scalar(3), seq.Now())
}

func TestSequenceSteadyChecksTail(t *testing.T) {
	seq := NewSequence(mix.Scalar(0))
	seq.After(1, Slide(mix.Scalar(0), mix.Scalar(1), 1))
	seq.After(1, Fixed(mix.Scalar(1)))

	// the head is still sliding but the sequence ends fixed
	assert.True(t, seq.Steady())

	seq.After(1, Slide(mix.Scalar(1), mix.Scalar(2), 1))
	assert.False(t, seq.Steady())
}

func TestSequenceStepsHead(t *testing.T) {
	seq := NewSequence(mix.Scalar(0))
	seq.After(2, Slide(mix.Scalar(0), mix.Scalar(1), 1))

	// only the head advances; the entry outlives its curve and holds
	seq.Step(0.5)
	tolassert.EqualTol(t, 0.5, float32(seq.Now()), standardTol)

	seq.Step(0.5)
	assert.Equal(t, mix.Scalar(1), seq.Now())

	seq.Step(0.5)
	assert.Equal(t, mix.Scalar(1), seq.Now())
	assert.Equal(t, 1, seq.Len())
}

func TestSequenceStepNaNPanics(t *testing.T) {
	seq := NewSequence(mix.Scalar(0))
	assert.Panics(t, func() {
		seq.Step(float32(math.NaN()))
	})
}
