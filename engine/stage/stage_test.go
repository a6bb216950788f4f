package stage

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"github.com/stretchr/testify/assert"

	"github.com/Carmen-Shannon/animate-go/engine/animate"
	"github.com/Carmen-Shannon/animate-go/engine/mix"
)

const standardTol = float32(1.0e-5)

// countStepper records how it has been driven.
type countStepper struct {
	steps  int
	total  float32
	steady bool
}

func (c *countStepper) Step(dt float32) {
	c.steps++
	c.total += dt
}

func (c *countStepper) Steady() bool {
	return c.steady
}

func TestStageAddGetRemove(t *testing.T) {
	s := NewStage("test")
	assert.Equal(t, "test", s.Name())
	assert.Equal(t, 0, s.Count())

	c := &countStepper{}
	id := s.Add(c)
	assert.Same(t, c, s.Get(id))
	assert.Equal(t, 1, s.Count())

	s.Remove(id)
	assert.Nil(t, s.Get(id))
	assert.Equal(t, 0, s.Count())
}

func TestStageAddNilPanics(t *testing.T) {
	s := NewStage("test")
	assert.Panics(t, func() {
		s.Add(nil)
	})
}

func TestStageDefaultName(t *testing.T) {
	s := NewStage("")
	assert.Equal(t, "stage", s.Name())

	s.SetName("renamed")
	assert.Equal(t, "renamed", s.Name())
}

func TestStageStep(t *testing.T) {
	s := NewStage("test")

	a := animate.Slide(mix.Scalar(0), mix.Scalar(1), 1)
	b := animate.Slide(mix.Scalar(0), mix.Scalar(4), 1)
	s.Add(&a)
	s.Add(&b)

	s.Step(0.5)
	tolassert.EqualTol(t, 0.5, float32(a.Now()), standardTol)
	tolassert.EqualTol(t, 2, float32(b.Now()), standardTol)

	s.Step(0.5)
	assert.True(t, a.Steady())
	assert.True(t, b.Steady())
}

func TestStageStepParallel(t *testing.T) {
	s := NewStage("test", WithStepWorkers(4), WithParallelThreshold(1))

	const n = 100
	steppers := make([]*countStepper, n)
	for i := range steppers {
		steppers[i] = &countStepper{}
		s.Add(steppers[i])
	}

	s.Step(0.25)
	s.Step(0.25)

	// every channel is stepped exactly once per tick
	for i, c := range steppers {
		assert.Equal(t, 2, c.steps, "stepper %d", i)
		tolassert.EqualTol(t, 0.5, c.total, standardTol)
	}
}

func TestStagePrune(t *testing.T) {
	s := NewStage("test")

	done := animate.Fixed(mix.Scalar(1))
	busy := animate.Slide(mix.Scalar(0), mix.Scalar(1), 10)
	s.Add(&done)
	id := s.Add(&busy)

	assert.Equal(t, 1, s.SteadyCount())
	assert.Equal(t, 1, s.Prune())
	assert.Equal(t, 1, s.Count())
	assert.Same(t, &busy, s.Get(id))
}

func TestStageWithSteppers(t *testing.T) {
	a := &countStepper{}
	b := &countStepper{}
	s := NewStage("test", WithSteppers(a, b))

	assert.Equal(t, 2, s.Count())
	assert.Same(t, a, s.Get(1))
	assert.Same(t, b, s.Get(2))
}

func TestStageClear(t *testing.T) {
	s := NewStage("test", WithSteppers(&countStepper{}, &countStepper{}))
	s.Clear()
	assert.Equal(t, 0, s.Count())
}
