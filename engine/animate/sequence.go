package animate

import (
	"slices"

	"github.com/Carmen-Shannon/animate-go/engine/mix"
)

// Sequence plays a queue of timed animations back to back. Each entry pairs
// a curve with the seconds it stays at the head; when an entry's time is
// spent the next entry takes over, with any residual delta carried forward,
// and an empty queue rests at the end value. A Sequence satisfies Animation
// itself and can also play inside an Animate via Play.
type Sequence[V mix.Mixable[V]] struct {
	queue []seqEntry[V]
	end   V
}

var _ Animation[mix.Scalar] = &Sequence[mix.Scalar]{}

type seqEntry[V mix.Mixable[V]] struct {
	anim Animate[V]
	left Time
}

// NewSequence returns an empty sequence resting at end.
//
// Parameters:
//   - end: the value held once the queue is empty
//
// Returns:
//   - *Sequence[V]: the new sequence
func NewSequence[V mix.Mixable[V]](end V) *Sequence[V] {
	return &Sequence[V]{end: end}
}

// Now returns the head entry's current value, or the end value when the
// queue is empty.
func (q *Sequence[V]) Now() V {
	if len(q.queue) == 0 {
		return q.end
	}
	return q.queue[0].anim.Now()
}

// Step advances the sequence by dt seconds. Entries whose remaining time is
// within dt are consumed whole, each spending its remainder from dt, and the
// first entry that outlasts the residual is advanced by it. Consumed entries
// leave the queue in one batch. Panics if dt is NaN.
func (q *Sequence[V]) Step(dt DeltaTime) {
	guardDelta(dt)
	consumed := 0
	for i := range q.queue {
		e := &q.queue[i]
		if e.left <= dt {
			dt -= e.left
			consumed++
			continue
		}
		e.anim.Step(dt)
		e.left -= dt
		break
	}
	q.queue = slices.Delete(q.queue, 0, consumed)
}

// Normalize applies a zero-duration Step, consuming any zero-duration
// entries at the head of the queue.
func (q *Sequence[V]) Normalize() {
	q.Step(0)
}

// Steady reports whether the sequence ends in a fixed state: true when the
// queue is empty or the last entry's curve is steady. It deliberately checks
// the tail rather than the playing head.
func (q *Sequence[V]) Steady() bool {
	if len(q.queue) == 0 {
		return true
	}
	return q.queue[len(q.queue)-1].anim.Steady()
}

// Before pushes an animation onto the front of the queue, making it the next
// to play ahead of the current head.
//
// Parameters:
//   - duration: seconds the entry stays at the head
//   - anim: the animation to play
func (q *Sequence[V]) Before(duration Time, anim Animate[V]) {
	q.queue = slices.Insert(q.queue, 0, seqEntry[V]{anim: anim, left: duration})
}

// After appends an animation to the back of the queue, playing it once every
// earlier entry has been consumed.
//
// Parameters:
//   - duration: seconds the entry stays at the head
//   - anim: the animation to play
func (q *Sequence[V]) After(duration Time, anim Animate[V]) {
	q.queue = append(q.queue, seqEntry[V]{anim: anim, left: duration})
}

// Len returns the number of entries waiting in the queue, including the one
// currently playing.
func (q *Sequence[V]) Len() int {
	return len(q.queue)
}

// End returns the value the sequence rests at once the queue is empty.
func (q *Sequence[V]) End() V {
	return q.end
}
