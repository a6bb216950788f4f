package animate

import (
	"github.com/chewxy/math32"

	"github.com/Carmen-Shannon/animate-go/common"
	"github.com/Carmen-Shannon/animate-go/engine/mix"
)

// Animate is a curve state machine over a blendable value type: at any
// moment it is wholly one variant (a fixed value, an interpolation curve, a
// switch, a function-driven curve or a playing sequence), and every Step
// consumes the current variant and installs a complete replacement. No
// partially-updated state is ever observable, which is what makes a Step
// appear atomic to readers that honor the Animation contract.
//
// Timing fields on the terminating variants are countdowns: time remaining
// until an event, reduced by dt every Step. When a countdown runs out the
// variant collapses into Fixed holding the end value, and only Fixed reports
// Steady.
//
// The zero value of Animate behaves as Fixed of V's zero value.
type Animate[V mix.Mixable[V]] struct {
	state state[V]
}

var _ Animation[mix.Scalar] = &Animate[mix.Scalar]{}

// state is one curve variant. step consumes the variant and returns its
// replacement, so a transition is always a whole-state swap.
type state[V mix.Mixable[V]] interface {
	now() V
	step(dt DeltaTime) state[V]
	steady() bool
}

// guardDelta rejects NaN deltas before they can poison countdown
// comparisons. NaN here is always a programming error in the host.
func guardDelta(dt DeltaTime) {
	if math32.IsNaN(dt) {
		panic("animate: Step called with a NaN delta")
	}
}

// Now returns the current value of the curve.
func (a *Animate[V]) Now() V {
	if a.state == nil {
		var zero V
		return zero
	}
	return a.state.now()
}

// Step advances the curve by dt seconds, replacing the internal variant
// wholesale. Panics if dt is NaN.
func (a *Animate[V]) Step(dt DeltaTime) {
	guardDelta(dt)
	if a.state == nil {
		return
	}
	a.state = a.state.step(dt)
}

// Normalize applies a zero-duration Step.
func (a *Animate[V]) Normalize() {
	a.Step(0)
}

// Steady reports whether the curve has collapsed into a fixed value.
func (a *Animate[V]) Steady() bool {
	if a.state == nil {
		return true
	}
	return a.state.steady()
}

// Fixed returns an animation that outputs v forever. It is the only steady
// variant; every terminating curve ends up here.
//
// Parameters:
//   - v: the value to hold
//
// Returns:
//   - Animate[V]: the fixed animation
func Fixed[V mix.Mixable[V]](v V) Animate[V] {
	return Animate[V]{state: fixed[V]{v: v}}
}

// Slide returns an animation that glides from a to b over duration seconds.
// Each Step re-anchors the start point at the current value, so the motion
// eases against the remaining time rather than replaying a fixed curve. Once
// the remaining duration is spent (dt >= remaining) it becomes Fixed(b).
//
// Parameters:
//   - a: start value
//   - b: end value
//   - duration: seconds until b is reached
//
// Returns:
//   - Animate[V]: the sliding animation
func Slide[V mix.Mixable[V]](a, b V, duration Time) Animate[V] {
	return Animate[V]{state: slide[V]{a: a, b: b, t: duration}}
}

// Linear returns an unbounded interpolation from a to b: the output passes
// through a once start seconds have elapsed and through b once end seconds
// have elapsed, following the blend factor s/(s-t) of the two countdowns.
// Outside that window the same line extrapolates, and the curve never
// terminates on its own.
//
// Parameters:
//   - a: value at start seconds
//   - b: value at end seconds
//   - start: seconds until the output passes a
//   - end: seconds until the output passes b
//
// Returns:
//   - Animate[V]: the interpolating animation
func Linear[V mix.Mixable[V]](a, b V, start, end Time) Animate[V] {
	return Animate[V]{state: linear[V]{a: a, b: b, s: start, t: end}}
}

// Quadratic returns an unbounded quadratic Bezier interpolation through
// a→b→c with the same timing and extrapolation behavior as Linear.
//
// Parameters:
//   - a: curve start control point, reached at start seconds
//   - b: middle control point
//   - c: curve end control point, reached at end seconds
//   - start: seconds until the output passes a
//   - end: seconds until the output passes c
//
// Returns:
//   - Animate[V]: the interpolating animation
func Quadratic[V mix.Mixable[V]](a, b, c V, start, end Time) Animate[V] {
	return Animate[V]{state: quadratic[V]{a: a, b: b, c: c, s: start, t: end}}
}

// Cubic returns an unbounded cubic Bezier interpolation through a→b→c→d with
// the same timing and extrapolation behavior as Linear.
//
// Parameters:
//   - a: curve start control point, reached at start seconds
//   - b: first middle control point
//   - c: second middle control point
//   - d: curve end control point, reached at end seconds
//   - start: seconds until the output passes a
//   - end: seconds until the output passes d
//
// Returns:
//   - Animate[V]: the interpolating animation
func Cubic[V mix.Mixable[V]](a, b, c, d V, start, end Time) Animate[V] {
	return Animate[V]{state: cubic[V]{a: a, b: b, c: c, d: d, s: start, t: end}}
}

// BoundedLinear returns an interpolation from a to b that holds a until
// start seconds have elapsed, interpolates across the window, and becomes
// Fixed(b) once end seconds have elapsed.
//
// Parameters:
//   - a: value held before the window opens
//   - b: value fixed after the window closes
//   - start: seconds until the window opens
//   - end: seconds until the window closes
//
// Returns:
//   - Animate[V]: the interpolating animation
func BoundedLinear[V mix.Mixable[V]](a, b V, start, end Time) Animate[V] {
	return Animate[V]{state: boundedLinear[V]{a: a, b: b, s: start, t: end}}
}

// BoundedQuadratic returns a quadratic Bezier interpolation through a→b→c
// that holds a until start seconds have elapsed and becomes Fixed(c) once
// end seconds have elapsed.
//
// Parameters:
//   - a: value held before the window opens
//   - b: middle control point
//   - c: value fixed after the window closes
//   - start: seconds until the window opens
//   - end: seconds until the window closes
//
// Returns:
//   - Animate[V]: the interpolating animation
func BoundedQuadratic[V mix.Mixable[V]](a, b, c V, start, end Time) Animate[V] {
	return Animate[V]{state: boundedQuadratic[V]{a: a, b: b, c: c, s: start, t: end}}
}

// BoundedCubic returns a cubic Bezier interpolation through a→b→c→d that
// holds a until start seconds have elapsed and becomes Fixed(d) once end
// seconds have elapsed.
//
// Parameters:
//   - a: value held before the window opens
//   - b: first middle control point
//   - c: second middle control point
//   - d: value fixed after the window closes
//   - start: seconds until the window opens
//   - end: seconds until the window closes
//
// Returns:
//   - Animate[V]: the interpolating animation
func BoundedCubic[V mix.Mixable[V]](a, b, c, d V, start, end Time) Animate[V] {
	return Animate[V]{state: boundedCubic[V]{a: a, b: b, c: c, d: d, s: start, t: end}}
}

// Switch returns an animation that outputs a and snaps to Fixed(b) once more
// than after seconds have elapsed. A Step of exactly the remaining time
// keeps a with zero seconds left; the next positive Step snaps.
//
// Parameters:
//   - a: value before the switch
//   - b: value after the switch
//   - after: seconds until the switch
//
// Returns:
//   - Animate[V]: the switching animation
func Switch[V mix.Mixable[V]](a, b V, after Time) Animate[V] {
	return Animate[V]{state: hardSwitch[V]{a: a, b: b, t: after}}
}

// SmoothSwitch returns an animation that holds a until start seconds have
// elapsed, eases toward b along the smoothstep polynomial 3x²-2x³ of
// x = s/(s-t) across the window, and snaps to Fixed(b) once more than end
// seconds have elapsed. Inconsistent windows (start > end) extrapolate along
// the same polynomial rather than clamping.
//
// Parameters:
//   - a: value held before the window opens
//   - b: value fixed after the window closes
//   - start: seconds until the window opens
//   - end: seconds until the window closes
//
// Returns:
//   - Animate[V]: the easing animation
func SmoothSwitch[V mix.Mixable[V]](a, b V, start, end Time) Animate[V] {
	return Animate[V]{state: smoothSwitch[V]{a: a, b: b, s: start, t: end}}
}

// SoftSwitch returns an animation that holds a until start seconds have
// elapsed, blends with the weight (1-x)^shape of x = s/(s-t) across the
// window, and snaps to Fixed(b) once more than end seconds have elapsed.
// The shape exponent is an integer so negative bases (extrapolated windows)
// stay meaningful.
//
// Parameters:
//   - a: value held before the window opens
//   - b: value fixed after the window closes
//   - shape: integer exponent controlling the decay shape
//   - start: seconds until the window opens
//   - end: seconds until the window closes
//
// Returns:
//   - Animate[V]: the easing animation
func SoftSwitch[V mix.Mixable[V]](a, b V, shape int, start, end Time) Animate[V] {
	return Animate[V]{state: softSwitch[V]{a: a, b: b, exp: shape, s: start, t: end}}
}

// Func returns an animation that outputs f(x) with x starting at start and
// accumulating elapsed time. It never terminates. f may be shared across
// many animation instances; it must be safe for concurrent invocation if
// those instances are stepped from different goroutines.
//
// Parameters:
//   - f: the value function
//   - start: initial x in seconds
//
// Returns:
//   - Animate[V]: the function-driven animation
func Func[V mix.Mixable[V]](f func(Time) V, start Time) Animate[V] {
	if f == nil {
		panic("animate: Func requires a non-nil function")
	}
	return Animate[V]{state: valueFunc[V]{f: f, t: start}}
}

// MixFunc returns an animation that blends a and b with the weight f(x),
// with x starting at start and accumulating elapsed time. The weight is not
// clamped. It never terminates. The sharing rules of Func apply.
//
// Parameters:
//   - f: the weight function
//   - a: value at weight 0
//   - b: value at weight 1
//   - start: initial x in seconds
//
// Returns:
//   - Animate[V]: the function-driven animation
func MixFunc[V mix.Mixable[V]](f func(Time) mix.Param, a, b V, start Time) Animate[V] {
	if f == nil {
		panic("animate: MixFunc requires a non-nil function")
	}
	return Animate[V]{state: mixFunc[V]{f: f, a: a, b: b, t: start}}
}

// StepFunc returns an animation that applies the recurrence v = f(v, dt) on
// every Step and outputs the latest v. It never terminates. The sharing
// rules of Func apply.
//
// Parameters:
//   - f: the recurrence function
//   - initial: the starting value
//
// Returns:
//   - Animate[V]: the recurrence-driven animation
func StepFunc[V mix.Mixable[V]](f func(V, DeltaTime) V, initial V) Animate[V] {
	if f == nil {
		panic("animate: StepFunc requires a non-nil function")
	}
	return Animate[V]{state: stepFunc[V]{f: f, v: initial}}
}

// Play returns an animation that plays a sequence of animations. The curve
// shares the sequence: entries pushed with Before or After while it plays
// are picked up, and stepping the curve advances the sequence. The variant
// itself never reports Steady even when the queue has drained; query the
// sequence directly for its tail-based steadiness.
//
// Parameters:
//   - seq: the sequence to play
//
// Returns:
//   - Animate[V]: the playing animation
func Play[V mix.Mixable[V]](seq *Sequence[V]) Animate[V] {
	if seq == nil {
		panic("animate: Play requires a non-nil Sequence")
	}
	return Animate[V]{state: sequenceState[V]{seq: seq}}
}

// BounceSoft returns a MixFunc animation that leaves a, peaks at b halfway
// through duration and settles back at a, along the quartic (1-u²)² of the
// window position u = 2·(t/duration)-1. Outside the window the weight clips
// to 0, so the value rests at a.
//
// Parameters:
//   - a: resting value
//   - b: peak value
//   - duration: seconds for the full bounce
//
// Returns:
//   - Animate[V]: the bouncing animation
func BounceSoft[V mix.Mixable[V]](a, b V, duration Time) Animate[V] {
	return MixFunc(func(t Time) mix.Param {
		t /= duration
		if t < 0 || t > 1 {
			return 0
		}
		x := t*2 - 1
		x *= x
		return x*x - 2*x + 1
	}, a, b, 0)
}

// BounceHard returns a MixFunc animation like BounceSoft with the sharper
// quadratic weight 1-u².
//
// Parameters:
//   - a: resting value
//   - b: peak value
//   - duration: seconds for the full bounce
//
// Returns:
//   - Animate[V]: the bouncing animation
func BounceHard[V mix.Mixable[V]](a, b V, duration Time) Animate[V] {
	return MixFunc(func(t Time) mix.Param {
		t /= duration
		if t < 0 || t > 1 {
			return 0
		}
		x := t*2 - 1
		return 1 - x*x
	}, a, b, 0)
}

// fixed holds a value that no longer changes.
type fixed[V mix.Mixable[V]] struct {
	v V
}

func (f fixed[V]) now() V {
	return f.v
}

func (f fixed[V]) step(DeltaTime) state[V] {
	return f
}

func (f fixed[V]) steady() bool {
	return true
}

// slide re-anchors its start point at the blended current value every step,
// then shrinks the remaining time.
type slide[V mix.Mixable[V]] struct {
	a, b V
	t    Time
}

func (s slide[V]) now() V {
	return s.a
}

func (s slide[V]) step(dt DeltaTime) state[V] {
	if dt >= s.t {
		return fixed[V]{v: s.b}
	}
	return slide[V]{a: mix.Linear(s.a, s.b, dt/s.t), b: s.b, t: s.t - dt}
}

func (s slide[V]) steady() bool {
	return false
}

// linear follows the blend factor s/(s-t) of its two countdowns: 0 when the
// s countdown reaches zero, 1 when the t countdown does, a straight line in
// elapsed time everywhere else.
type linear[V mix.Mixable[V]] struct {
	a, b V
	s, t Time
}

func (l linear[V]) now() V {
	return mix.Linear(l.a, l.b, l.s/(l.s-l.t))
}

func (l linear[V]) step(dt DeltaTime) state[V] {
	return linear[V]{a: l.a, b: l.b, s: l.s - dt, t: l.t - dt}
}

func (l linear[V]) steady() bool {
	return false
}

type quadratic[V mix.Mixable[V]] struct {
	a, b, c V
	s, t    Time
}

func (q quadratic[V]) now() V {
	return mix.Quadratic(q.a, q.b, q.c, q.s/(q.s-q.t))
}

func (q quadratic[V]) step(dt DeltaTime) state[V] {
	return quadratic[V]{a: q.a, b: q.b, c: q.c, s: q.s - dt, t: q.t - dt}
}

func (q quadratic[V]) steady() bool {
	return false
}

type cubic[V mix.Mixable[V]] struct {
	a, b, c, d V
	s, t       Time
}

func (c cubic[V]) now() V {
	return mix.Cubic(c.a, c.b, c.c, c.d, c.s/(c.s-c.t))
}

func (c cubic[V]) step(dt DeltaTime) state[V] {
	return cubic[V]{a: c.a, b: c.b, c: c.c, d: c.d, s: c.s - dt, t: c.t - dt}
}

func (c cubic[V]) steady() bool {
	return false
}

// boundedLinear holds its first point while the s countdown is positive and
// collapses to Fixed once the t countdown is spent.
type boundedLinear[V mix.Mixable[V]] struct {
	a, b V
	s, t Time
}

func (l boundedLinear[V]) now() V {
	if l.s > 0 {
		return l.a
	}
	return mix.Linear(l.a, l.b, l.s/(l.s-l.t))
}

func (l boundedLinear[V]) step(dt DeltaTime) state[V] {
	if dt >= l.t {
		return fixed[V]{v: l.b}
	}
	return boundedLinear[V]{a: l.a, b: l.b, s: l.s - dt, t: l.t - dt}
}

func (l boundedLinear[V]) steady() bool {
	return false
}

type boundedQuadratic[V mix.Mixable[V]] struct {
	a, b, c V
	s, t    Time
}

func (q boundedQuadratic[V]) now() V {
	if q.s > 0 {
		return q.a
	}
	return mix.Quadratic(q.a, q.b, q.c, q.s/(q.s-q.t))
}

func (q boundedQuadratic[V]) step(dt DeltaTime) state[V] {
	if dt >= q.t {
		return fixed[V]{v: q.c}
	}
	return boundedQuadratic[V]{a: q.a, b: q.b, c: q.c, s: q.s - dt, t: q.t - dt}
}

func (q boundedQuadratic[V]) steady() bool {
	return false
}

type boundedCubic[V mix.Mixable[V]] struct {
	a, b, c, d V
	s, t       Time
}

func (c boundedCubic[V]) now() V {
	if c.s > 0 {
		return c.a
	}
	return mix.Cubic(c.a, c.b, c.c, c.d, c.s/(c.s-c.t))
}

func (c boundedCubic[V]) step(dt DeltaTime) state[V] {
	if dt >= c.t {
		return fixed[V]{v: c.d}
	}
	return boundedCubic[V]{a: c.a, b: c.b, c: c.c, d: c.d, s: c.s - dt, t: c.t - dt}
}

func (c boundedCubic[V]) steady() bool {
	return false
}

// hardSwitch outputs a until strictly more than its countdown has elapsed,
// then snaps to b.
type hardSwitch[V mix.Mixable[V]] struct {
	a, b V
	t    Time
}

func (h hardSwitch[V]) now() V {
	return h.a
}

func (h hardSwitch[V]) step(dt DeltaTime) state[V] {
	if dt > h.t {
		return fixed[V]{v: h.b}
	}
	return hardSwitch[V]{a: h.a, b: h.b, t: h.t - dt}
}

func (h hardSwitch[V]) steady() bool {
	return false
}

type smoothSwitch[V mix.Mixable[V]] struct {
	a, b V
	s, t Time
}

func (sw smoothSwitch[V]) now() V {
	if sw.s > 0 {
		return sw.a
	}
	x := sw.s / (sw.s - sw.t)
	return mix.Linear(sw.a, sw.b, common.Smoothstep(x))
}

func (sw smoothSwitch[V]) step(dt DeltaTime) state[V] {
	if dt > sw.t {
		return fixed[V]{v: sw.b}
	}
	return smoothSwitch[V]{a: sw.a, b: sw.b, s: sw.s - dt, t: sw.t - dt}
}

func (sw smoothSwitch[V]) steady() bool {
	return false
}

type softSwitch[V mix.Mixable[V]] struct {
	a, b V
	exp  int
	s, t Time
}

func (sw softSwitch[V]) now() V {
	if sw.s > 0 {
		return sw.a
	}
	x := sw.s / (sw.s - sw.t)
	return mix.Linear(sw.a, sw.b, common.PowInt(1-x, sw.exp))
}

func (sw softSwitch[V]) step(dt DeltaTime) state[V] {
	if dt > sw.t {
		return fixed[V]{v: sw.b}
	}
	return softSwitch[V]{a: sw.a, b: sw.b, exp: sw.exp, s: sw.s - dt, t: sw.t - dt}
}

func (sw softSwitch[V]) steady() bool {
	return false
}

// valueFunc outputs f(t) with t accumulating elapsed time.
type valueFunc[V mix.Mixable[V]] struct {
	f func(Time) V
	t Time
}

func (v valueFunc[V]) now() V {
	return v.f(v.t)
}

func (v valueFunc[V]) step(dt DeltaTime) state[V] {
	return valueFunc[V]{f: v.f, t: v.t + dt}
}

func (v valueFunc[V]) steady() bool {
	return false
}

// mixFunc blends its endpoints with the unclamped weight f(t).
type mixFunc[V mix.Mixable[V]] struct {
	f    func(Time) mix.Param
	a, b V
	t    Time
}

func (m mixFunc[V]) now() V {
	return mix.Linear(m.a, m.b, m.f(m.t))
}

func (m mixFunc[V]) step(dt DeltaTime) state[V] {
	return mixFunc[V]{f: m.f, a: m.a, b: m.b, t: m.t + dt}
}

func (m mixFunc[V]) steady() bool {
	return false
}

// stepFunc carries the latest value of the recurrence v = f(v, dt).
type stepFunc[V mix.Mixable[V]] struct {
	f func(V, DeltaTime) V
	v V
}

func (s stepFunc[V]) now() V {
	return s.v
}

func (s stepFunc[V]) step(dt DeltaTime) state[V] {
	return stepFunc[V]{f: s.f, v: s.f(s.v, dt)}
}

func (s stepFunc[V]) steady() bool {
	return false
}

// sequenceState adapts a Sequence into one curve variant. Only Fixed is
// terminal at the curve level, so the variant never reports steady even when
// the queue has drained.
type sequenceState[V mix.Mixable[V]] struct {
	seq *Sequence[V]
}

func (s sequenceState[V]) now() V {
	return s.seq.Now()
}

func (s sequenceState[V]) step(dt DeltaTime) state[V] {
	s.seq.Step(dt)
	return s
}

func (s sequenceState[V]) steady() bool {
	return false
}
