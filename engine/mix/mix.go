// package mix defines the weighted-blend capability that value types implement to take part in
// animation, plus blend adapters for common scalar, vector, point, rotation and transform types.
package mix

import "iter"

// Param is a blend factor. Weights are conventionally in [0, 1] and sum to 1
// across one blend operation, but several curve shapes deliberately run
// factors outside that range (extrapolation), so Param is never clamped.
type Param = float32

// Mixer accumulates weighted contributions of V into one blended value.
// A Mixer is transient: obtain a fresh one per blend operation, fold every
// (value, weight) pair into it with Add, then consume it exactly once with
// Close. Mixers do not normalize weights; if the weights do not sum to 1 the
// result is well defined but not necessarily meaningful.
type Mixer[V any] interface {
	// Add folds one weighted contribution into the accumulator.
	//
	// Parameters:
	//   - v: the value to contribute
	//   - weight: the contribution weight
	Add(v V, weight Param)

	// Close consumes the accumulator and produces the blended value. If no
	// values were added the result is not well defined.
	//
	// Returns:
	//   - V: the blended value
	Close() V
}

// Mixable is implemented by value types that can be blended. The constraint
// is self-referential: a type opts in by handing out fresh accumulators for
// itself, and the package-level blend functions derive linear, Bezier and
// arbitrary weighted blends from that single primitive. Composite types
// compose their accumulators from the accumulators of their parts.
type Mixable[V any] interface {
	// Mixer returns a fresh accumulator for one blend operation.
	//
	// Returns:
	//   - Mixer[V]: a new, empty accumulator
	Mixer() Mixer[V]
}

// Linear blends two values with linear interpolation, weights (1-t, t).
//
// Parameters:
//   - a: value at t = 0
//   - b: value at t = 1
//   - t: blend factor, not clamped to [0, 1]
//
// Returns:
//   - V: the blended value
func Linear[V Mixable[V]](a, b V, t Param) V {
	m := a.Mixer()
	m.Add(a, 1-t)
	m.Add(b, t)
	return m.Close()
}

// Quadratic blends three values along a quadratic Bezier curve, weights
// (s², 2st, t²) with s = 1-t.
//
// Parameters:
//   - a: start control point
//   - b: middle control point
//   - c: end control point
//   - t: curve position, not clamped to [0, 1]
//
// Returns:
//   - V: the blended value
func Quadratic[V Mixable[V]](a, b, c V, t Param) V {
	s := 1 - t
	m := a.Mixer()
	m.Add(a, s*s)
	m.Add(b, 2*s*t)
	m.Add(c, t*t)
	return m.Close()
}

// Cubic blends four values along a cubic Bezier curve, weights
// (s³, 3s²t, 3st², t³) with s = 1-t.
//
// Parameters:
//   - a: start control point
//   - b: first middle control point
//   - c: second middle control point
//   - d: end control point
//   - t: curve position, not clamped to [0, 1]
//
// Returns:
//   - V: the blended value
func Cubic[V Mixable[V]](a, b, c, d V, t Param) V {
	s := 1 - t
	m := a.Mixer()
	m.Add(a, s*s*s)
	m.Add(b, 3*s*s*t)
	m.Add(c, 3*s*t*t)
	m.Add(d, t*t*t)
	return m.Close()
}

// Mix blends a lazy sequence of weighted values with no arity limit. The
// caller guarantees the weights sum to 1.
//
// Parameters:
//   - pairs: the (value, weight) contributions
//
// Returns:
//   - V: the blended value, or the zero value of V if the sequence is empty
func Mix[V Mixable[V]](pairs iter.Seq2[V, Param]) V {
	var m Mixer[V]
	for v, w := range pairs {
		if m == nil {
			m = v.Mixer()
		}
		m.Add(v, w)
	}
	if m == nil {
		var zero V
		return zero
	}
	return m.Close()
}
