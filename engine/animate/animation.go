// package animate implements time-driven value animation: a curve state machine over any
// blendable value type, and a timed sequence that plays several curves back to back.
package animate

// Time is a point or span of time in seconds.
type Time = float32

// DeltaTime is elapsed time in seconds, expected to be non-negative.
type DeltaTime = float32

// Animation is the uniform contract every animation-like entity implements.
//
// A host loop owns animation instances, calls Step once per tick with the
// elapsed seconds, then reads Now to obtain the value it consumes. Step is a
// non-reentrant mutation: no two Step calls on the same instance may run
// concurrently, and Now must not run concurrently with a Step on the same
// instance. Now is safe to call concurrently with other Now calls. No
// locking is provided internally; a host sharing one instance across
// goroutines serializes access itself. There is no cancellation: stopping an
// animation means replacing the instance, typically with Fixed.
type Animation[V any] interface {
	// Now returns the current value. It is a pure query with no mutation,
	// idempotent between Step calls.
	//
	// Returns:
	//   - V: the current value
	Now() V

	// Step advances the animation by dt seconds. dt is expected to be
	// non-negative; behavior for negative deltas is unspecified. A large
	// delta fast-forwards across internal phase boundaries in a single
	// call. Step panics if dt is NaN.
	//
	// Parameters:
	//   - dt: elapsed seconds since the previous Step
	Step(dt DeltaTime)

	// Normalize applies a zero-duration Step, coercing construction-time
	// edge cases (an already-expired bounded curve, zero-duration queue
	// entries) into canonical form without consuming time. Normalizing an
	// already-canonical animation changes nothing.
	Normalize()

	// Steady reports whether future Step calls can no longer change the
	// observable output.
	//
	// Returns:
	//   - bool: true once the animation is terminal
	Steady() bool
}
