package common

// Lerp linearly interpolates between two values.
//
// Parameters:
//   - a: value at t = 0
//   - b: value at t = 1
//   - t: blend factor, not clamped to [0, 1]
//
// Returns:
//   - float32: a*(1-t) + b*t
func Lerp(a, b, t float32) float32 {
	return a*(1-t) + b*t
}

// Smoothstep evaluates the cubic smoothstep polynomial 3x² - 2x³.
// The input is not clamped; values outside [0, 1] extrapolate along the
// same polynomial.
//
// Parameters:
//   - x: curve position, conventionally in [0, 1]
//
// Returns:
//   - float32: the eased position
func Smoothstep(x float32) float32 {
	xx := x * x
	return 3*xx - 2*xx*x
}

// PowInt raises x to an integer power by repeated multiplication. Unlike a
// float power function it stays meaningful for negative bases, which keeps
// extrapolated curve positions well defined. A negative exponent inverts
// the result; PowInt(0, n) for n < 0 divides by zero and returns +Inf.
//
// Parameters:
//   - x: base value
//   - n: integer exponent
//
// Returns:
//   - float32: x^n
func PowInt(x float32, n int) float32 {
	if n < 0 {
		return 1 / PowInt(x, -n)
	}
	result := float32(1)
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			result *= x
		}
		x *= x
	}
	return result
}
