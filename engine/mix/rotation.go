package mix

import "cogentcore.org/core/math32"

// unitEps is the magnitude floor below which a blended rotation is treated
// as degenerate and returned without renormalization.
const unitEps = 1.0e-7

// Quat is a blendable quaternion, mixed component-wise with no
// renormalization. The blend of unit quaternions is generally not unit; use
// Rotation when a unit result is required.
type Quat math32.Quat

var _ Mixable[Quat] = Quat{}

// Mixer returns a fresh accumulator for one blend operation.
func (q Quat) Mixer() Mixer[Quat] {
	return &quatMixer{}
}

type quatMixer math32.Quat

func (m *quatMixer) Add(v Quat, weight Param) {
	m.X += v.X * weight
	m.Y += v.Y * weight
	m.Z += v.Z * weight
	m.W += v.W * weight
}

func (m *quatMixer) Close() Quat {
	return Quat(*m)
}

// Rotation is a blendable unit rotation. Contributions accumulate as a
// weighted quaternion sum that is renormalized on close. If the accumulated
// magnitude degenerates to near zero (opposite rotations at equal weight,
// for example) the unnormalized sum is returned as-is instead of failing;
// callers relying on unit output must avoid such configurations.
type Rotation math32.Quat

var _ Mixable[Rotation] = Rotation{}

// RotationIdentity returns the identity rotation.
func RotationIdentity() Rotation {
	var q math32.Quat
	q.SetIdentity()
	return Rotation(q)
}

// Mixer returns a fresh accumulator for one blend operation.
func (r Rotation) Mixer() Mixer[Rotation] {
	return &rotationMixer{}
}

type rotationMixer math32.Quat

func (m *rotationMixer) Add(v Rotation, weight Param) {
	m.X += v.X * weight
	m.Y += v.Y * weight
	m.Z += v.Z * weight
	m.W += v.W * weight
}

func (m *rotationMixer) Close() Rotation {
	l := math32.Sqrt(m.X*m.X + m.Y*m.Y + m.Z*m.Z + m.W*m.W)
	if l <= unitEps {
		return Rotation(*m)
	}
	inv := 1 / l
	return Rotation{X: m.X * inv, Y: m.Y * inv, Z: m.Z * inv, W: m.W * inv}
}
