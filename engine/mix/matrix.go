package mix

import "cogentcore.org/core/math32"

// Mat4 is a blendable 4x4 matrix, mixed cell by cell. Mixing rotation
// matrices this way does not keep them orthonormal; use Rotation when a unit
// result is required.
type Mat4 math32.Matrix4

var _ Mixable[Mat4] = Mat4{}

// Mixer returns a fresh accumulator for one blend operation.
func (v Mat4) Mixer() Mixer[Mat4] {
	return &mat4Mixer{}
}

type mat4Mixer math32.Matrix4

func (m *mat4Mixer) Add(v Mat4, weight Param) {
	for i := range m {
		m[i] += v[i] * weight
	}
}

func (m *mat4Mixer) Close() Mat4 {
	return Mat4(*m)
}
