package mix

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// unitEps64 is the double-precision magnitude floor below which a blended
// rotation is treated as degenerate and returned without renormalization.
const unitEps64 = 1.0e-14

// Vec2d, Vec3d and Vec4d are blendable double-precision vectors for hosts
// that track world coordinates in float64. Weights widen from Param before
// accumulation.
type Vec2d mgl64.Vec2

// Vec3d is the blendable form of mgl64.Vec3.
type Vec3d mgl64.Vec3

// Vec4d is the blendable form of mgl64.Vec4.
type Vec4d mgl64.Vec4

var (
	_ Mixable[Vec2d] = Vec2d{}
	_ Mixable[Vec3d] = Vec3d{}
	_ Mixable[Vec4d] = Vec4d{}
)

// Mixer returns a fresh accumulator for one blend operation.
func (v Vec2d) Mixer() Mixer[Vec2d] {
	return &vec2dMixer{}
}

type vec2dMixer mgl64.Vec2

func (m *vec2dMixer) Add(v Vec2d, weight Param) {
	w := float64(weight)
	for i := range m {
		m[i] += v[i] * w
	}
}

func (m *vec2dMixer) Close() Vec2d {
	return Vec2d(*m)
}

// Mixer returns a fresh accumulator for one blend operation.
func (v Vec3d) Mixer() Mixer[Vec3d] {
	return &vec3dMixer{}
}

type vec3dMixer mgl64.Vec3

func (m *vec3dMixer) Add(v Vec3d, weight Param) {
	w := float64(weight)
	for i := range m {
		m[i] += v[i] * w
	}
}

func (m *vec3dMixer) Close() Vec3d {
	return Vec3d(*m)
}

// Mixer returns a fresh accumulator for one blend operation.
func (v Vec4d) Mixer() Mixer[Vec4d] {
	return &vec4dMixer{}
}

type vec4dMixer mgl64.Vec4

func (m *vec4dMixer) Add(v Vec4d, weight Param) {
	w := float64(weight)
	for i := range m {
		m[i] += v[i] * w
	}
}

func (m *vec4dMixer) Close() Vec4d {
	return Vec4d(*m)
}

// Mat4d is a blendable double-precision 4x4 matrix, mixed cell by cell.
type Mat4d mgl64.Mat4

var _ Mixable[Mat4d] = Mat4d{}

// Mixer returns a fresh accumulator for one blend operation.
func (v Mat4d) Mixer() Mixer[Mat4d] {
	return &mat4dMixer{}
}

type mat4dMixer mgl64.Mat4

func (m *mat4dMixer) Add(v Mat4d, weight Param) {
	w := float64(weight)
	for i := range m {
		m[i] += v[i] * w
	}
}

func (m *mat4dMixer) Close() Mat4d {
	return Mat4d(*m)
}

// Quatd is a blendable double-precision unit rotation with the same
// weighted-sum-then-renormalize behavior as Rotation, including the
// degenerate fallback to the unnormalized sum.
type Quatd mgl64.Quat

var _ Mixable[Quatd] = Quatd{}

// QuatdIdentity returns the identity rotation.
func QuatdIdentity() Quatd {
	return Quatd(mgl64.QuatIdent())
}

// Mixer returns a fresh accumulator for one blend operation.
func (q Quatd) Mixer() Mixer[Quatd] {
	return &quatdMixer{}
}

type quatdMixer struct {
	w float64
	v mgl64.Vec3
}

func (m *quatdMixer) Add(q Quatd, weight Param) {
	w := float64(weight)
	m.w += q.W * w
	for i := range m.v {
		m.v[i] += q.V[i] * w
	}
}

func (m *quatdMixer) Close() Quatd {
	l := math.Sqrt(m.w*m.w + m.v[0]*m.v[0] + m.v[1]*m.v[1] + m.v[2]*m.v[2])
	if l <= unitEps64 {
		return Quatd{W: m.w, V: m.v}
	}
	inv := 1 / l
	return Quatd{
		W: m.w * inv,
		V: mgl64.Vec3{m.v[0] * inv, m.v[1] * inv, m.v[2] * inv},
	}
}
