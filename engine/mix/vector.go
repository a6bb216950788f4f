package mix

import "cogentcore.org/core/math32"

// Vec2 is a blendable 2D vector, mixed component-wise.
type Vec2 math32.Vector2

var _ Mixable[Vec2] = Vec2{}

// Mixer returns a fresh accumulator for one blend operation.
func (v Vec2) Mixer() Mixer[Vec2] {
	return &vec2Mixer{}
}

type vec2Mixer math32.Vector2

func (m *vec2Mixer) Add(v Vec2, weight Param) {
	m.X += v.X * weight
	m.Y += v.Y * weight
}

func (m *vec2Mixer) Close() Vec2 {
	return Vec2(*m)
}

// Vec3 is a blendable 3D vector, mixed component-wise.
type Vec3 math32.Vector3

var _ Mixable[Vec3] = Vec3{}

// Mixer returns a fresh accumulator for one blend operation.
func (v Vec3) Mixer() Mixer[Vec3] {
	return &vec3Mixer{}
}

type vec3Mixer math32.Vector3

func (m *vec3Mixer) Add(v Vec3, weight Param) {
	m.X += v.X * weight
	m.Y += v.Y * weight
	m.Z += v.Z * weight
}

func (m *vec3Mixer) Close() Vec3 {
	return Vec3(*m)
}

// Vec4 is a blendable 4D vector, mixed component-wise.
type Vec4 math32.Vector4

var _ Mixable[Vec4] = Vec4{}

// Mixer returns a fresh accumulator for one blend operation.
func (v Vec4) Mixer() Mixer[Vec4] {
	return &vec4Mixer{}
}

type vec4Mixer math32.Vector4

func (m *vec4Mixer) Add(v Vec4, weight Param) {
	m.X += v.X * weight
	m.Y += v.Y * weight
	m.Z += v.Z * weight
	m.W += v.W * weight
}

func (m *vec4Mixer) Close() Vec4 {
	return Vec4(*m)
}
