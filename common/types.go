// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"cogentcore.org/core/math32"
)

// Rigid is a rigid-body transform: a rotation followed by a translation.
// It carries no scale or shear, so distances and angles are preserved.
type Rigid struct {
	// Quat is the rotation component. It is expected to be a unit quaternion.
	Quat math32.Quat
	// Pos is the translation component in world units.
	Pos math32.Vector3
}

// NewRigid creates a rigid transform from a translation and a rotation.
//
// Parameters:
//   - pos: translation component
//   - quat: rotation component (unit quaternion)
//
// Returns:
//   - Rigid: the assembled transform
func NewRigid(pos math32.Vector3, quat math32.Quat) Rigid {
	return Rigid{Quat: quat, Pos: pos}
}

// RigidIdentity returns the identity rigid transform (no rotation, no
// translation).
func RigidIdentity() Rigid {
	var q math32.Quat
	q.SetIdentity()
	return Rigid{Quat: q}
}

// Apply transforms a point by this transform: rotate, then translate.
//
// Parameters:
//   - v: point in local space
//
// Returns:
//   - math32.Vector3: point in world space
func (r Rigid) Apply(v math32.Vector3) math32.Vector3 {
	return v.MulQuat(r.Quat).Add(r.Pos)
}

// Mat4 composes the transform into a 4x4 matrix suitable for host-side
// placement math.
//
// Returns:
//   - math32.Matrix4: rotation and translation with unit scale
func (r Rigid) Mat4() math32.Matrix4 {
	var m math32.Matrix4
	m.SetTransform(r.Pos, r.Quat, math32.Vec3(1, 1, 1))
	return m
}

// Similarity is a rigid transform with a uniform scale channel: scale, then
// rotate, then translate. Angles are preserved; distances scale uniformly.
type Similarity struct {
	// Quat is the rotation component. It is expected to be a unit quaternion.
	Quat math32.Quat
	// Pos is the translation component in world units.
	Pos math32.Vector3
	// Scale is the uniform scale factor applied before rotation.
	Scale float32
}

// NewSimilarity creates a similarity transform from a translation, a
// rotation and a uniform scale.
//
// Parameters:
//   - pos: translation component
//   - quat: rotation component (unit quaternion)
//   - scale: uniform scale factor
//
// Returns:
//   - Similarity: the assembled transform
func NewSimilarity(pos math32.Vector3, quat math32.Quat, scale float32) Similarity {
	return Similarity{Quat: quat, Pos: pos, Scale: scale}
}

// SimilarityIdentity returns the identity similarity transform (unit scale,
// no rotation, no translation).
func SimilarityIdentity() Similarity {
	var q math32.Quat
	q.SetIdentity()
	return Similarity{Quat: q, Scale: 1}
}

// Apply transforms a point by this transform: scale, rotate, then translate.
//
// Parameters:
//   - v: point in local space
//
// Returns:
//   - math32.Vector3: point in world space
func (s Similarity) Apply(v math32.Vector3) math32.Vector3 {
	return v.MulScalar(s.Scale).MulQuat(s.Quat).Add(s.Pos)
}

// Mat4 composes the transform into a 4x4 matrix suitable for host-side
// placement math.
//
// Returns:
//   - math32.Matrix4: rotation, translation and uniform scale
func (s Similarity) Mat4() math32.Matrix4 {
	var m math32.Matrix4
	m.SetTransform(s.Pos, s.Quat, math32.Vec3(s.Scale, s.Scale, s.Scale))
	return m
}
