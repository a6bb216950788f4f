package mix

import (
	"cogentcore.org/core/math32"

	"github.com/Carmen-Shannon/animate-go/common"
)

// Rigid is a blendable rigid transform. The rotation and translation blend
// independently through their own accumulators and recombine on close, so
// the result is again a rotation plus a translation (with the rotation unit
// unless the blend was degenerate, see Rotation).
type Rigid common.Rigid

var _ Mixable[Rigid] = Rigid{}

// Mixer returns a fresh accumulator for one blend operation.
func (r Rigid) Mixer() Mixer[Rigid] {
	return &rigidMixer{}
}

// rigidMixer is the pair of part accumulators.
type rigidMixer struct {
	rot rotationMixer
	pos vec3Mixer
}

func (m *rigidMixer) Add(v Rigid, weight Param) {
	m.rot.Add(Rotation(v.Quat), weight)
	m.pos.Add(Vec3(v.Pos), weight)
}

func (m *rigidMixer) Close() Rigid {
	return Rigid{
		Quat: math32.Quat(m.rot.Close()),
		Pos:  math32.Vector3(m.pos.Close()),
	}
}

// Similarity is a blendable similarity transform: the rigid part and the
// uniform scale channel blend independently.
type Similarity common.Similarity

var _ Mixable[Similarity] = Similarity{}

// Mixer returns a fresh accumulator for one blend operation.
func (s Similarity) Mixer() Mixer[Similarity] {
	return &similarityMixer{}
}

// similarityMixer nests the rigid accumulator next to a scale accumulator.
type similarityMixer struct {
	rigid rigidMixer
	scale scalarMixer
}

func (m *similarityMixer) Add(v Similarity, weight Param) {
	m.rigid.Add(Rigid{Quat: v.Quat, Pos: v.Pos}, weight)
	m.scale.Add(Scalar(v.Scale), weight)
}

func (m *similarityMixer) Close() Similarity {
	r := m.rigid.Close()
	return Similarity{
		Quat:  r.Quat,
		Pos:   r.Pos,
		Scale: float32(m.scale.Close()),
	}
}
