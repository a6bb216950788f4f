package mix

// Scalar is a blendable float32. Its accumulator is a running weighted sum.
type Scalar float32

var _ Mixable[Scalar] = Scalar(0)

// Mixer returns a fresh accumulator for one blend operation.
func (s Scalar) Mixer() Mixer[Scalar] {
	return new(scalarMixer)
}

type scalarMixer float32

func (m *scalarMixer) Add(v Scalar, weight Param) {
	*m += scalarMixer(float32(v) * weight)
}

func (m *scalarMixer) Close() Scalar {
	return Scalar(*m)
}

// Scalar64 is a blendable float64. Weights are widened from Param before
// accumulation so the sum stays in double precision.
type Scalar64 float64

var _ Mixable[Scalar64] = Scalar64(0)

// Mixer returns a fresh accumulator for one blend operation.
func (s Scalar64) Mixer() Mixer[Scalar64] {
	return new(scalar64Mixer)
}

type scalar64Mixer float64

func (m *scalar64Mixer) Add(v Scalar64, weight Param) {
	*m += scalar64Mixer(float64(v) * float64(weight))
}

func (m *scalar64Mixer) Close() Scalar64 {
	return Scalar64(*m)
}
