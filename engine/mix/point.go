package mix

import (
	"image"

	"cogentcore.org/core/math32"
)

// Point is a blendable integer pixel point. Coordinates are extracted to
// float32 for accumulation and rounded back on close, so a blend never
// truncates toward zero.
type Point image.Point

var _ Mixable[Point] = Point{}

// Mixer returns a fresh accumulator for one blend operation.
func (p Point) Mixer() Mixer[Point] {
	return &pointMixer{}
}

type pointMixer struct {
	x, y float32
}

func (m *pointMixer) Add(p Point, weight Param) {
	m.x += float32(p.X) * weight
	m.y += float32(p.Y) * weight
}

func (m *pointMixer) Close() Point {
	return Point{
		X: int(math32.Round(m.x)),
		Y: int(math32.Round(m.y)),
	}
}
