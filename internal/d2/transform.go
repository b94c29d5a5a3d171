package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Transform represents a 2D spatial transformation
// including translation and rotation.
type Transform struct {
	data [3 * 3]float64
}

// Rotate returns an orthographic 2d rotation matrix (right hand rule).
func Rotate(a float64) Transform {
	s, c := math.Sincos(a)
	return Transform{data: [9]float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}}
}

// Translate returns a 2d translation matrix.
func Translate(v r2.Vec) Transform {
	return Transform{data: [9]float64{
		1, 0, v.X,
		0, 1, v.Y,
		0, 0, 1,
	}}
}

func (t *Transform) At(i, j int) float64 {
	return t.data[i*3+j]
}

// ApplyPos transforms a position.
func (t Transform) ApplyPos(b r2.Vec) r2.Vec {
	return r2.Vec{
		X: t.At(0, 0)*b.X + t.At(0, 1)*b.Y + t.At(0, 2),
		Y: t.At(1, 0)*b.X + t.At(1, 1)*b.Y + t.At(1, 2),
	}
}

// ApplySet transforms every position in s into a new set.
func (t Transform) ApplySet(s Set) Set {
	out := make(Set, len(s))
	for i, v := range s {
		out[i] = t.ApplyPos(v)
	}
	return out
}
