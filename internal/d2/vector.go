package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

func Elem(sides float64) r2.Vec {
	return r2.Vec{
		X: sides,
		Y: sides,
	}
}

func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// Dist returns the euclidean distance between a and b.
func Dist(a, b r2.Vec) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

type Set []r2.Vec

// Min return the minimum components of a set of vectors.
func (a Set) Min() r2.Vec {
	vmin := a[0]
	for _, v := range a[1:] {
		vmin = MinElem(vmin, v)
	}
	return vmin
}

// Max return the maximum components of a set of vectors.
func (a Set) Max() r2.Vec {
	vmax := a[0]
	for _, v := range a[1:] {
		vmax = MaxElem(vmax, v)
	}
	return vmax
}

// Bounds returns the smallest box containing every vector in the set.
func (a Set) Bounds() Box {
	return Box{a.Min(), a.Max()}
}

// PolarToXY converts polar to cartesian coordinates.
func PolarToXY(r, theta float64) r2.Vec {
	s, c := math.Sincos(theta)
	return r2.Vec{X: r * c, Y: r * s}
}
