package cycloid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Evaluate returns the rotor profile point at curve parameter t (radians)
// for major radius R, roller radius Rr, eccentricity E and N pins.
// N must not be 1 and E*N must not be zero.
func Evaluate(t, R, Rr, E, N float64) (x, y float64) {
	// atan2 keeps psi in the correct quadrant over the whole span.
	psi := math.Atan2(math.Sin((1-N)*t), R/(E*N)-math.Cos((1-N)*t))
	x = R*math.Cos(t) - Rr*math.Cos(t+psi) - E*math.Cos(N*t)
	y = -R*math.Sin(t) + Rr*math.Sin(t+psi) + E*math.Sin(N*t)
	return x, y
}

// Point returns the profile point at curve parameter t.
func Point(t float64, p Parameters) r2.Vec {
	x, y := Evaluate(t, p.R, p.Rr, p.E, p.N)
	return r2.Vec{X: x, Y: y}
}
