package cycloid

import "math"

const (
	pi  = math.Pi
	tau = 2 * pi
)

// RtoD converts radians to degrees
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
