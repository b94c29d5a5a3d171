package cycloid

// direction of the last step size correction.
type direction uint8

const (
	holding   direction = iota // no correction made yet
	shrinking                  // last chord was too long
	growing                    // last chord was too short
)

// bounds is the accepted chord length interval [min, max].
type bounds struct {
	min, max float64
}

// stepState is the step size controller state for one sampled point.
type stepState struct {
	dt  float64 // candidate step in curve parameter
	ddt float64 // magnitude of the next correction
	dir direction
}

func newStepState(dt float64) stepState {
	return stepState{dt: dt, ddt: dt / 2}
}

// refineStep corrects the candidate step given the chord length it produced.
// A reversal of direction halves the correction magnitude, and a shrink never
// removes more than half the step so dt stays positive. The returned bool is
// true when dist is already within bounds, in which case s is returned as is.
func refineStep(dist float64, b bounds, s stepState) (stepState, bool) {
	switch {
	case dist > b.max:
		if s.dir == growing {
			s.ddt /= 2
		}
		s.dir = shrinking
		if s.ddt > s.dt/2 {
			s.ddt = s.dt / 2
		}
		s.dt -= s.ddt
	case dist < b.min:
		if s.dir == shrinking {
			s.ddt /= 2
		}
		s.dir = growing
		s.dt += s.ddt
	default:
		return s, true
	}
	return s, false
}
