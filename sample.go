package cycloid

import (
	"github.com/soypat/cycloid/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Profile is one tooth-to-tooth span of the rotor profile, sampled
// at increasing curve parameter from 0 to Params.EndAngle().
type Profile struct {
	Params Parameters
	Points []r2.Vec  // sampled points, first at t=0 and last at the end angle
	T      []float64 // curve parameter of each point
}

// Len returns the number of sampled points.
func (pr Profile) Len() int { return len(pr.Points) }

// Bounds returns the bounding box of the sampled points.
func (pr Profile) Bounds() r2.Box {
	if len(pr.Points) == 0 {
		return r2.Box{}
	}
	set := d2.Set(pr.Points)
	return r2.Box{Min: set.Min(), Max: set.Max()}
}

// ChordLengths returns the distance between each pair of consecutive points.
func (pr Profile) ChordLengths() []float64 {
	if len(pr.Points) < 2 {
		return nil
	}
	d := make([]float64, len(pr.Points)-1)
	for i := range d {
		d[i] = d2.Dist(pr.Points[i], pr.Points[i+1])
	}
	return d
}

// Sample walks one tooth span of the profile keeping every chord between
// consecutive points within [MinDist, MaxDist]. The closing chord into the
// end point is exempt since the end point is fixed by tooth symmetry.
//
// Sampling stops early once past the half span and within MaxDist of the end.
// An exhausted step size search aborts the whole run with a *ConvergenceError.
func Sample(p Parameters) (Profile, error) {
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	var (
		et  = p.EndAngle()
		end = Point(et, p)
		b   = bounds{min: p.MinDist, max: p.MaxDist}
		ct  = 0.0
		cur = Point(0, p)
		dt  = pi / p.N // warm started from the previous point's converged step
	)
	points := []r2.Vec{cur}
	ts := []float64{ct}
	for (d2.Dist(cur, end) > p.MaxDist || ct < et/2) && ct < et {
		s := newStepState(dt)
		next := Point(ct+s.dt, p)
		dist := d2.Dist(cur, next)
		iterations := 0
		for {
			var ok bool
			s, ok = refineStep(dist, b, s)
			if ok {
				break
			}
			iterations++
			if p.MaxIterations > 0 && iterations > p.MaxIterations {
				return Profile{}, &ConvergenceError{T: ct, Step: s.dt, Distance: dist, Iterations: p.MaxIterations}
			}
			next = Point(ct+s.dt, p)
			dist = d2.Dist(cur, next)
		}
		dt = s.dt
		if ct+dt >= et {
			break
		}
		ct += dt
		cur = next
		points = append(points, cur)
		ts = append(ts, ct)
	}
	points = append(points, end)
	ts = append(ts, et)
	return Profile{Params: p, Points: points, T: ts}, nil
}
