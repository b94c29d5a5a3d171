package outline

import (
	"errors"
	"math"

	"github.com/soypat/cycloid/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

const tolerance = 1e-9

// Polygon is a closed set of line segments with a signed distance function.
type Polygon struct {
	vertex []r2.Vec  // vertices, first vertex repeated at the end
	vector []r2.Vec  // unit line vectors
	length []float64 // line lengths
	bb     r2.Box    // bounding box
}

// NewPolygon returns a polygon made from a closed set of line segments.
// The loop is closed if the last vertex differs from the first.
func NewPolygon(vertex []r2.Vec) (*Polygon, error) {
	n := len(vertex)
	if n < 3 {
		return nil, errors.New("number of vertices < 3")
	}
	s := Polygon{}
	s.vertex = append(make([]r2.Vec, 0, n+1), vertex...)
	if !d2.EqualWithin(vertex[0], vertex[n-1], tolerance) {
		s.vertex = append(s.vertex, vertex[0])
	}

	nsegs := len(s.vertex) - 1
	s.vector = make([]r2.Vec, nsegs)
	s.length = make([]float64, nsegs)
	for i := 0; i < nsegs; i++ {
		l := r2.Sub(s.vertex[i+1], s.vertex[i])
		s.length[i] = r2.Norm(l)
		if s.length[i] == 0 {
			return nil, errors.New("polygon has a zero length segment")
		}
		s.vector[i] = r2.Unit(l)
	}
	s.bb = r2.Box(d2.Set(s.vertex).Bounds())
	return &s, nil
}

// Evaluate returns the minimum distance from p to the polygon,
// negative when p is inside.
func (s *Polygon) Evaluate(p r2.Vec) float64 {
	dd := math.MaxFloat64 // d^2 to polygon (>0)
	wn := 0               // winding number (inside/outside)

	nsegs := len(s.vertex) - 1
	pb := r2.Sub(p, s.vertex[0])
	for i := 0; i < nsegs; i++ {
		a := s.vertex[i]
		b := s.vertex[i+1]

		pa := pb
		pb = r2.Sub(p, b)

		t := r2.Dot(pa, s.vector[i])                                  // t-parameter of projection onto line
		dn := r2.Dot(pa, r2.Vec{X: s.vector[i].Y, Y: -s.vector[i].X}) // normal distance from p to line

		switch {
		case t < 0:
			dd = math.Min(dd, r2.Norm2(pa))
		case t > s.length[i]:
			dd = math.Min(dd, r2.Norm2(pb))
		default:
			dd = math.Min(dd, dn*dn)
		}

		// See: http://geomalgorithms.com/a03-_inclusion.html
		if a.Y <= p.Y {
			if b.Y > p.Y && dn < 0 { // upward crossing, p left of segment
				wn++
			}
		} else if b.Y <= p.Y && dn > 0 { // downward crossing, p right of segment
			wn--
		}
	}

	d := math.Sqrt(dd)
	if wn != 0 {
		return -d
	}
	return d
}

// Bounds returns the bounding box of the polygon.
func (s *Polygon) Bounds() r2.Box {
	return s.bb
}

// Vertices returns the polygon loop without the closing vertex.
func (s *Polygon) Vertices() []r2.Vec {
	return append([]r2.Vec(nil), s.vertex[:len(s.vertex)-1]...)
}

// Circle is a circle in the drive plane.
type Circle struct {
	Center r2.Vec
	Radius float64
}

// Evaluate returns the signed distance from p to the circle.
func (c Circle) Evaluate(p r2.Vec) float64 {
	return d2.Dist(p, c.Center) - c.Radius
}

// Bounds returns the bounding box of the circle.
func (c Circle) Bounds() r2.Box {
	return r2.Box(d2.NewBox2(c.Center, d2.Elem(2*c.Radius)))
}

// Vertices approximates the circle with n evenly spaced vertices.
func (c Circle) Vertices(n int) []r2.Vec {
	v := make([]r2.Vec, n)
	for i := range v {
		v[i] = r2.Add(c.Center, d2.PolarToXY(c.Radius, 2*math.Pi*float64(i)/float64(n)))
	}
	return v
}
