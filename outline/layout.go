// Package outline lays out a 2D preview of a cycloidal drive from a sampled
// rotor profile: the patterned rotor, the housing pins, the bore and the
// drive holes.
package outline

import (
	"errors"
	"fmt"
	"math"

	"github.com/soypat/cycloid"
	"github.com/soypat/cycloid/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// LayoutParams defines the rotor features that do not depend on the profile.
// Zero values omit the feature.
type LayoutParams struct {
	BoreDiameter        float64 // diameter of the rotor centre bore
	DriveHoles          int     // number of drive holes in the rotor
	DrivePinDiameter    float64 // diameter of the output pins passing through the drive holes
	DriveCircleDiameter float64 // diameter of the circle the drive holes lie on
}

// Layout is the drive outline in its rest position. The rotor is offset
// by the eccentricity along +X so it meshes with the pins.
type Layout struct {
	Params     cycloid.Parameters
	Rotor      *Polygon
	Pins       []Circle
	Bore       *Circle // nil when there is no bore
	DriveHoles []Circle
}

// Rotor returns the closed rotor outline centred on the origin. Tooth k is
// the sampled span rotated by -k times the span angle, N-1 teeth in total.
func Rotor(prof cycloid.Profile) ([]r2.Vec, error) {
	if len(prof.Points) < 2 {
		return nil, errors.New("profile needs at least two points")
	}
	p := prof.Params
	et := p.EndAngle()
	teeth := int(p.N) - 1
	if teeth < 1 {
		return nil, fmt.Errorf("cannot pattern %d teeth", teeth)
	}
	tooth := d2.Set(prof.Points[:len(prof.Points)-1]) // last point starts the next tooth
	v := make([]r2.Vec, 0, teeth*len(tooth))
	for k := 0; k < teeth; k++ {
		v = append(v, d2.Rotate(-float64(k)*et).ApplySet(tooth)...)
	}
	return v, nil
}

// Pins returns the housing pins at radius R, one every 2π/N.
func Pins(p cycloid.Parameters) []Circle {
	n := int(p.N)
	pins := make([]Circle, n)
	for i := range pins {
		pins[i] = Circle{
			Center: d2.PolarToXY(p.R, 2*math.Pi*float64(i)/float64(n)),
			Radius: p.Rr,
		}
	}
	return pins
}

// NewLayout builds the drive outline for a sampled profile.
func NewLayout(prof cycloid.Profile, lp LayoutParams) (Layout, error) {
	if err := lp.validate(); err != nil {
		return Layout{}, err
	}
	p := prof.Params
	v, err := Rotor(prof)
	if err != nil {
		return Layout{}, err
	}
	center := r2.Vec{X: p.E}
	rotor, err := NewPolygon(d2.Translate(center).ApplySet(v))
	if err != nil {
		return Layout{}, fmt.Errorf("rotor outline: %w", err)
	}
	l := Layout{
		Params: p,
		Rotor:  rotor,
		Pins:   Pins(p),
	}
	if lp.BoreDiameter > 0 {
		l.Bore = &Circle{Center: center, Radius: lp.BoreDiameter / 2}
	}
	for i := 0; i < lp.DriveHoles; i++ {
		theta := math.Pi/2 + 2*math.Pi*float64(i)/float64(lp.DriveHoles)
		l.DriveHoles = append(l.DriveHoles, Circle{
			Center: r2.Add(center, d2.PolarToXY(lp.DriveCircleDiameter/2, theta)),
			// Holes are oversized by E so the pins clear the orbiting rotor.
			Radius: lp.DrivePinDiameter/2 + p.E,
		})
	}
	return l, nil
}

func (lp LayoutParams) validate() error {
	switch {
	case lp.BoreDiameter < 0:
		return fmt.Errorf("negative bore diameter %g", lp.BoreDiameter)
	case lp.DriveHoles < 0:
		return fmt.Errorf("negative drive hole count %d", lp.DriveHoles)
	case lp.DriveHoles > 0 && lp.DrivePinDiameter <= 0:
		return errors.New("drive holes need a positive drive pin diameter")
	case lp.DriveHoles > 0 && lp.DriveCircleDiameter <= 0:
		return errors.New("drive holes need a positive drive circle diameter")
	}
	return nil
}

// Bounds returns the bounding box of the rotor and pins.
func (l Layout) Bounds() r2.Box {
	bb := d2.Box(l.Rotor.Bounds())
	for _, pin := range l.Pins {
		bb = bb.Extend(d2.Box(pin.Bounds()))
	}
	return r2.Box(bb)
}

// Clearance returns the smallest gap between the rotor outline and a pin.
// A correctly sampled profile meshes with gaps near zero; negative values
// mean the rotor cuts into a pin.
func (l Layout) Clearance() float64 {
	c := math.Inf(1)
	for _, pin := range l.Pins {
		c = math.Min(c, l.Rotor.Evaluate(pin.Center)-pin.Radius)
	}
	return c
}
