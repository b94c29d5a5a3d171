package outline

import (
	"math"
	"testing"

	"github.com/soypat/cycloid"
	"github.com/soypat/cycloid/internal/d2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func sample(t testing.TB, cfg cycloid.Config) cycloid.Profile {
	t.Helper()
	p, err := cycloid.New(cfg)
	require.NoError(t, err)
	prof, err := cycloid.Sample(p)
	require.NoError(t, err)
	return prof
}

func inBox(bb r2.Box, v r2.Vec) bool {
	return bb.Min.X <= v.X && v.X <= bb.Max.X && bb.Min.Y <= v.Y && v.Y <= bb.Max.Y
}

func TestRotor(t *testing.T) {
	prof := sample(t, cycloid.Config{Radius: 5, Pins: 10})
	p := prof.Params
	v, err := Rotor(prof)
	require.NoError(t, err)
	toothLen := prof.Len() - 1
	require.Len(t, v, int(p.N-1)*toothLen)
	assert.Equal(t, prof.Points[0], v[0], "rotor starts on the profile start")

	// The second tooth starts where the first one ends.
	end := prof.Points[prof.Len()-1]
	assert.True(t, d2.EqualWithin(v[toothLen], end, 1e-9), "tooth 1 starts at %v, tooth 0 ends at %v", v[toothLen], end)
	for _, pt := range v {
		r := r2.Norm(pt)
		assert.GreaterOrEqual(t, r, p.R-p.Rr-p.E-1e-9, "vertex %v", pt)
		assert.LessOrEqual(t, r, p.R+p.E, "vertex %v", pt)
	}

	_, err = Rotor(cycloid.Profile{})
	assert.Error(t, err, "empty profile")
}

func TestPins(t *testing.T) {
	p, err := cycloid.New(cycloid.Config{Radius: 5, Pins: 8})
	require.NoError(t, err)
	pins := Pins(p)
	require.Len(t, pins, 8)
	for i, pin := range pins {
		assert.InDelta(t, p.R, r2.Norm(pin.Center), 1e-9, "pin %d", i)
		assert.Equal(t, p.Rr, pin.Radius, "pin %d", i)
	}
	assert.True(t, d2.EqualWithin(pins[2].Center, r2.Vec{Y: 5}, 1e-9), "pin 2 at %v, want (0,5)", pins[2].Center)
}

func TestLayoutClearance(t *testing.T) {
	for _, cfg := range []cycloid.Config{
		{Radius: 5, Pins: 10},
		{Radius: 5, Pins: 50},
		{Radius: 5, Pins: 4, EccentricityRatio: 0.25},
	} {
		prof := sample(t, cfg)
		l, err := NewLayout(prof, LayoutParams{})
		require.NoError(t, err)
		// Chords cut slightly into the true profile so the gap is
		// a small fraction of the roller radius.
		assert.InDelta(t, 0, l.Clearance(), 0.01*prof.Params.Rr, "%+v", cfg)
		bb := l.Bounds()
		for _, pin := range l.Pins {
			assert.True(t, inBox(bb, pin.Center), "bounds %v miss pin %v", bb, pin.Center)
		}
	}
}

func TestLayoutFeatures(t *testing.T) {
	prof := sample(t, cycloid.Config{Radius: 5, Pins: 10})
	p := prof.Params
	l, err := NewLayout(prof, LayoutParams{
		BoreDiameter:        1,
		DriveHoles:          4,
		DrivePinDiameter:    0.25,
		DriveCircleDiameter: 3,
	})
	require.NoError(t, err)
	center := r2.Vec{X: p.E}
	require.NotNil(t, l.Bore)
	assert.Equal(t, Circle{Center: center, Radius: 0.5}, *l.Bore)
	assert.Negative(t, l.Rotor.Evaluate(center), "rotor centre outside rotor outline")

	require.Len(t, l.DriveHoles, 4)
	assert.True(t, d2.EqualWithin(l.DriveHoles[0].Center, r2.Vec{X: p.E, Y: 1.5}, 1e-9), "first drive hole at %v", l.DriveHoles[0].Center)
	for i, h := range l.DriveHoles {
		assert.InDelta(t, 1.5, d2.Dist(h.Center, center), 1e-9, "hole %d off the drive circle", i)
		assert.InDelta(t, 0.125+p.E, h.Radius, 1e-12, "hole %d radius", i)
		assert.Negative(t, l.Rotor.Evaluate(h.Center), "hole %d centre outside rotor", i)
	}
}

func TestLayoutParamsInvalid(t *testing.T) {
	prof := sample(t, cycloid.Config{Radius: 5, Pins: 10})
	for _, lp := range []LayoutParams{
		{BoreDiameter: -1},
		{DriveHoles: -2},
		{DriveHoles: 3, DriveCircleDiameter: 3},
		{DriveHoles: 3, DrivePinDiameter: 0.25},
	} {
		_, err := NewLayout(prof, lp)
		assert.Error(t, err, "%+v", lp)
	}
}

func TestPinsOutsideRotor(t *testing.T) {
	prof := sample(t, cycloid.Config{Radius: 5, Pins: 10})
	l, err := NewLayout(prof, LayoutParams{})
	require.NoError(t, err)
	for i, pin := range l.Pins {
		assert.Greater(t, l.Rotor.Evaluate(pin.Center), 0.0, "pin %d", i)
	}
	assert.False(t, math.IsInf(l.Clearance(), 0))
}
