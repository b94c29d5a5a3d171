// Package cycloid samples the rotor profile of a cycloidal drive into an
// ordered set of 2D points ready for spline fitting.
package cycloid

import "math"

const (
	defaultEccentricityRatio = 0.5
	defaultMaxDistRatio      = 0.25
	defaultMinDistRatio      = 0.5
	defaultMaxIterations     = 1000
)

// Config defines the user facing parameters of a cycloidal drive.
// Zero valued ratios and iteration budget take their defaults.
type Config struct {
	Radius float64 // housing bore radius, also the pin circle radius
	Pins   int     // number of pins/rollers

	EccentricityRatio float64 // eccentricity as a fraction of roller radius (default 0.5)
	MaxDistRatio      float64 // maximum chord length as a fraction of roller radius (default 0.25)
	MinDistRatio      float64 // minimum chord length as a fraction of the maximum (default 0.5)
	MaxIterations     int     // step size search budget per sampled point (default 1000)
}

// Parameters are the geometric inputs for one sampling run. They may be
// derived from a Config with New or filled in directly.
type Parameters struct {
	R  float64 // major radius
	N  float64 // number of pins
	Rr float64 // roller radius
	E  float64 // eccentricity

	MaxDist float64 // upper bound on the chord between consecutive points
	MinDist float64 // lower bound on the chord between consecutive points

	// MaxIterations caps the step size search for a single point.
	// Zero means no cap.
	MaxIterations int
}

// New derives sampling parameters from a drive configuration.
func New(cfg Config) (Parameters, error) {
	cfg = cfg.withDefaults()
	switch {
	case cfg.Radius <= 0 || !finite(cfg.Radius):
		return Parameters{}, paramErr("Radius", cfg.Radius, "must be positive")
	case cfg.Pins < 2:
		return Parameters{}, paramErr("Pins", float64(cfg.Pins), "must be at least 2")
	case cfg.EccentricityRatio <= 0 || cfg.EccentricityRatio >= 1:
		return Parameters{}, paramErr("EccentricityRatio", cfg.EccentricityRatio, "must be in (0, 1)")
	case cfg.MaxDistRatio <= 0 || !finite(cfg.MaxDistRatio):
		return Parameters{}, paramErr("MaxDistRatio", cfg.MaxDistRatio, "must be positive")
	case cfg.MinDistRatio <= 0 || cfg.MinDistRatio > 1:
		return Parameters{}, paramErr("MinDistRatio", cfg.MinDistRatio, "must be in (0, 1]")
	case cfg.MaxIterations < 0:
		return Parameters{}, paramErr("MaxIterations", float64(cfg.MaxIterations), "must not be negative")
	}
	n := float64(cfg.Pins)
	rr := tau * cfg.Radius / (4 * n)
	maxDist := cfg.MaxDistRatio * rr
	p := Parameters{
		R:             cfg.Radius,
		N:             n,
		Rr:            rr,
		E:             cfg.EccentricityRatio * rr,
		MaxDist:       maxDist,
		MinDist:       cfg.MinDistRatio * maxDist,
		MaxIterations: cfg.MaxIterations,
	}
	return p, p.Validate()
}

func (cfg Config) withDefaults() Config {
	if cfg.EccentricityRatio == 0 {
		cfg.EccentricityRatio = defaultEccentricityRatio
	}
	if cfg.MaxDistRatio == 0 {
		cfg.MaxDistRatio = defaultMaxDistRatio
	}
	if cfg.MinDistRatio == 0 {
		cfg.MinDistRatio = defaultMinDistRatio
	}
	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = defaultMaxIterations
	}
	return cfg
}

// Validate checks the parameters describe a profile that can be sampled.
// E must stay below Rr or the profile cusps and self-intersects.
func (p Parameters) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{{"R", p.R}, {"N", p.N}, {"Rr", p.Rr}, {"E", p.E}, {"MaxDist", p.MaxDist}, {"MinDist", p.MinDist}} {
		if !finite(f.v) {
			return paramErr(f.name, f.v, "must be finite")
		}
	}
	switch {
	case p.R <= 0:
		return paramErr("R", p.R, "must be positive")
	case p.N < 2:
		return paramErr("N", p.N, "must be at least 2")
	case p.N != math.Trunc(p.N):
		return paramErr("N", p.N, "must be a whole number of pins")
	case p.Rr <= 0:
		return paramErr("Rr", p.Rr, "must be positive")
	case p.E <= 0:
		return paramErr("E", p.E, "must be positive")
	case p.E >= p.Rr:
		return paramErr("E", p.E, "must be less than roller radius")
	case p.MaxDist <= 0:
		return paramErr("MaxDist", p.MaxDist, "must be positive")
	case p.MinDist <= 0 || p.MinDist > p.MaxDist:
		return paramErr("MinDist", p.MinDist, "must be in (0, MaxDist]")
	case p.MaxIterations < 0:
		return paramErr("MaxIterations", float64(p.MaxIterations), "must not be negative")
	}
	return nil
}

// EndAngle returns the curve parameter of one tooth-to-tooth span, 2π/(N-1).
func (p Parameters) EndAngle() float64 {
	return tau / (p.N - 1)
}
