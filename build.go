package cycloid

// Builder consumes a sampled profile, typically by fitting a spline
// through its points and constructing geometry from it.
type Builder interface {
	Build(Profile) error
}

// BuilderFunc adapts a function to the Builder interface.
type BuilderFunc func(Profile) error

// Build calls f(pr).
func (f BuilderFunc) Build(pr Profile) error { return f(pr) }

// Generate derives parameters from cfg, samples the profile and hands it
// to b. The builder is not called if derivation or sampling fails.
func Generate(cfg Config, b Builder) error {
	p, err := New(cfg)
	if err != nil {
		return err
	}
	pr, err := Sample(p)
	if err != nil {
		return err
	}
	return b.Build(pr)
}
