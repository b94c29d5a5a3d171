package cycloid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is matched by errors returned when a parameter set
	// cannot describe a drivable cycloidal profile.
	ErrInvalidParameter = errors.New("invalid cycloidal parameter")
	// ErrNonConvergence is matched by errors returned when the step size search
	// exhausts its iteration budget.
	ErrNonConvergence = errors.New("profile sampling did not converge")
)

// ParamError describes a rejected parameter.
type ParamError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s=%g %s", ErrInvalidParameter, e.Field, e.Value, e.Reason)
}

func (e *ParamError) Unwrap() error { return ErrInvalidParameter }

// ConvergenceError reports where the step size search gave up.
type ConvergenceError struct {
	T          float64 // curve parameter of the last accepted point
	Step       float64 // step size at the moment the budget ran out
	Distance   float64 // chord length of the last candidate
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s after %d iterations at t=%g (dt=%g, chord=%g)",
		ErrNonConvergence, e.Iterations, e.T, e.Step, e.Distance)
}

func (e *ConvergenceError) Unwrap() error { return ErrNonConvergence }

func paramErr(field string, value float64, reason string) error {
	return &ParamError{Field: field, Value: value, Reason: reason}
}
