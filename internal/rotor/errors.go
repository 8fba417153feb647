package rotor

import (
	"errors"
	"fmt"
)

// Domain errors for rotor configuration and simulation.
var (
	// ErrNonPositiveMass indicates a component mass that is zero, negative,
	// or not finite.
	ErrNonPositiveMass = errors.New("rotor: mass must be > 0 kg")

	// ErrBadPosition indicates a position that is not exactly three finite
	// coordinates.
	ErrBadPosition = errors.New("rotor: position must be a 3D vector [x, y, z]")

	// ErrNoComponents indicates a case with an empty component list.
	ErrNoComponents = errors.New("rotor: at least one component is required")

	// ErrBadAngularSpeed indicates a NaN or infinite angular speed.
	ErrBadAngularSpeed = errors.New("rotor: angular speed must be finite")
)

// ValidationError wraps a domain error with the offending component name.
type ValidationError struct {
	Component string
	Wrapped   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Component, e.Wrapped.Error())
}

func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}
