package rotor

import "math"

// Component is a single rigid component mounted on the rotating body.
// Values are immutable once constructed.
type Component struct {
	Name     string
	Mass     float64 // kilograms
	Position Vec3    // meters, rotor-fixed frame
}

// NewComponent validates and builds a Component. The mass must be a positive
// finite number and coords must hold exactly three finite values.
func NewComponent(name string, mass float64, coords []float64) (Component, error) {
	if mass <= 0 || math.IsNaN(mass) || math.IsInf(mass, 0) {
		return Component{}, &ValidationError{Component: name, Wrapped: ErrNonPositiveMass}
	}
	if len(coords) != 3 {
		return Component{}, &ValidationError{Component: name, Wrapped: ErrBadPosition}
	}
	pos := Vec3{coords[0], coords[1], coords[2]}
	if !pos.IsFinite() {
		return Component{}, &ValidationError{Component: name, Wrapped: ErrBadPosition}
	}
	return Component{Name: name, Mass: mass, Position: pos}, nil
}

// MustComponent is for statically known configurations such as presets.
// It panics on invalid input.
func MustComponent(name string, mass float64, coords []float64) Component {
	c, err := NewComponent(name, mass, coords)
	if err != nil {
		panic(err)
	}
	return c
}

// Case is a named, ordered set of components. Emptiness is checked at
// computation time, not construction.
type Case struct {
	Name       string
	Components []Component
}
