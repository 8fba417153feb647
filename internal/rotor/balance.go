package rotor

import "math"

// Result holds the computed outputs for one rotor configuration.
type Result struct {
	Name             string
	TotalMass        float64   // kg
	CenterOfMass     Vec3      // m
	RadialOffset     float64   // m
	CentrifugalForce float64   // N
	Signal           []float64 // displacement proxy, m, one sample per input time
}

// CenterOfMass returns the mass-weighted average position and the total mass
// of the given components. The weighting is per axis and order independent.
func CenterOfMass(components []Component) (Vec3, float64, error) {
	if len(components) == 0 {
		return Vec3{}, 0, ErrNoComponents
	}

	var total float64
	var weighted Vec3
	for _, c := range components {
		total += c.Mass
		weighted = weighted.Add(c.Position.Scale(c.Mass))
	}

	return weighted.Scale(1 / total), total, nil
}

// Simulate computes imbalance metrics for one case at angular speed omega
// (rad/s) over the given time samples (seconds).
//
// The displacement signal is offset * sin(omega * t): amplitude equal to the
// radial center-of-mass offset, frequency equal to the spin speed. No damping,
// resonance, or multi-body coupling is modeled.
func Simulate(c Case, omega float64, times []float64) (*Result, error) {
	if math.IsNaN(omega) || math.IsInf(omega, 0) {
		return nil, ErrBadAngularSpeed
	}

	com, total, err := CenterOfMass(c.Components)
	if err != nil {
		return nil, err
	}

	offset := com.PlanarNorm()
	force := total * omega * omega * offset

	signal := make([]float64, len(times))
	for i, t := range times {
		signal[i] = offset * math.Sin(omega*t)
	}

	return &Result{
		Name:             c.Name,
		TotalMass:        total,
		CenterOfMass:     com,
		RadialOffset:     offset,
		CentrifugalForce: force,
		Signal:           signal,
	}, nil
}

// OmegaFromRPM converts rotational speed in revolutions per minute to rad/s.
func OmegaFromRPM(rpm float64) float64 {
	return rpm * (2 * math.Pi / 60.0)
}

// Timeline returns samples evenly spaced over [0, duration], endpoints
// included.
func Timeline(duration float64, samples int) []float64 {
	times := make([]float64, samples)
	if samples == 1 {
		return times
	}
	step := duration / float64(samples-1)
	for i := range times {
		times[i] = float64(i) * step
	}
	return times
}

// DefaultCases returns the baseline unbalanced and balanced example pair.
func DefaultCases() []Case {
	return []Case{
		{
			Name: "Unbalanced",
			Components: []Component{
				MustComponent("component1", 2.0, []float64{1.0, 2.0, 0.0}),
				MustComponent("component2", 1.5, []float64{-1.0, -2.0, 0.0}),
				MustComponent("component3", 2.5, []float64{2.0, 1.0, 0.0}),
			},
		},
		{
			Name: "Balanced",
			Components: []Component{
				MustComponent("component1", 2.0, []float64{1.0, 0.0, 0.0}),
				MustComponent("component2", 1.5, []float64{-1.0, 0.0, 0.0}),
				MustComponent("component3", 2.5, []float64{0.0, 0.0, 0.0}),
			},
		},
	}
}
