// Package sweep evaluates centrifugal force across a range of rotational
// speeds. Force scales with omega squared, so a sweep makes the cost of an
// imbalance at operating speed visible at a glance.
package sweep

import (
	"context"
	"fmt"
	"sync"

	"github.com/rotorlab/rotorsim/internal/rotor"
)

// Point holds the forces at one rotational speed, keyed by case name.
type Point struct {
	RPM    float64
	Omega  float64
	Forces map[string]float64
}

// Run computes forces for every case at each of steps speeds evenly spaced
// over [fromRPM, toRPM]. Points are computed in parallel and returned in
// ascending RPM order.
func Run(ctx context.Context, cases []rotor.Case, fromRPM, toRPM float64, steps int) ([]Point, error) {
	if fromRPM <= 0 || toRPM <= fromRPM {
		return nil, fmt.Errorf("sweep range must satisfy 0 < from < to, got [%g, %g]", fromRPM, toRPM)
	}
	if steps < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 steps, got %d", steps)
	}

	// Offsets and masses do not vary with speed; compute them once.
	type caseStatic struct {
		name   string
		mass   float64
		offset float64
	}
	statics := make([]caseStatic, len(cases))
	for i, c := range cases {
		com, total, err := rotor.CenterOfMass(c.Components)
		if err != nil {
			return nil, fmt.Errorf("case %s: %w", c.Name, err)
		}
		statics[i] = caseStatic{name: c.Name, mass: total, offset: com.PlanarNorm()}
	}

	points := make([]Point, steps)
	errs := make([]error, steps)
	step := (toRPM - fromRPM) / float64(steps-1)

	var wg sync.WaitGroup
	for i := 0; i < steps; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				errs[idx] = ctx.Err()
				return
			default:
			}

			rpm := fromRPM + float64(idx)*step
			omega := rotor.OmegaFromRPM(rpm)
			forces := make(map[string]float64, len(statics))
			for _, s := range statics {
				forces[s.name] = s.mass * omega * omega * s.offset
			}
			points[idx] = Point{RPM: rpm, Omega: omega, Forces: forces}
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return points, nil
}

// Series extracts one case's force curve from the sweep points.
func Series(points []Point, caseName string) []float64 {
	forces := make([]float64, len(points))
	for i, p := range points {
		forces[i] = p.Forces[caseName]
	}
	return forces
}
