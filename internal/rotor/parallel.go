package rotor

import (
	"context"
	"sync"
)

// SimulateAll computes every case concurrently. Cases are independent and
// referentially transparent, so no coordination is needed beyond the fan-out.
// Results keep the order of the input cases; the first error encountered is
// returned.
func SimulateAll(ctx context.Context, cases []Case, omega float64, times []float64) ([]*Result, error) {
	results := make([]*Result, len(cases))
	errs := make([]error, len(cases))

	var wg sync.WaitGroup
	for i := range cases {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				errs[idx] = ctx.Err()
				return
			default:
			}

			results[idx], errs[idx] = Simulate(cases[idx], omega, times)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
