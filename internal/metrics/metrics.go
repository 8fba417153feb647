package metrics

import "math"

// Metric accumulates a scalar statistic over a displacement signal.
type Metric interface {
	Name() string
	Observe(t, x float64)
	Value() float64
	Reset()
}

// Collect runs a signal through the given metrics and returns name -> value.
func Collect(times, signal []float64, ms ...Metric) map[string]float64 {
	for _, m := range ms {
		m.Reset()
	}
	for i := range signal {
		t := 0.0
		if i < len(times) {
			t = times[i]
		}
		for _, m := range ms {
			m.Observe(t, signal[i])
		}
	}

	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// Default returns the metric set attached to every run.
func Default() []Metric {
	return []Metric{NewPeakDisplacement(), NewRMSDisplacement()}
}

type PeakDisplacement struct {
	peak float64
}

func NewPeakDisplacement() *PeakDisplacement { return &PeakDisplacement{} }

func (p *PeakDisplacement) Name() string { return "peak_displacement" }

func (p *PeakDisplacement) Observe(t, x float64) {
	if abs := math.Abs(x); abs > p.peak {
		p.peak = abs
	}
}

func (p *PeakDisplacement) Value() float64 { return p.peak }

func (p *PeakDisplacement) Reset() { p.peak = 0 }

type RMSDisplacement struct {
	sumSq   float64
	samples int
}

func NewRMSDisplacement() *RMSDisplacement { return &RMSDisplacement{} }

func (r *RMSDisplacement) Name() string { return "rms_displacement" }

func (r *RMSDisplacement) Observe(t, x float64) {
	r.sumSq += x * x
	r.samples++
}

func (r *RMSDisplacement) Value() float64 {
	if r.samples == 0 {
		return 0
	}
	return math.Sqrt(r.sumSq / float64(r.samples))
}

func (r *RMSDisplacement) Reset() {
	r.sumSq = 0
	r.samples = 0
}
