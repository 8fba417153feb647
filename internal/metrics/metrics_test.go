package metrics

import (
	"math"
	"testing"
)

func TestPeakDisplacement(t *testing.T) {
	m := NewPeakDisplacement()

	for _, x := range []float64{0.1, -0.6, 0.4} {
		m.Observe(0, x)
	}

	if m.Value() != 0.6 {
		t.Errorf("expected peak 0.6, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestRMSDisplacement(t *testing.T) {
	m := NewRMSDisplacement()

	if m.Value() != 0 {
		t.Error("expected zero with no samples")
	}

	for _, x := range []float64{3, -4} {
		m.Observe(0, x)
	}

	expected := math.Sqrt((9.0 + 16.0) / 2.0)
	if math.Abs(m.Value()-expected) > 1e-12 {
		t.Errorf("expected rms %f, got %f", expected, m.Value())
	}
}

func TestRMSOfSinusoid(t *testing.T) {
	m := NewRMSDisplacement()

	n := 10000
	amp := 0.5
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		m.Observe(theta, amp*math.Sin(theta))
	}

	// RMS of a full-period sinusoid is amplitude / sqrt(2).
	expected := amp / math.Sqrt2
	if math.Abs(m.Value()-expected) > 1e-3 {
		t.Errorf("expected rms ~%f, got %f", expected, m.Value())
	}
}

func TestCollect(t *testing.T) {
	times := []float64{0, 1, 2}
	signal := []float64{0.2, -0.5, 0.3}

	values := Collect(times, signal, Default()...)

	if len(values) != 2 {
		t.Fatalf("expected 2 metrics, got %d", len(values))
	}
	if values["peak_displacement"] != 0.5 {
		t.Errorf("expected peak 0.5, got %f", values["peak_displacement"])
	}
	if values["rms_displacement"] <= 0 {
		t.Error("expected positive rms")
	}
}
