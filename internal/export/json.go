package export

import (
	"encoding/json"
	"io"

	"github.com/rotorlab/rotorsim/internal/rotor"
)

type CaseData struct {
	Name             string     `json:"name"`
	TotalMass        float64    `json:"total_mass_kg"`
	CenterOfMass     [3]float64 `json:"center_of_mass_m"`
	RadialOffset     float64    `json:"radial_offset_m"`
	CentrifugalForce float64    `json:"centrifugal_force_n"`
	Signal           []float64  `json:"vibration_signal_m"`
}

type ExportData struct {
	RPM      float64    `json:"rpm"`
	Omega    float64    `json:"omega_rad_s"`
	Duration float64    `json:"duration_s"`
	Samples  int        `json:"samples"`
	Times    []float64  `json:"times_s"`
	Cases    []CaseData `json:"cases"`
}

// WriteJSON encodes a full run, signals included.
func WriteJSON(w io.Writer, rpm, omega, duration float64, times []float64, results []*rotor.Result) error {
	data := ExportData{
		RPM:      rpm,
		Omega:    omega,
		Duration: duration,
		Samples:  len(times),
		Times:    times,
		Cases:    make([]CaseData, 0, len(results)),
	}

	for _, r := range results {
		data.Cases = append(data.Cases, CaseData{
			Name:             r.Name,
			TotalMass:        r.TotalMass,
			CenterOfMass:     [3]float64{r.CenterOfMass.X, r.CenterOfMass.Y, r.CenterOfMass.Z},
			RadialOffset:     r.RadialOffset,
			CentrifugalForce: r.CentrifugalForce,
			Signal:           r.Signal,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
