package viz

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/rotorlab/rotorsim/internal/rotor"
)

// Summary prints the per-case metric block for all results, in the order they
// were computed. caseMetrics is keyed by case name and may be nil.
func Summary(out io.Writer, results []*rotor.Result, caseMetrics map[string]map[string]float64, rpm float64) {
	fmt.Fprintf(out, "%s\n\n", HeaderStyle.Render(fmt.Sprintf("Simulation speed: %.1f RPM", rpm)))

	for _, r := range results {
		fmt.Fprintf(out, "%s\n", HeaderStyle.Render(r.Name+":"))

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		row(w, "Total mass", fmt.Sprintf("%.3f kg", r.TotalMass))
		row(w, "Center of mass", fmt.Sprintf("[%.4f %.4f %.4f] m",
			r.CenterOfMass.X, r.CenterOfMass.Y, r.CenterOfMass.Z))
		row(w, "Radial COM offset", fmt.Sprintf("%.6f m", r.RadialOffset))
		row(w, "Centrifugal force", fmt.Sprintf("%.2f N", r.CentrifugalForce))
		for _, name := range sortedKeys(caseMetrics[r.Name]) {
			row(w, name, fmt.Sprintf("%.6f m", caseMetrics[r.Name][name]))
		}
		w.Flush()

		if len(r.Signal) > 1 {
			fmt.Fprintf(out, "  %s\n", SubtleStyle.Render(Sparkline(r.Signal, 60)))
		}
		fmt.Fprintln(out)
	}
}

func row(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s\t%s\n", LabelStyle.Render(label), ValueStyle.Render(value))
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
