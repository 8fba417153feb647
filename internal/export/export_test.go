package export

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rotorlab/rotorsim/internal/rotor"
)

func testRun(t *testing.T) ([]float64, []*rotor.Result) {
	t.Helper()

	times := rotor.Timeline(2.0, 100)
	results, err := rotor.SimulateAll(context.Background(), rotor.DefaultCases(), rotor.OmegaFromRPM(600), times)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	return times, results
}

func TestRenderChart(t *testing.T) {
	times, results := testRun(t)
	path := filepath.Join(t.TempDir(), "chart.html")

	if err := RenderChart(path, times, results, 600); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	html := string(data)
	for _, want := range []string{"Unbalanced", "Balanced", "Displacement proxy (m)"} {
		if !strings.Contains(html, want) {
			t.Errorf("chart missing %q", want)
		}
	}
}

func TestSignalsToSVG(t *testing.T) {
	times, results := testRun(t)

	svg := SignalsToSVG(times, results, 800, 400)
	if !strings.HasPrefix(svg, `<?xml`) {
		t.Fatal("expected xml header")
	}
	if got := strings.Count(svg, "<path"); got != 2 {
		t.Errorf("expected 2 polylines, got %d", got)
	}
	if !strings.Contains(svg, "</svg>") {
		t.Error("expected closing tag")
	}
}

func TestSignalsToSVGEmpty(t *testing.T) {
	if svg := SignalsToSVG(nil, nil, 100, 100); svg != "" {
		t.Error("expected empty output for no data")
	}
}

func TestWriteJSON(t *testing.T) {
	times, results := testRun(t)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, 600, rotor.OmegaFromRPM(600), 2.0, times, results); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if data.RPM != 600 {
		t.Errorf("expected rpm 600, got %g", data.RPM)
	}
	if len(data.Cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(data.Cases))
	}
	if len(data.Cases[0].Signal) != 100 {
		t.Errorf("expected 100 samples, got %d", len(data.Cases[0].Signal))
	}
}
