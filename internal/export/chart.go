package export

import (
	"fmt"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	log "github.com/sirupsen/logrus"

	"github.com/rotorlab/rotorsim/internal/rotor"
)

// ComparisonChart builds the vibration proxy comparison: time on the X axis,
// one displacement series per case.
func ComparisonChart(times []float64, results []*rotor.Result, rpm float64) *charts.Line {
	line := charts.NewLine()

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
			PageTitle:       "Rotor imbalance vibration proxy",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Vibration proxy comparison",
			Subtitle: fmt.Sprintf("%.1f RPM", rpm),
		}),
		charts.WithLegendOpts(opts.Legend{
			Orient: "horizontal",
			Show:   opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "slider",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Time (s)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "Displacement proxy (m)",
			Type:  "value",
			Scale: opts.Bool(true),
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
	)

	x := make([]string, len(times))
	for i, t := range times {
		x[i] = fmt.Sprintf("%.4f", t)
	}
	line.SetXAxis(x)

	for _, r := range results {
		data := make([]opts.LineData, len(r.Signal))
		for i, v := range r.Signal {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(r.Name, data)
	}

	return line
}

// RenderChart writes the comparison chart as a standalone HTML page.
func RenderChart(path string, times []float64, results []*rotor.Result, rpm float64) error {
	line := ComparisonChart(times, results, rpm)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	renderTime := time.Now()
	if err := line.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	log.WithFields(log.Fields{
		"path": path,
		"time": time.Since(renderTime),
	}).Debug("chart rendered")

	return nil
}
