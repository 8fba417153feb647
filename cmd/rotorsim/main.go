package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rotorlab/rotorsim/internal/config"
	"github.com/rotorlab/rotorsim/internal/export"
	"github.com/rotorlab/rotorsim/internal/metrics"
	"github.com/rotorlab/rotorsim/internal/rotor"
	"github.com/rotorlab/rotorsim/internal/storage"
	"github.com/rotorlab/rotorsim/internal/sweep"
	"github.com/rotorlab/rotorsim/internal/viz"
)

var (
	dataDir    string
	verbose    bool
	rpm        float64
	duration   float64
	samples    int
	savePlot   string
	noPlot     bool
	configFile string
	preset     string
	caseName   string
	// Sweep range
	fromRPM    float64
	toRPM      float64
	sweepSteps int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rotorsim",
		Short: "rotor mass balance and vibration proxy lab",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".rotorsim", "data directory")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate all cases, print the summary, store the run",
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)
	runCmd.Flags().StringVar(&savePlot, "save-plot", config.DefaultOutput, "output path for the comparison chart")
	runCmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip writing the comparison chart")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot stored displacement signals",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	layoutCmd := &cobra.Command{
		Use:   "layout",
		Short: "draw the rotor cross-section for each case",
		RunE:  drawLayout,
	}
	addSimFlags(layoutCmd)

	chartCmd := &cobra.Command{
		Use:   "chart [run_id]",
		Short: "re-render the comparison chart from a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  chartRun,
	}
	chartCmd.Flags().StringVar(&savePlot, "save-plot", config.DefaultOutput, "output path for the comparison chart")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export stored signals to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "centrifugal force across an rpm range",
		RunE:  runSweep,
	}
	addSimFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&fromRPM, "from-rpm", 100, "sweep start")
	sweepCmd.Flags().Float64Var(&toRPM, "to-rpm", 3000, "sweep end")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 30, "sweep points")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate one case in the terminal",
		RunE:  runLive,
	}
	addSimFlags(liveCmd)
	liveCmd.Flags().StringVar(&caseName, "case", "", "case to animate (default: first)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, layoutCmd, chartCmd, exportJSONCmd, exportCSVCmd, sweepCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&rpm, "rpm", config.DefaultRPM, "rotational speed in RPM")
	cmd.Flags().Float64Var(&duration, "duration", config.DefaultDuration, "simulation duration in seconds")
	cmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "number of time samples")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// loadConfig resolves defaults, preset, config file, and CLI flags, in that
// order of increasing precedence, then validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("rpm") {
		cfg.RPM = rpm
	}
	if cmd.Flags().Changed("duration") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("samples") {
		cfg.Samples = samples
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	cases, err := cfg.BuildCases()
	if err != nil {
		return err
	}

	times := cfg.Timeline()
	omega := cfg.Omega()

	log.WithFields(log.Fields{
		"rpm":     cfg.RPM,
		"omega":   omega,
		"samples": cfg.Samples,
		"cases":   len(cases),
	}).Debug("starting simulation")

	results, err := rotor.SimulateAll(context.Background(), cases, omega, times)
	if err != nil {
		return err
	}

	caseMetrics := make(map[string]map[string]float64, len(results))
	for _, r := range results {
		caseMetrics[r.Name] = metrics.Collect(times, r.Signal, metrics.Default()...)
	}

	viz.Summary(os.Stdout, results, caseMetrics, cfg.RPM)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg.RPM, omega, cfg.Duration, times, results, caseMetrics)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)

	if noPlot {
		return nil
	}

	out := cfg.Output
	if cmd.Flags().Changed("save-plot") {
		out = savePlot
	}
	if err := export.RenderChart(out, times, results, cfg.RPM); err != nil {
		return err
	}
	fmt.Printf("saved plot: %s\n", out)

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tRPM\tDURATION\tSAMPLES\tCASES")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.2fs\t%d\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.RPM,
			run.Duration,
			run.Samples,
			len(run.Cases),
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	_, signals, names, err := st.LoadSignals(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("speed: %.1f RPM\n", meta.RPM)
	fmt.Printf("samples: %d\n\n", meta.Samples)

	for _, name := range names {
		graph := asciigraph.Plot(signals[name],
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s vibration proxy (m)", name)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func drawLayout(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	cases, err := cfg.BuildCases()
	if err != nil {
		return err
	}

	times := cfg.Timeline()
	for _, c := range cases {
		result, err := rotor.Simulate(c, cfg.Omega(), times)
		if err != nil {
			return err
		}

		fmt.Println(viz.HeaderStyle.Render(c.Name))
		fmt.Print(viz.DrawCrossSection(c, result, 40, 18))
		fmt.Printf("radial COM offset: %.6f m\n\n", result.RadialOffset)
	}

	return nil
}

// resultsFromRun rebuilds the per-case results of a stored run.
func resultsFromRun(st *storage.Store, runID string) (*storage.RunMetadata, []float64, []*rotor.Result, error) {
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, nil, err
	}

	times, signals, _, err := st.LoadSignals(runID)
	if err != nil {
		return nil, nil, nil, err
	}

	results := make([]*rotor.Result, 0, len(meta.Cases))
	for _, c := range meta.Cases {
		results = append(results, &rotor.Result{
			Name:             c.Name,
			TotalMass:        c.TotalMass,
			CenterOfMass:     rotor.Vec3{X: c.CenterOfMass[0], Y: c.CenterOfMass[1], Z: c.CenterOfMass[2]},
			RadialOffset:     c.RadialOffset,
			CentrifugalForce: c.CentrifugalForce,
			Signal:           signals[c.Name],
		})
	}

	return meta, times, results, nil
}

func chartRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, times, results, err := resultsFromRun(st, args[0])
	if err != nil {
		return err
	}

	if err := export.RenderChart(savePlot, times, results, meta.RPM); err != nil {
		return err
	}
	fmt.Printf("saved plot: %s\n", savePlot)

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, times, results, err := resultsFromRun(st, args[0])
	if err != nil {
		return err
	}

	return export.WriteJSON(os.Stdout, meta.RPM, meta.Omega, meta.Duration, times, results)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	times, signals, names, err := st.LoadSignals(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := append([]string{"time"}, names...)
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range times {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, name := range names {
			row = append(row, strconv.FormatFloat(signals[name][i], 'f', 9, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	cases, err := cfg.BuildCases()
	if err != nil {
		return err
	}

	points, err := sweep.Run(context.Background(), cases, fromRPM, toRPM, sweepSteps)
	if err != nil {
		return err
	}

	fmt.Printf("centrifugal force sweep: %.0f - %.0f RPM (%d points)\n\n", fromRPM, toRPM, sweepSteps)

	for _, c := range cases {
		graph := asciigraph.Plot(sweep.Series(points, c.Name),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s force (N) vs RPM", c.Name)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	header := "RPM"
	for _, c := range cases {
		header += "\t" + c.Name
	}
	fmt.Fprintln(w, header)
	for _, p := range points {
		row := fmt.Sprintf("%.0f", p.RPM)
		for _, c := range cases {
			row += fmt.Sprintf("\t%.2f", p.Forces[c.Name])
		}
		fmt.Fprintln(w, row)
	}

	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	cases, err := cfg.BuildCases()
	if err != nil {
		return err
	}

	selected := cases[0]
	if caseName != "" {
		found := false
		for _, c := range cases {
			if c.Name == caseName {
				selected = c
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown case: %s", caseName)
		}
	}

	result, err := rotor.Simulate(selected, cfg.Omega(), cfg.Timeline())
	if err != nil {
		return err
	}

	m := viz.NewLiveModel(selected, result, cfg.Omega())
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
