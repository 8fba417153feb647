package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/rotorlab/rotorsim/internal/rotor"
)

// Store persists simulation runs under a data directory, one subdirectory per
// run holding metadata.json and signals.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type CaseMetadata struct {
	Name             string             `json:"name"`
	TotalMass        float64            `json:"total_mass_kg"`
	CenterOfMass     [3]float64         `json:"center_of_mass_m"`
	RadialOffset     float64            `json:"radial_offset_m"`
	CentrifugalForce float64            `json:"centrifugal_force_n"`
	Metrics          map[string]float64 `json:"metrics,omitempty"`
}

type RunMetadata struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	RPM       float64        `json:"rpm"`
	Omega     float64        `json:"omega_rad_s"`
	Duration  float64        `json:"duration_s"`
	Samples   int            `json:"samples"`
	Cases     []CaseMetadata `json:"cases"`
}

// Save writes one run. caseMetrics is keyed by case name and may be nil.
func (s *Store) Save(rpm, omega, duration float64, times []float64, results []*rotor.Result, caseMetrics map[string]map[string]float64) (string, error) {
	runID := fmt.Sprintf("rotor_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		RPM:       rpm,
		Omega:     omega,
		Duration:  duration,
		Samples:   len(times),
	}
	for _, r := range results {
		meta.Cases = append(meta.Cases, CaseMetadata{
			Name:             r.Name,
			TotalMass:        r.TotalMass,
			CenterOfMass:     [3]float64{r.CenterOfMass.X, r.CenterOfMass.Y, r.CenterOfMass.Z},
			RadialOffset:     r.RadialOffset,
			CentrifugalForce: r.CentrifugalForce,
			Metrics:          caseMetrics[r.Name],
		})
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "signals.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"time"}
	for _, r := range results {
		header = append(header, r.Name)
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := range times {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, r := range results {
			row = append(row, strconv.FormatFloat(r.Signal[i], 'f', 9, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	log.WithFields(log.Fields{
		"run":   runID,
		"cases": len(results),
	}).Debug("run saved")

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			log.WithField("run", entry.Name()).Debug("skipping unreadable run")
			continue
		}
		runs = append(runs, *meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSignals returns the stored time samples and one displacement signal per
// case, keyed by the CSV header written at save time.
func (s *Store) LoadSignals(runID string) ([]float64, map[string][]float64, []string, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "signals.csv"))
	if err != nil {
		return nil, nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}

	if len(records) < 2 {
		return nil, nil, nil, fmt.Errorf("run %s has no signal data", runID)
	}

	names := records[0][1:]
	times := make([]float64, 0, len(records)-1)
	signals := make(map[string][]float64, len(names))
	for _, name := range names {
		signals[name] = make([]float64, 0, len(records)-1)
	}

	for _, record := range records[1:] {
		if len(record) != len(names)+1 {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		times = append(times, t)

		for j, name := range names {
			val, err := strconv.ParseFloat(record[j+1], 64)
			if err != nil {
				val = 0
			}
			signals[name] = append(signals[name], val)
		}
	}

	return times, signals, names, nil
}
