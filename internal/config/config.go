package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rotorlab/rotorsim/internal/rotor"
)

const (
	DefaultRPM      = 600.0
	DefaultDuration = 2.0
	DefaultSamples  = 1000
	DefaultOutput   = "rotor_comparison.html"
)

type Config struct {
	RPM      float64      `yaml:"rpm"`
	Duration float64      `yaml:"duration"`
	Samples  int          `yaml:"samples"`
	Output   string       `yaml:"output"`
	Cases    []CaseConfig `yaml:"cases"`
}

type CaseConfig struct {
	Name       string            `yaml:"name"`
	Components []ComponentConfig `yaml:"components"`
}

type ComponentConfig struct {
	Name     string    `yaml:"name"`
	Mass     float64   `yaml:"mass"`
	Position []float64 `yaml:"position"`
}

func DefaultConfig() *Config {
	cfg := &Config{
		RPM:      DefaultRPM,
		Duration: DefaultDuration,
		Samples:  DefaultSamples,
		Output:   DefaultOutput,
	}
	for _, c := range rotor.DefaultCases() {
		cfg.Cases = append(cfg.Cases, fromCase(c))
	}
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Cases = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if len(cfg.Cases) == 0 {
		for _, c := range rotor.DefaultCases() {
			cfg.Cases = append(cfg.Cases, fromCase(c))
		}
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the simulation parameters before any computation runs.
func (c *Config) Validate() error {
	if c.RPM <= 0 {
		return fmt.Errorf("rpm must be > 0, got %g", c.RPM)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be > 0 seconds, got %g", c.Duration)
	}
	if c.Samples < 2 {
		return fmt.Errorf("samples must be >= 2, got %d", c.Samples)
	}
	if len(c.Cases) == 0 {
		return fmt.Errorf("at least one case is required")
	}
	return nil
}

// BuildCases constructs the rotor cases through the validating component
// constructors. Any component failure aborts with the offending name.
func (c *Config) BuildCases() ([]rotor.Case, error) {
	cases := make([]rotor.Case, 0, len(c.Cases))
	for _, cc := range c.Cases {
		components := make([]rotor.Component, 0, len(cc.Components))
		for _, pc := range cc.Components {
			component, err := rotor.NewComponent(pc.Name, pc.Mass, pc.Position)
			if err != nil {
				return nil, fmt.Errorf("case %s: %w", cc.Name, err)
			}
			components = append(components, component)
		}
		cases = append(cases, rotor.Case{Name: cc.Name, Components: components})
	}
	return cases, nil
}

// Omega is the configured spin speed in rad/s.
func (c *Config) Omega() float64 {
	return rotor.OmegaFromRPM(c.RPM)
}

// Timeline is the configured sample times.
func (c *Config) Timeline() []float64 {
	return rotor.Timeline(c.Duration, c.Samples)
}

func fromCase(c rotor.Case) CaseConfig {
	cc := CaseConfig{Name: c.Name}
	for _, comp := range c.Components {
		cc.Components = append(cc.Components, ComponentConfig{
			Name:     comp.Name,
			Mass:     comp.Mass,
			Position: []float64{comp.Position.X, comp.Position.Y, comp.Position.Z},
		})
	}
	return cc
}
