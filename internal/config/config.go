// YAML config loader with CUE schema validation.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Run holds the per-run simulation parameters in their YAML form.
type Run struct {
	Votes             int     `yaml:"votes"`
	FailureRate       float64 `yaml:"failure_rate"`
	BaseLatencyMS     int     `yaml:"base_latency_ms"`
	DoSAttack         bool    `yaml:"dos_attack"`
	ReplicationFactor int     `yaml:"replication_factor"`
	Jitter            bool    `yaml:"jitter"`
	BurstDrop         bool    `yaml:"burst_drop"`
	BurstLength       int     `yaml:"burst_length"`
	BurstFailureRate  float64 `yaml:"burst_failure_rate"`
	TamperProbability float64 `yaml:"tamper_probability"`
	Seed              int64   `yaml:"seed"`
}

// Sweep defines the parameter grid and how the sweep executes.
type Sweep struct {
	Voters             []int     `yaml:"voters"`
	FailureRates       []float64 `yaml:"failure_rates"`
	BaseLatenciesMS    []int     `yaml:"base_latencies_ms"`
	DoS                []bool    `yaml:"dos"`
	ReplicationFactors []int     `yaml:"replication_factors"`
	Replicates         int       `yaml:"replicates"`
	Concurrency        int       `yaml:"concurrency"`
	Seed               int64     `yaml:"seed"`
	Output             string    `yaml:"output"`
}

// Config is the root configuration: defaults applied to every run plus the
// sweep grid.
type Config struct {
	Defaults Run   `yaml:"defaults"`
	Sweep    Sweep `yaml:"sweep"`
}

// Load validates the YAML file against the CUE schema, unmarshals it, and
// fills defaults.
func Load(configPath, cueSchemaPath string) (*Config, error) {
	if cueSchemaPath != "" {
		if err := ValidateWithCue(configPath, cueSchemaPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	c.Defaults.ApplyDefaults()
	if c.Sweep.Replicates == 0 {
		c.Sweep.Replicates = 10
	}
	if c.Sweep.Concurrency == 0 {
		c.Sweep.Concurrency = 8
	}
	if c.Sweep.Output == "" {
		c.Sweep.Output = "results/sim_runs.csv"
	}
}

// ApplyDefaults fills zero-valued run parameters with the standard values.
func (r *Run) ApplyDefaults() {
	if r.Votes == 0 {
		r.Votes = 1000
	}
	if r.BaseLatencyMS == 0 {
		r.BaseLatencyMS = 5
	}
	if r.ReplicationFactor == 0 {
		r.ReplicationFactor = 1
	}
	if r.BurstLength == 0 {
		r.BurstLength = 50
	}
	if r.BurstFailureRate == 0 {
		r.BurstFailureRate = 0.5
	}
}

// Validate checks the grid shape. Per-run parameter ranges are validated at
// the simulation boundary.
func (c *Config) Validate() error {
	dims := []struct {
		name string
		n    int
	}{
		{"voters", len(c.Sweep.Voters)},
		{"failure_rates", len(c.Sweep.FailureRates)},
		{"base_latencies_ms", len(c.Sweep.BaseLatenciesMS)},
		{"dos", len(c.Sweep.DoS)},
		{"replication_factors", len(c.Sweep.ReplicationFactors)},
	}
	for _, d := range dims {
		if d.n == 0 {
			return fmt.Errorf("sweep dimension %s is empty", d.name)
		}
	}
	if c.Sweep.Replicates < 1 {
		return fmt.Errorf("replicates must be at least 1, got %d", c.Sweep.Replicates)
	}
	if c.Sweep.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Sweep.Concurrency)
	}
	return nil
}
