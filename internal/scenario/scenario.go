// Package scenario provides named simulation presets, either built in or
// loaded from a YAML file.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"votenet-sim/internal/config"
)

// Scenario names one ready-to-run simulation configuration.
type Scenario struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Run         config.Run `yaml:"run"`
}

// File is the YAML document shape: a list of scenarios.
type File struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load reads scenario definitions from disk.
func Load(path string) ([]Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenarios: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse scenarios: %w", err)
	}
	for i := range f.Scenarios {
		f.Scenarios[i].Run.ApplyDefaults()
	}
	return f.Scenarios, nil
}

// Find returns the scenario with the given name from ss.
func Find(ss []Scenario, name string) (Scenario, bool) {
	for _, s := range ss {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

// BuiltIn returns the standard demonstration scenarios.
func BuiltIn() map[string]Scenario {
	normal := config.Run{Votes: 1000, FailureRate: 0, BaseLatencyMS: 5, ReplicationFactor: 1}
	dos := normal
	dos.DoSAttack = true
	burst := normal
	burst.BurstDrop = true
	burst.BurstLength = 50
	burst.BurstFailureRate = 0.5
	byzantine := normal
	byzantine.TamperProbability = 0.05
	byzantine.ReplicationFactor = 3

	scenarios := map[string]Scenario{
		"normal": {
			Name:        "normal",
			Description: "clean network, no faults injected",
			Run:         normal,
		},
		"dos-attack": {
			Name:        "dos-attack",
			Description: "random denial-of-service escalation on the first hop",
			Run:         dos,
		},
		"burst-drop": {
			Name:        "burst-drop",
			Description: "bursty outages forcing elevated loss on consecutive votes",
			Run:         burst,
		},
		"byzantine-replicated": {
			Name:        "byzantine-replicated",
			Description: "adversarial middle hop with 3x replication for redundancy",
			Run:         byzantine,
		},
	}
	for k, s := range scenarios {
		s.Run.ApplyDefaults()
		scenarios[k] = s
	}
	return scenarios
}
