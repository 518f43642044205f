package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validSweepYAML = `
defaults:
  votes: 500
  jitter: true

sweep:
  voters: [100, 200]
  failure_rates: [0.0, 0.5]
  base_latencies_ms: [5]
  dos: [false, true]
  replication_factors: [1]
  seed: 7
`

func writeTempConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeTempConfig(t, validSweepYAML)
	cfg, err := Load(path, "../../schemas/sweep.cue")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Sweep.Voters) != 2 || cfg.Sweep.Voters[0] != 100 {
		t.Errorf("unexpected voters: %v", cfg.Sweep.Voters)
	}
	if cfg.Sweep.Seed != 7 {
		t.Errorf("seed = %d, want 7", cfg.Sweep.Seed)
	}
	if cfg.Defaults.Votes != 500 || !cfg.Defaults.Jitter {
		t.Errorf("unexpected defaults: %+v", cfg.Defaults)
	}
}

func TestLoad_FillsDefaults(t *testing.T) {
	path := writeTempConfig(t, validSweepYAML)
	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Sweep.Replicates != 10 {
		t.Errorf("replicates = %d, want default 10", cfg.Sweep.Replicates)
	}
	if cfg.Sweep.Concurrency != 8 {
		t.Errorf("concurrency = %d, want default 8", cfg.Sweep.Concurrency)
	}
	if cfg.Sweep.Output != "results/sim_runs.csv" {
		t.Errorf("output = %q, want default path", cfg.Sweep.Output)
	}
	if cfg.Defaults.BaseLatencyMS != 5 || cfg.Defaults.ReplicationFactor != 1 {
		t.Errorf("run defaults not applied: %+v", cfg.Defaults)
	}
}

func TestLoad_EmptyDimension(t *testing.T) {
	path := writeTempConfig(t, `
sweep:
  voters: []
  failure_rates: [0.0]
  base_latencies_ms: [5]
  dos: [false]
  replication_factors: [1]
`)
	if _, err := Load(path, ""); err == nil {
		t.Fatalf("expected error for empty voters dimension")
	}
}

func TestLoad_CueRejectsOutOfRange(t *testing.T) {
	path := writeTempConfig(t, `
defaults:
  failure_rate: 1.5

sweep:
  voters: [100]
  failure_rates: [0.0]
  base_latencies_ms: [5]
  dos: [false]
  replication_factors: [1]
`)
	if _, err := Load(path, "../../schemas/sweep.cue"); err == nil {
		t.Fatalf("expected schema validation error for failure_rate 1.5")
	}
}

func TestValidateWithCue(t *testing.T) {
	schema := "../../schemas/sweep.cue"

	path := writeTempConfig(t, validSweepYAML)
	if err := ValidateWithCue(path, schema); err != nil {
		t.Fatalf("ValidateWithCue on valid config: %v", err)
	}

	path = writeTempConfig(t, "sweep: [not: a: mapping")
	if err := ValidateWithCue(path, schema); err == nil {
		t.Fatalf("expected error for malformed YAML")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), ""); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestRunApplyDefaults(t *testing.T) {
	var r Run
	r.ApplyDefaults()
	if r.Votes != 1000 || r.BaseLatencyMS != 5 || r.ReplicationFactor != 1 {
		t.Fatalf("unexpected defaults: %+v", r)
	}
	if r.BurstLength != 50 || r.BurstFailureRate != 0.5 {
		t.Fatalf("unexpected burst defaults: %+v", r)
	}

	r = Run{Votes: 42, BaseLatencyMS: 9}
	r.ApplyDefaults()
	if r.Votes != 42 || r.BaseLatencyMS != 9 {
		t.Fatalf("explicit values overridden: %+v", r)
	}
}
