package sim

import (
	"errors"
	"fmt"
	"time"

	"votenet-sim/internal/config"
)

// ErrConfig marks a rejected simulation configuration. Callers can match it
// with errors.Is.
var ErrConfig = errors.New("invalid simulation config")

// Config holds the parameters for one simulation run. All randomness is
// drawn from a generator seeded with Seed, so equal configs produce equal
// results.
type Config struct {
	Votes             int
	FailureRate       float64
	BaseLatency       time.Duration
	DoSAttack         bool
	ReplicationFactor int
	Jitter            bool
	BurstDrop         bool
	BurstLength       int
	BurstFailureRate  float64
	TamperProbability float64

	// DoSProbability is the per-vote chance of a DoS escalation and
	// BurstStartProbability the per-vote chance of entering a burst.
	// Zero means the standard 0.10 and 0.05 rates.
	DoSProbability        float64
	BurstStartProbability float64

	Seed int64
}

// FromRun maps a YAML run section onto a simulation config.
func FromRun(r config.Run) Config {
	return Config{
		Votes:             r.Votes,
		FailureRate:       r.FailureRate,
		BaseLatency:       time.Duration(r.BaseLatencyMS) * time.Millisecond,
		DoSAttack:         r.DoSAttack,
		ReplicationFactor: r.ReplicationFactor,
		Jitter:            r.Jitter,
		BurstDrop:         r.BurstDrop,
		BurstLength:       r.BurstLength,
		BurstFailureRate:  r.BurstFailureRate,
		TamperProbability: r.TamperProbability,
		Seed:              r.Seed,
	}
}

// Validate rejects configurations that would produce undefined rates or
// probabilities outside [0,1]. It runs before any simulation work.
func (c Config) Validate() error {
	if c.Votes <= 0 {
		return fmt.Errorf("%w: votes must be positive, got %d", ErrConfig, c.Votes)
	}
	if c.BaseLatency <= 0 {
		return fmt.Errorf("%w: base latency must be positive, got %s", ErrConfig, c.BaseLatency)
	}
	if c.ReplicationFactor < 1 {
		return fmt.Errorf("%w: replication factor must be at least 1, got %d", ErrConfig, c.ReplicationFactor)
	}
	probs := []struct {
		name string
		v    float64
	}{
		{"failure_rate", c.FailureRate},
		{"burst_failure_rate", c.BurstFailureRate},
		{"tamper_probability", c.TamperProbability},
		{"dos_probability", c.DoSProbability},
		{"burst_start_probability", c.BurstStartProbability},
	}
	for _, p := range probs {
		if p.v < 0 || p.v > 1 {
			return fmt.Errorf("%w: %s %v outside [0,1]", ErrConfig, p.name, p.v)
		}
	}
	if c.BurstDrop && c.BurstLength < 1 {
		return fmt.Errorf("%w: burst length must be at least 1, got %d", ErrConfig, c.BurstLength)
	}
	return nil
}

// withDefaults fills the standard fault-trigger rates.
func (c Config) withDefaults() Config {
	if c.DoSProbability == 0 {
		c.DoSProbability = defaultDoSProbability
	}
	if c.BurstStartProbability == 0 {
		c.BurstStartProbability = defaultBurstStartProbability
	}
	return c
}
