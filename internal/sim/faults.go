package sim

import (
	"math"
	"math/rand"

	"votenet-sim/internal/relay"
)

const (
	defaultDoSProbability        = 0.10
	defaultBurstStartProbability = 0.05

	// DoS escalation floors the loss probability and multiplies latency.
	dosMinFailure    = 0.5
	dosLatencyFactor = 5
)

// burstState is the two-state burst-outage machine. While active it forces
// the burst failure rate on consecutive votes and returns to normal once
// BurstLength votes have passed.
type burstState struct {
	active bool
	count  int
}

// resolveLink derives the relay's transmission parameters for one vote from
// the baseline config and the active fault conditions. DoS escalation is
// applied first, then the burst override; when both are active the burst
// failure rate wins while the escalated latency stays.
func resolveLink(cfg Config, dosActive, burstActive bool) relay.LinkState {
	link := relay.LinkState{
		FailureProbability: cfg.FailureRate,
		Latency:            cfg.BaseLatency,
		Jitter:             cfg.Jitter,
	}
	if dosActive {
		link.FailureProbability = math.Max(cfg.FailureRate, dosMinFailure)
		link.Latency = cfg.BaseLatency * dosLatencyFactor
	}
	if burstActive {
		link.FailureProbability = cfg.BurstFailureRate
	}
	return link
}

// nextLink draws this vote's DoS escalation, steps the burst machine, and
// returns the resulting link state. The vote that triggers a burst is not
// itself overridden; the elevated rate applies from the next vote on.
func (b *burstState) nextLink(cfg Config, rng *rand.Rand) relay.LinkState {
	dosActive := cfg.DoSAttack && rng.Float64() < cfg.DoSProbability

	burstActive := false
	if cfg.BurstDrop {
		if b.active {
			burstActive = true
			b.count++
			if b.count >= cfg.BurstLength {
				b.active = false
				b.count = 0
			}
		} else if rng.Float64() < cfg.BurstStartProbability {
			b.active = true
			b.count = 0
		}
	}
	return resolveLink(cfg, dosActive, burstActive)
}
