// Package sim drives one simulation run: a relay chain replaying votes under
// DoS escalation, burst outages, replication, and Byzantine tampering.
package sim

import (
	"math/rand"
	"time"

	"votenet-sim/internal/relay"
)

// Run replays cfg.Votes votes through a Relay → Byzantine → Collector chain
// and reports run-level metrics. Loss and tampering are modeled outcomes, not
// errors; the only error returned is a rejected configuration.
func Run(cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	cfg = cfg.withDefaults()

	rng := rand.New(rand.NewSource(cfg.Seed))
	clock := relay.NewClock()

	hop := relay.NewRelay(clock, rng, relay.LinkState{
		FailureProbability: cfg.FailureRate,
		Latency:            cfg.BaseLatency,
		Jitter:             cfg.Jitter,
	})
	// The adversarial hop sits two delay units from the source and never
	// drops on its own; only tampering can stop a vote there.
	byz := relay.NewByzantine(relay.NewRelay(clock, rng, relay.LinkState{
		Latency: 2 * cfg.BaseLatency,
		Jitter:  cfg.Jitter,
	}), cfg.TamperProbability)
	collector := relay.NewCollector(clock)

	var burst burstState
	var latencies []time.Duration
	tamperedDetected := 0

	for i := 0; i < cfg.Votes; i++ {
		vote := relay.Vote{Index: i}
		start := clock.Now()
		hop.Link = burst.nextLink(cfg, rng)

		success := false
		tampered := false
		var acceptedAt time.Duration
		for r := 0; r < cfg.ReplicationFactor; r++ {
			fwd, ok := hop.Forward(vote, byz)
			if !ok {
				continue // lost in transit
			}
			if _, accepted := byz.Forward(fwd, collector); accepted {
				if !success {
					acceptedAt = clock.Now()
					success = true
				}
			} else {
				// The byzantine hop forwards with zero loss, so a rejection
				// here is the collector flagging a tampered arrival.
				tampered = true
			}
		}

		if success {
			latencies = append(latencies, acceptedAt-start)
		}
		if tampered {
			tamperedDetected++
		}
	}

	elapsed := clock.Now()
	accepted := len(collector.Accepted)
	res := Result{
		Votes:            cfg.Votes,
		Accepted:         accepted,
		TamperedDetected: tamperedDetected,
		Latencies:        latencies,
		MeanLatency:      meanDuration(latencies),
		SuccessRatePct:   float64(accepted) / float64(cfg.Votes) * 100,
		TamperRatePct:    float64(tamperedDetected) / float64(cfg.Votes) * 100,
		Elapsed:          elapsed,
	}
	if elapsed > 0 {
		res.Throughput = float64(accepted) / elapsed.Seconds()
	}
	return res, nil
}
