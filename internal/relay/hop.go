package relay

import (
	"math/rand"
	"time"
)

// LinkState holds the transmission parameters a hop uses for one attempt.
// The orchestrator's fault machines derive a fresh LinkState per vote and
// assign it to the relay before forwarding.
type LinkState struct {
	FailureProbability float64
	Latency            time.Duration
	Jitter             bool
}

// Receiver accepts a vote from an upstream hop. The returned bool is false
// when the receiver drops the vote (a collector rejecting a tampered
// arrival); intermediate hops always pass the vote through.
type Receiver interface {
	Receive(v Vote) (Vote, bool)
}

// Relay models one network hop with probabilistic loss, base delay, and
// optional jitter. It keeps no state across calls beyond its current link
// parameters.
type Relay struct {
	clock *Clock
	rng   *rand.Rand
	Link  LinkState
}

// NewRelay creates a relay advancing clock and drawing from rng.
func NewRelay(clock *Clock, rng *rand.Rand, link LinkState) *Relay {
	return &Relay{clock: clock, rng: rng, Link: link}
}

// delay advances the clock by the link latency plus uniform jitter in
// [0, latency) when enabled.
func (r *Relay) delay() {
	d := r.Link.Latency
	if r.Link.Jitter {
		d += time.Duration(r.rng.Float64() * float64(r.Link.Latency))
	}
	r.clock.Advance(d)
}

// Forward incurs the hop delay, draws against the loss probability, and on
// survival delegates to next.Receive. A false return means the vote was lost
// in transit or dropped by the receiver.
func (r *Relay) Forward(v Vote, next Receiver) (Vote, bool) {
	r.delay()
	if r.rng.Float64() < r.Link.FailureProbability {
		return Vote{}, false
	}
	return next.Receive(v)
}

// Receive incurs the symmetric hop delay and passes the vote through
// unmodified.
func (r *Relay) Receive(v Vote) (Vote, bool) {
	r.delay()
	return v, true
}
