// Package relay models a chain of forwarding hops carrying votes from a
// source through an adversarial hop to a terminal collector. Delay is
// simulated on a virtual clock; loss and tampering are drawn from an
// explicitly seeded random source.
package relay

import "time"

// Vote is one unit of data pushed through the hop chain. Tampered is set by
// an adversarial hop and checked by the collector.
type Vote struct {
	Index    int
	Tampered bool
}

// Delivery records one accepted vote and its virtual arrival time.
type Delivery struct {
	Vote      Vote
	ArrivedAt time.Duration
}
