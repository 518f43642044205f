package relay

// Collector is the terminal hop. It accumulates accepted votes with their
// virtual arrival time and counts tampered arrivals. It models no delay.
type Collector struct {
	clock         *Clock
	seen          map[int]bool
	Accepted      []Delivery
	TamperedCount int
}

// NewCollector creates an empty collector reading arrival times from clock.
func NewCollector(clock *Clock) *Collector {
	return &Collector{clock: clock, seen: make(map[int]bool)}
}

// Receive rejects tampered votes (counted, not recorded) and records accepted
// ones. A vote index is recorded at most once; redundant replication attempts
// of an already-accepted vote still return true but add no second record.
func (c *Collector) Receive(v Vote) (Vote, bool) {
	if v.Tampered {
		c.TamperedCount++
		return Vote{}, false
	}
	if !c.seen[v.Index] {
		c.seen[v.Index] = true
		c.Accepted = append(c.Accepted, Delivery{Vote: v, ArrivedAt: c.clock.Now()})
	}
	return v, true
}
