package relay

// Byzantine wraps a relay with adversarial behavior: votes it receives may be
// flagged as tampered before the base relay's delay and pass-through run.
// Composition keeps the delay/loss mechanics in one place.
type Byzantine struct {
	*Relay
	TamperProbability float64
}

// NewByzantine decorates base with a tamper draw on receive.
func NewByzantine(base *Relay, tamperProbability float64) *Byzantine {
	return &Byzantine{Relay: base, TamperProbability: tamperProbability}
}

// Receive may corrupt the vote, then delegates to the base relay.
func (b *Byzantine) Receive(v Vote) (Vote, bool) {
	if b.TamperProbability > 0 && b.rng.Float64() < b.TamperProbability {
		v.Tampered = true
	}
	return b.Relay.Receive(v)
}
