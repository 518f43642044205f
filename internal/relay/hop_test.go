package relay

import (
	"math/rand"
	"testing"
	"time"
)

// sink is a terminal receiver recording what reached it.
type sink struct {
	votes []Vote
}

func (s *sink) Receive(v Vote) (Vote, bool) {
	s.votes = append(s.votes, v)
	return v, true
}

func TestRelayForward_Delivers(t *testing.T) {
	clock := NewClock()
	rng := rand.New(rand.NewSource(1))
	hop := NewRelay(clock, rng, LinkState{FailureProbability: 0, Latency: 5 * time.Millisecond})
	next := &sink{}

	v, ok := hop.Forward(Vote{Index: 7}, next)
	if !ok {
		t.Fatalf("expected delivery with zero failure probability")
	}
	if v.Index != 7 || v.Tampered {
		t.Fatalf("vote modified in transit: %+v", v)
	}
	if len(next.votes) != 1 {
		t.Fatalf("expected 1 delivered vote, got %d", len(next.votes))
	}
	if clock.Now() != 5*time.Millisecond {
		t.Fatalf("expected clock at 5ms, got %s", clock.Now())
	}
}

func TestRelayForward_TotalLoss(t *testing.T) {
	clock := NewClock()
	rng := rand.New(rand.NewSource(1))
	hop := NewRelay(clock, rng, LinkState{FailureProbability: 1, Latency: 5 * time.Millisecond})
	next := &sink{}

	for i := 0; i < 100; i++ {
		if _, ok := hop.Forward(Vote{Index: i}, next); ok {
			t.Fatalf("vote %d delivered despite failure probability 1", i)
		}
	}
	if len(next.votes) != 0 {
		t.Fatalf("expected no deliveries, got %d", len(next.votes))
	}
	// The delay is incurred before the loss draw.
	if clock.Now() != 100*5*time.Millisecond {
		t.Fatalf("expected clock at 500ms, got %s", clock.Now())
	}
}

func TestRelayDelay_JitterBounds(t *testing.T) {
	clock := NewClock()
	rng := rand.New(rand.NewSource(42))
	base := 10 * time.Millisecond
	hop := NewRelay(clock, rng, LinkState{Latency: base, Jitter: true})

	prev := clock.Now()
	for i := 0; i < 1000; i++ {
		hop.Receive(Vote{Index: i})
		step := clock.Now() - prev
		if step < base || step >= 2*base {
			t.Fatalf("jittered delay %s outside [%s, %s)", step, base, 2*base)
		}
		prev = clock.Now()
	}
}

func TestByzantineReceive_TamperFlag(t *testing.T) {
	cases := []struct {
		name   string
		prob   float64
		tamper bool
	}{
		{"always", 1, true},
		{"never", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clock := NewClock()
			rng := rand.New(rand.NewSource(3))
			byz := NewByzantine(NewRelay(clock, rng, LinkState{Latency: time.Millisecond}), tc.prob)
			for i := 0; i < 50; i++ {
				v, ok := byz.Receive(Vote{Index: i})
				if !ok {
					t.Fatalf("byzantine receive dropped vote %d", i)
				}
				if v.Tampered != tc.tamper {
					t.Fatalf("vote %d tampered = %t, want %t", i, v.Tampered, tc.tamper)
				}
			}
		})
	}
}

func TestByzantineForward_UsesOwnLink(t *testing.T) {
	clock := NewClock()
	rng := rand.New(rand.NewSource(5))
	byz := NewByzantine(NewRelay(clock, rng, LinkState{Latency: 8 * time.Millisecond}), 0)
	next := &sink{}

	if _, ok := byz.Forward(Vote{Index: 0}, next); !ok {
		t.Fatalf("forward with zero loss dropped the vote")
	}
	if clock.Now() != 8*time.Millisecond {
		t.Fatalf("expected clock at 8ms, got %s", clock.Now())
	}
}
