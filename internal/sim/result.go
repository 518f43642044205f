package sim

import "time"

// Result is the self-contained outcome of one simulation run. All fields are
// recomputed from scratch per run; nothing survives across runs.
type Result struct {
	Votes            int
	Accepted         int
	TamperedDetected int

	// Latencies holds the per-vote time from fault resolution to first
	// acceptance, for successful votes only.
	Latencies []time.Duration

	MeanLatency    time.Duration
	Throughput     float64 // accepted votes per second of simulated time
	SuccessRatePct float64
	TamperRatePct  float64
	Elapsed        time.Duration
}

func meanDuration(ds []time.Duration) time.Duration {
	if len(ds) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range ds {
		sum += d
	}
	return sum / time.Duration(len(ds))
}
