// Package sweep runs the parameter sweep: the cross product of configuration
// dimensions, replicate simulation runs per cell under bounded concurrency,
// and mean/CI95 aggregation into one summary row per cell.
package sweep

import "votenet-sim/internal/config"

// Cell is one point in the configuration cross product.
type Cell struct {
	Voters            int
	FailureRate       float64
	BaseLatencyMS     int
	DoS               bool
	ReplicationFactor int
}

// Grid holds the value sets for each swept dimension.
type Grid struct {
	Voters             []int
	FailureRates       []float64
	BaseLatenciesMS    []int
	DoS                []bool
	ReplicationFactors []int
}

// GridFromConfig builds a grid from the sweep config section.
func GridFromConfig(s config.Sweep) Grid {
	return Grid{
		Voters:             s.Voters,
		FailureRates:       s.FailureRates,
		BaseLatenciesMS:    s.BaseLatenciesMS,
		DoS:                s.DoS,
		ReplicationFactors: s.ReplicationFactors,
	}
}

// Size returns the number of cells in the cross product.
func (g Grid) Size() int {
	return len(g.Voters) * len(g.FailureRates) * len(g.BaseLatenciesMS) * len(g.DoS) * len(g.ReplicationFactors)
}

// Cells enumerates the full cross product. The nesting order (voters,
// failure rate, base latency, dos, replication factor) fixes the output row
// order; results are always emitted in this order no matter how cells are
// scheduled.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.Size())
	for _, v := range g.Voters {
		for _, fr := range g.FailureRates {
			for _, lat := range g.BaseLatenciesMS {
				for _, dos := range g.DoS {
					for _, repl := range g.ReplicationFactors {
						cells = append(cells, Cell{
							Voters:            v,
							FailureRate:       fr,
							BaseLatencyMS:     lat,
							DoS:               dos,
							ReplicationFactor: repl,
						})
					}
				}
			}
		}
	}
	return cells
}
