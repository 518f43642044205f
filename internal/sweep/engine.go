package sweep

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"votenet-sim/internal/config"
	"votenet-sim/internal/logging"
	"votenet-sim/internal/sim"
)

// replicateSeedStride spaces the seed ranges of neighboring cells so
// replicate seeds never collide across the grid.
const replicateSeedStride = 1_000_003

// RowWriter is an interface to support different output sinks for summary
// rows.
type RowWriter interface {
	WriteRow(Row) error
}

// Optional: writers can also support batch mode.
type batchRowWriter interface {
	WriteRows([]Row) error
}

// Progress is notified as cells finish, in completion order. Implementations
// must be safe for concurrent use.
type Progress interface {
	CellDone(done, total int, row Row)
}

// Engine runs replicate simulations for every cell of the grid and
// aggregates them into summary rows.
type Engine struct {
	grid        Grid
	defaults    config.Run
	replicates  int
	concurrency int
	seed        int64
	progress    Progress
}

// NewEngine builds an engine from the loaded configuration.
func NewEngine(cfg *config.Config) *Engine {
	return &Engine{
		grid:        GridFromConfig(cfg.Sweep),
		defaults:    cfg.Defaults,
		replicates:  cfg.Sweep.Replicates,
		concurrency: cfg.Sweep.Concurrency,
		seed:        cfg.Sweep.Seed,
	}
}

// SetProgress registers an observer for live cell completions.
func (e *Engine) SetProgress(p Progress) {
	e.progress = p
}

// Run executes the sweep. At most the configured number of cells make
// progress concurrently; replicates within a cell run sequentially. Rows come
// back in grid enumeration order regardless of completion order. A failing
// cell is recorded as partial and never aborts the sweep.
func (e *Engine) Run(ctx context.Context) []Row {
	log := logging.FromContext(ctx)
	cells := e.grid.Cells()
	rows := make([]Row, len(cells))

	started := time.Now()
	log.Info("starting sweep", "cells", len(cells), "replicates", e.replicates, "concurrency", e.concurrency)

	var done atomic.Int64
	var g errgroup.Group
	g.SetLimit(e.concurrency)
	for i, cell := range cells {
		g.Go(func() error {
			rows[i] = e.runCell(ctx, i, cell)
			if e.progress != nil {
				e.progress.CellDone(int(done.Add(1)), len(cells), rows[i])
			}
			return nil
		})
	}
	g.Wait()

	log.Info("sweep finished", "cells", len(cells), "took", time.Since(started))
	return rows
}

// runCell executes the replicates for one cell and aggregates them. Each
// replicate gets a deterministic seed derived from the sweep seed, the cell's
// enumeration index, and the replicate index, so results do not depend on
// scheduling.
func (e *Engine) runCell(ctx context.Context, idx int, c Cell) Row {
	log := logging.FromContext(ctx)
	row := Row{
		Voters:            c.Voters,
		FailureRate:       c.FailureRate,
		BaseLatencyMS:     c.BaseLatencyMS,
		DoS:               c.DoS,
		ReplicationFactor: c.ReplicationFactor,
	}

	var lats, thrs, succs, tampers []float64
	for r := 0; r < e.replicates; r++ {
		runCfg := e.defaults
		runCfg.Votes = c.Voters
		runCfg.FailureRate = c.FailureRate
		runCfg.BaseLatencyMS = c.BaseLatencyMS
		runCfg.DoSAttack = c.DoS
		runCfg.ReplicationFactor = c.ReplicationFactor

		simCfg := sim.FromRun(runCfg)
		simCfg.Seed = e.seed + int64(idx)*replicateSeedStride + int64(r)

		res, err := sim.Run(simCfg)
		if err != nil {
			// A rejected config fails every replicate identically; record the
			// cell as partial and move on.
			row.Err = err.Error()
			log.Error("cell replicate failed", "cell", idx, "replicate", r, "err", err)
			break
		}
		lats = append(lats, res.MeanLatency.Seconds()*1000)
		thrs = append(thrs, res.Throughput)
		succs = append(succs, res.SuccessRatePct)
		tampers = append(tampers, res.TamperRatePct)
	}

	row.Replicates = len(lats)
	row.LatencyMSMean, row.LatencyMSCI95 = MeanCI95(lats)
	row.ThroughputMean, row.ThroughputCI95 = MeanCI95(thrs)
	row.SuccessPctMean, row.SuccessPctCI95 = MeanCI95(succs)
	row.TamperPctMean, row.TamperPctCI95 = MeanCI95(tampers)
	return row
}

// WriteAll emits rows through w in order, using batch mode when supported.
func WriteAll(w RowWriter, rows []Row) error {
	if bw, ok := w.(batchRowWriter); ok {
		return bw.WriteRows(rows)
	}
	for _, r := range rows {
		if err := w.WriteRow(r); err != nil {
			return err
		}
	}
	return nil
}
