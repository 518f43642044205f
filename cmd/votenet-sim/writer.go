package main

import (
	"os"

	"golang.org/x/term"

	"votenet-sim/internal/config"
	"votenet-sim/internal/sweep"
)

// newRowWriters assembles the sweep's output sinks from flags and env vars.
// It returns the combined writer, the TUI writer when one is active (for
// progress wiring), and a cleanup function closing any resources.
func newRowWriters(cfg *config.Config) (sweep.RowWriter, *sweep.TUIWriter, func(), error) {
	var writers []sweep.RowWriter
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch {
	case sweepPrintOnly && sweepColor:
		cw := sweep.NewColorStdoutWriter()
		writers = append(writers, cw)
		closers = append(closers, func() { cw.Close() })
	case sweepPrintOnly:
		writers = append(writers, &sweep.StdoutWriter{})
	default:
		csvw, err := sweep.NewCSVWriter(cfg.Sweep.Output)
		if err != nil {
			return nil, nil, nil, err
		}
		writers = append(writers, csvw)
		closers = append(closers, func() { csvw.Close() })
	}

	if sweepDBPath != "" {
		dbw, err := sweep.NewSQLiteWriter(sweepDBPath)
		if err != nil {
			cleanup()
			return nil, nil, nil, err
		}
		writers = append(writers, dbw)
		closers = append(closers, func() { dbw.Close() })
	}

	if endpoint := os.Getenv("GREPTIMEDB_ENDPOINT"); endpoint != "" {
		db := os.Getenv("GREPTIMEDB_DATABASE")
		if db == "" {
			db = "public"
		}
		gw, err := sweep.NewGreptimeWriter(endpoint, db, os.Getenv("GREPTIMEDB_TABLE"))
		if err != nil {
			cleanup()
			return nil, nil, nil, err
		}
		writers = append(writers, gw)
	}

	var tui *sweep.TUIWriter
	if sweepTUI && term.IsTerminal(int(os.Stdout.Fd())) {
		tui = sweep.NewTUIWriter(sweep.GridFromConfig(cfg.Sweep).Size())
		writers = append(writers, tui)
		closers = append(closers, func() { tui.Close() })
	}

	return sweep.NewMultiWriter(writers...), tui, cleanup, nil
}
