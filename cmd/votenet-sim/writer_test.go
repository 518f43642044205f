package main

import (
	"os"
	"path/filepath"
	"testing"

	"votenet-sim/internal/config"
	"votenet-sim/internal/sweep"
)

func resetSweepFlags(t *testing.T) {
	t.Helper()
	oldPrint, oldColor, oldDB, oldTUI := sweepPrintOnly, sweepColor, sweepDBPath, sweepTUI
	t.Cleanup(func() {
		sweepPrintOnly, sweepColor, sweepDBPath, sweepTUI = oldPrint, oldColor, oldDB, oldTUI
	})
	sweepPrintOnly, sweepColor, sweepDBPath, sweepTUI = false, false, "", false
	t.Setenv("GREPTIMEDB_ENDPOINT", "")
}

func testSweepConfig(output string) *config.Config {
	return &config.Config{
		Sweep: config.Sweep{
			Voters:             []int{100},
			FailureRates:       []float64{0},
			BaseLatenciesMS:    []int{5},
			DoS:                []bool{false},
			ReplicationFactors: []int{1},
			Replicates:         2,
			Concurrency:        1,
			Output:             output,
		},
	}
}

func TestNewRowWritersPrintOnly(t *testing.T) {
	resetSweepFlags(t)
	sweepPrintOnly = true

	out := filepath.Join(t.TempDir(), "rows.csv")
	w, tui, cleanup, err := newRowWriters(testSweepConfig(out))
	if err != nil {
		t.Fatalf("newRowWriters returned error: %v", err)
	}
	cleanup()
	if w == nil {
		t.Fatalf("expected a writer")
	}
	if tui != nil {
		t.Fatalf("expected no TUI writer without --tui")
	}
	if _, err := os.Stat(out); err == nil {
		t.Fatalf("print-only mode created the CSV file")
	}
}

func TestNewRowWritersCSV(t *testing.T) {
	resetSweepFlags(t)

	out := filepath.Join(t.TempDir(), "rows.csv")
	w, _, cleanup, err := newRowWriters(testSweepConfig(out))
	if err != nil {
		t.Fatalf("newRowWriters returned error: %v", err)
	}
	if err := sweep.WriteAll(w, []sweep.Row{{Voters: 100, Replicates: 2}}); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	cleanup()

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected non-empty CSV output")
	}
}

func TestNewRowWritersClosesOnError(t *testing.T) {
	resetSweepFlags(t)
	// A directory is not a usable database file, so the SQLite writer fails
	// after the CSV writer has already been opened.
	sweepDBPath = t.TempDir()

	out := filepath.Join(t.TempDir(), "rows.csv")
	_, _, _, err := newRowWriters(testSweepConfig(out))
	if err == nil {
		t.Fatalf("expected error from SQLite writer")
	}

	// The CSV header is buffered until Close flushes it; a non-empty file
	// proves the earlier writer was closed on the error path.
	info, statErr := os.Stat(out)
	if statErr != nil {
		t.Fatalf("stat output: %v", statErr)
	}
	if info.Size() == 0 {
		t.Fatalf("CSV writer was not closed on the error path")
	}
}

func TestNewRowWritersSQLite(t *testing.T) {
	resetSweepFlags(t)
	sweepDBPath = filepath.Join(t.TempDir(), "results.db")

	out := filepath.Join(t.TempDir(), "rows.csv")
	w, _, cleanup, err := newRowWriters(testSweepConfig(out))
	if err != nil {
		t.Fatalf("newRowWriters returned error: %v", err)
	}
	if err := sweep.WriteAll(w, []sweep.Row{{Voters: 100, Replicates: 2}}); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	cleanup()

	if _, err := os.Stat(sweepDBPath); err != nil {
		t.Fatalf("stat results store: %v", err)
	}
}
