package sweep

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver
)

// sweepSchema stores one record per emitted summary row, keyed by the sweep
// invocation that produced it.
const sweepSchema = `
CREATE TABLE IF NOT EXISTS sweep_rows (
    sweep_id TEXT NOT NULL,
    voters INTEGER NOT NULL,
    failure_rate REAL NOT NULL,
    base_latency_ms INTEGER NOT NULL,
    dos INTEGER NOT NULL,
    replication_factor INTEGER NOT NULL,
    replicates INTEGER NOT NULL,
    latency_ms_mean REAL NOT NULL,
    latency_ms_ci95 REAL NOT NULL,
    throughput_mean REAL NOT NULL,
    throughput_ci95 REAL NOT NULL,
    success_pct_mean REAL NOT NULL,
    success_pct_ci95 REAL NOT NULL,
    tamper_pct_mean REAL NOT NULL,
    tamper_pct_ci95 REAL NOT NULL,
    error TEXT,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sweep_rows_sweep ON sweep_rows(sweep_id);
`

const insertRowSQL = `
INSERT INTO sweep_rows (
    sweep_id, voters, failure_rate, base_latency_ms, dos, replication_factor,
    replicates, latency_ms_mean, latency_ms_ci95, throughput_mean,
    throughput_ci95, success_pct_mean, success_pct_ci95, tamper_pct_mean,
    tamper_pct_ci95, error, created_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// SQLiteWriter persists summary rows in a SQLite results store so past sweeps
// stay queryable. Each writer instance tags its rows with a fresh sweep ID.
type SQLiteWriter struct {
	db      *sql.DB
	sweepID string
}

// NewSQLiteWriter opens (or creates) the results database at path and
// initializes the schema.
func NewSQLiteWriter(path string) (*SQLiteWriter, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create results directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open results database: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite works best with a single writer

	if _, err := db.Exec(sweepSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize results schema: %w", err)
	}
	return &SQLiteWriter{db: db, sweepID: uuid.New().String()}, nil
}

// SweepID returns the identifier tagged onto this writer's rows.
func (w *SQLiteWriter) SweepID() string {
	return w.sweepID
}

// WriteRow inserts one summary row.
func (w *SQLiteWriter) WriteRow(r Row) error {
	dos := 0
	if r.DoS {
		dos = 1
	}
	_, err := w.db.Exec(insertRowSQL,
		w.sweepID, r.Voters, r.FailureRate, r.BaseLatencyMS, dos,
		r.ReplicationFactor, r.Replicates,
		r.LatencyMSMean, r.LatencyMSCI95,
		r.ThroughputMean, r.ThroughputCI95,
		r.SuccessPctMean, r.SuccessPctCI95,
		r.TamperPctMean, r.TamperPctCI95,
		r.Err, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// WriteRows inserts multiple rows in one transaction.
func (w *SQLiteWriter) WriteRows(rows []Row) error {
	tx, err := w.db.Begin()
	if err != nil {
		return err
	}
	for _, r := range rows {
		dos := 0
		if r.DoS {
			dos = 1
		}
		if _, err := tx.Exec(insertRowSQL,
			w.sweepID, r.Voters, r.FailureRate, r.BaseLatencyMS, dos,
			r.ReplicationFactor, r.Replicates,
			r.LatencyMSMean, r.LatencyMSCI95,
			r.ThroughputMean, r.ThroughputCI95,
			r.SuccessPctMean, r.SuccessPctCI95,
			r.TamperPctMean, r.TamperPctCI95,
			r.Err, time.Now().UTC().Format(time.RFC3339),
		); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// Close closes the underlying database.
func (w *SQLiteWriter) Close() error {
	return w.db.Close()
}
