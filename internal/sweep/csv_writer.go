package sweep

import (
	"encoding/csv"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// csvHeader is the fixed column order of the summary file. Downstream
// reporting tools depend on these exact names.
var csvHeader = []string{
	"voters",
	"failure_rate",
	"base_latency_ms",
	"dos",
	"replication_factor",
	"replicates",
	"latency_ms_mean",
	"latency_ms_ci95",
	"throughput_mean",
	"throughput_ci95",
	"success_pct_mean",
	"success_pct_ci95",
	"tamper_pct_mean",
	"tamper_pct_ci95",
}

// CSVWriter appends summary rows to a CSV file. The header is written only
// when the file does not already exist, so repeated sweeps accumulate rows
// instead of overwriting.
type CSVWriter struct {
	f *os.File
	w *csv.Writer
}

// NewCSVWriter opens (or creates) the summary file in append mode, creating
// parent directories as needed.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	_, statErr := os.Stat(path)
	writeHeader := errors.Is(statErr, fs.ErrNotExist)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	cw := &CSVWriter{f: f, w: csv.NewWriter(f)}
	if writeHeader {
		if err := cw.w.Write(csvHeader); err != nil {
			f.Close()
			return nil, err
		}
	}
	return cw, nil
}

// WriteRow appends one summary row.
func (c *CSVWriter) WriteRow(r Row) error {
	return c.w.Write(r.record())
}

// WriteRows appends multiple summary rows.
func (c *CSVWriter) WriteRows(rows []Row) error {
	for _, r := range rows {
		if err := c.WriteRow(r); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes buffered rows and closes the file.
func (c *CSVWriter) Close() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		c.f.Close()
		return err
	}
	return c.f.Close()
}
