package sweep

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func sampleRow() Row {
	return Row{
		Voters:            1000,
		FailureRate:       0.1,
		BaseLatencyMS:     5,
		DoS:               true,
		ReplicationFactor: 3,
		Replicates:        10,
		LatencyMSMean:     25.1234,
		LatencyMSCI95:     1.5,
		ThroughputMean:    38.7,
		ThroughputCI95:    0.42,
		SuccessPctMean:    97.5,
		SuccessPctCI95:    0.8,
		TamperPctMean:     1.25,
		TamperPctCI95:     0.1,
	}
}

func TestRowRecord(t *testing.T) {
	got := sampleRow().record()
	want := []string{
		"1000", "0.1", "5", "1", "3", "10",
		"25.123", "1.500", "38.700", "0.420",
		"97.500", "0.800", "1.250", "0.100",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("record = %v, want %v", got, want)
	}
	if len(got) != len(csvHeader) {
		t.Fatalf("record has %d fields, header has %d", len(got), len(csvHeader))
	}
}

func TestRowRecord_FailureRateKeepsDecimal(t *testing.T) {
	cases := []struct {
		rate float64
		want string
	}{
		{0, "0.0"},
		{0.1, "0.1"},
		{1, "1.0"},
		{0.25, "0.25"},
	}
	for _, tc := range cases {
		r := sampleRow()
		r.FailureRate = tc.rate
		if got := r.record()[1]; got != tc.want {
			t.Errorf("failure_rate %v renders %q, want %q", tc.rate, got, tc.want)
		}
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestCSVWriter_HeaderOnceAcrossAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results", "sim_runs.csv")

	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatalf("NewCSVWriter: %v", err)
	}
	if err := w.WriteRows([]Row{sampleRow(), sampleRow()}); err != nil {
		t.Fatalf("WriteRows: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	lines := readLines(t, path)
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want header + 2 rows", len(lines))
	}
	if lines[0] != strings.Join(csvHeader, ",") {
		t.Fatalf("header = %q", lines[0])
	}

	// A second sweep appends rows without repeating the header.
	w, err = NewCSVWriter(path)
	if err != nil {
		t.Fatalf("NewCSVWriter (reopen): %v", err)
	}
	if err := w.WriteRow(sampleRow()); err != nil {
		t.Fatalf("WriteRow: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	lines = readLines(t, path)
	if len(lines) != 4 {
		t.Fatalf("lines after append = %d, want 4", len(lines))
	}
	for _, l := range lines[1:] {
		if l == lines[0] {
			t.Fatalf("header repeated in body")
		}
	}
}

func TestCSVWriter_CreatesParentDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "out.csv")
	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatalf("NewCSVWriter: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("output file missing: %v", err)
	}
}
