// ColorStdoutWriter prints human-friendly, colorized summary rows to STDOUT.
package sweep

import (
	"fmt"
	"io"
	"os"
	"sync"
	"text/tabwriter"
)

const (
	colorReset   = "\x1b[0m"
	colorRed     = "\x1b[31m"
	colorGreen   = "\x1b[32m"
	colorYellow  = "\x1b[33m"
	colorBlue    = "\x1b[34m"
	colorMagenta = "\x1b[35m"
	colorCyan    = "\x1b[36m"
	colorGray    = "\x1b[90m"
)

// ColorStdoutWriter prints summary rows using ANSI colors and aligned
// columns.
type ColorStdoutWriter struct {
	out  io.Writer
	tw   *tabwriter.Writer
	once sync.Once
}

// NewColorStdoutWriter creates a ColorStdoutWriter writing to os.Stdout.
func NewColorStdoutWriter() *ColorStdoutWriter {
	w := &ColorStdoutWriter{out: os.Stdout}
	w.tw = tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)
	return w
}

func (w *ColorStdoutWriter) printHeader() {
	fmt.Fprintf(w.tw, "%svoters\tfail\tlat_ms\tdos\trepl\truns\tlatency_ms\tthroughput\tsuccess%%\ttamper%%%s\n",
		colorCyan, colorReset)
}

// WriteRow outputs a single summary row in colorized format.
func (w *ColorStdoutWriter) WriteRow(r Row) error {
	w.once.Do(w.printHeader)

	statusColor := colorGreen
	if r.Failed() {
		statusColor = colorRed
	} else if r.SuccessPctMean < 50 {
		statusColor = colorYellow
	}

	fmt.Fprintf(w.tw, "%d\t%.2f\t%d\t%s\t%d\t%d\t", r.Voters, r.FailureRate, r.BaseLatencyMS, r.dosFlag(), r.ReplicationFactor, r.Replicates)
	fmt.Fprintf(w.tw, "%s%.3f±%.3f%s\t", colorBlue, r.LatencyMSMean, r.LatencyMSCI95, colorReset)
	fmt.Fprintf(w.tw, "%s%.3f±%.3f%s\t", colorMagenta, r.ThroughputMean, r.ThroughputCI95, colorReset)
	fmt.Fprintf(w.tw, "%s%.3f±%.3f%s\t", statusColor, r.SuccessPctMean, r.SuccessPctCI95, colorReset)
	fmt.Fprintf(w.tw, "%s%.3f±%.3f%s", colorYellow, r.TamperPctMean, r.TamperPctCI95, colorReset)
	if r.Failed() {
		fmt.Fprintf(w.tw, "\t%spartial: %s%s", colorRed, r.Err, colorReset)
	}
	fmt.Fprintln(w.tw)
	return nil
}

// WriteRows outputs multiple summary rows and flushes the column layout.
func (w *ColorStdoutWriter) WriteRows(rows []Row) error {
	for _, r := range rows {
		_ = w.WriteRow(r)
	}
	return w.tw.Flush()
}

// Close flushes any pending aligned output.
func (w *ColorStdoutWriter) Close() error {
	return w.tw.Flush()
}
