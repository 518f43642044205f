package sim

import (
	"fmt"
	"io"
	"text/tabwriter"
)

const (
	colorReset  = "\x1b[0m"
	colorGreen  = "\x1b[32m"
	colorYellow = "\x1b[33m"
	colorCyan   = "\x1b[36m"
	colorGray   = "\x1b[90m"
)

// WriteSummary prints a human-readable end-of-run summary. It sits outside
// the core result contract; the sweep engine consumes Result directly.
func WriteSummary(w io.Writer, res Result) {
	fmt.Fprintf(w, "\n%s=== Simulation Summary ===%s\n", colorCyan, colorReset)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total votes:\t%d\n", res.Votes)
	fmt.Fprintf(tw, "Successful votes:\t%s%d%s\n", colorGreen, res.Accepted, colorReset)
	fmt.Fprintf(tw, "Tampered votes detected:\t%s%d%s\n", colorYellow, res.TamperedDetected, colorReset)
	fmt.Fprintf(tw, "Average latency:\t%.4fs\n", res.MeanLatency.Seconds())
	fmt.Fprintf(tw, "Throughput:\t%.2f votes/sec\n", res.Throughput)
	fmt.Fprintf(tw, "Success rate:\t%.2f%%\n", res.SuccessRatePct)
	fmt.Fprintf(tw, "Tamper rate:\t%.2f%%\n", res.TamperRatePct)
	fmt.Fprintf(tw, "%sSimulated time:\t%s%s\n", colorGray, res.Elapsed, colorReset)
	tw.Flush()
	fmt.Fprintln(w)
}
