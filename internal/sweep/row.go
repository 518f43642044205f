package sweep

import (
	"strconv"
	"strings"
)

// Row is the aggregated summary for one sweep cell. The json/CSV field names
// form the fixed tabular schema consumed by downstream reporting tools.
type Row struct {
	Voters            int     `json:"voters"`
	FailureRate       float64 `json:"failure_rate"`
	BaseLatencyMS     int     `json:"base_latency_ms"`
	DoS               bool    `json:"dos"`
	ReplicationFactor int     `json:"replication_factor"`
	Replicates        int     `json:"replicates"`
	LatencyMSMean     float64 `json:"latency_ms_mean"`
	LatencyMSCI95     float64 `json:"latency_ms_ci95"`
	ThroughputMean    float64 `json:"throughput_mean"`
	ThroughputCI95    float64 `json:"throughput_ci95"`
	SuccessPctMean    float64 `json:"success_pct_mean"`
	SuccessPctCI95    float64 `json:"success_pct_ci95"`
	TamperPctMean     float64 `json:"tamper_pct_mean"`
	TamperPctCI95     float64 `json:"tamper_pct_ci95"`

	// Err carries the first replicate failure for a partial/failed cell. It
	// is reported through logs and the database sinks, not the CSV schema.
	Err string `json:"error,omitempty"`
}

// Failed reports whether the cell completed fewer replicates than requested.
func (r Row) Failed() bool {
	return r.Err != ""
}

func (r Row) dosFlag() string {
	if r.DoS {
		return "1"
	}
	return "0"
}

// record renders the row in the fixed CSV column order. Metric values carry
// three decimals; dos is 0|1.
func (r Row) record() []string {
	return []string{
		strconv.Itoa(r.Voters),
		fmtRate(r.FailureRate),
		strconv.Itoa(r.BaseLatencyMS),
		r.dosFlag(),
		strconv.Itoa(r.ReplicationFactor),
		strconv.Itoa(r.Replicates),
		fmt3(r.LatencyMSMean),
		fmt3(r.LatencyMSCI95),
		fmt3(r.ThroughputMean),
		fmt3(r.ThroughputCI95),
		fmt3(r.SuccessPctMean),
		fmt3(r.SuccessPctCI95),
		fmt3(r.TamperPctMean),
		fmt3(r.TamperPctCI95),
	}
}

func fmt3(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// fmtRate renders a probability in minimal decimal form with at least one
// decimal place, so 0 prints as "0.0" and 0.1 as "0.1".
func fmtRate(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
