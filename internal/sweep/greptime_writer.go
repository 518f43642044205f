package sweep

import (
	"context"
	"net"
	"strconv"
	"time"

	gpb "github.com/GreptimeTeam/greptime-proto/go/greptime/v1"
	greptime "github.com/GreptimeTeam/greptimedb-ingester-go"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table/types"
	"github.com/google/uuid"
)

// greptimeClient abstracts the ingester client for testing.
type greptimeClient interface {
	Write(ctx context.Context, tables ...*table.Table) (*gpb.GreptimeResponse, error)
}

// GreptimeWriter writes summary rows to GreptimeDB via the ingester client,
// one time-series record per cell.
type GreptimeWriter struct {
	client  greptimeClient
	table   string
	sweepID string
}

// NewGreptimeWriter connects to a GreptimeDB endpoint ("host" or
// "host:port") and writes rows into tableName.
func NewGreptimeWriter(endpoint, database, tableName string) (*GreptimeWriter, error) {
	host := endpoint
	port := 0
	if h, p, err := net.SplitHostPort(endpoint); err == nil {
		host = h
		port, _ = strconv.Atoi(p)
	}
	cfg := greptime.NewConfig(host).WithDatabase(database)
	if port > 0 {
		cfg = cfg.WithPort(port)
	}
	client, err := greptime.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	if tableName == "" {
		tableName = "sweep_summary"
	}
	return &GreptimeWriter{client: client, table: tableName, sweepID: uuid.New().String()}, nil
}

func (w *GreptimeWriter) buildTable(rows []Row) (*table.Table, error) {
	tbl, err := table.New(w.table)
	if err != nil {
		return nil, err
	}
	if err := tbl.AddTagColumn("sweep_id", types.STRING); err != nil {
		return nil, err
	}
	if err := tbl.AddTagColumn("dos", types.STRING); err != nil {
		return nil, err
	}
	fields := []struct {
		name string
		typ  types.ColumnType
	}{
		{"voters", types.INT64},
		{"failure_rate", types.FLOAT64},
		{"base_latency_ms", types.INT64},
		{"replication_factor", types.INT64},
		{"replicates", types.INT64},
		{"latency_ms_mean", types.FLOAT64},
		{"latency_ms_ci95", types.FLOAT64},
		{"throughput_mean", types.FLOAT64},
		{"throughput_ci95", types.FLOAT64},
		{"success_pct_mean", types.FLOAT64},
		{"success_pct_ci95", types.FLOAT64},
		{"tamper_pct_mean", types.FLOAT64},
		{"tamper_pct_ci95", types.FLOAT64},
	}
	for _, f := range fields {
		if err := tbl.AddFieldColumn(f.name, f.typ); err != nil {
			return nil, err
		}
	}
	if err := tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	for _, r := range rows {
		if err := tbl.AddRow(
			w.sweepID, r.dosFlag(),
			int64(r.Voters), r.FailureRate, int64(r.BaseLatencyMS),
			int64(r.ReplicationFactor), int64(r.Replicates),
			r.LatencyMSMean, r.LatencyMSCI95,
			r.ThroughputMean, r.ThroughputCI95,
			r.SuccessPctMean, r.SuccessPctCI95,
			r.TamperPctMean, r.TamperPctCI95,
			now,
		); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}

// WriteRow inserts a single summary row.
func (w *GreptimeWriter) WriteRow(r Row) error {
	return w.WriteRows([]Row{r})
}

// WriteRows inserts multiple summary rows in one write.
func (w *GreptimeWriter) WriteRows(rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	tbl, err := w.buildTable(rows)
	if err != nil {
		return err
	}
	_, err = w.client.Write(context.Background(), tbl)
	return err
}
