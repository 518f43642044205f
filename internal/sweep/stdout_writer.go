// Writer implementation printing summary rows to STDOUT.
package sweep

import (
	"encoding/json"
	"fmt"
)

// StdoutWriter prints summary rows to STDOUT as JSON lines.
type StdoutWriter struct{}

// WriteRow outputs a single summary row.
func (w *StdoutWriter) WriteRow(r Row) error {
	data, _ := json.Marshal(r)
	fmt.Println(string(data))
	return nil
}

// WriteRows outputs multiple summary rows.
func (w *StdoutWriter) WriteRows(rows []Row) error {
	for _, r := range rows {
		_ = w.WriteRow(r)
	}
	return nil
}
