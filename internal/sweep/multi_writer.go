package sweep

// MultiWriter fans summary rows out to multiple writers.
type MultiWriter struct {
	writers []RowWriter
}

// NewMultiWriter creates a new MultiWriter.
func NewMultiWriter(ws ...RowWriter) *MultiWriter {
	return &MultiWriter{writers: ws}
}

// WriteRow sends a summary row to all writers.
func (mw *MultiWriter) WriteRow(r Row) error {
	for _, w := range mw.writers {
		if err := w.WriteRow(r); err != nil {
			return err
		}
	}
	return nil
}

// WriteRows sends multiple rows to all writers, using batch mode where
// supported.
func (mw *MultiWriter) WriteRows(rows []Row) error {
	for _, w := range mw.writers {
		if bw, ok := w.(batchRowWriter); ok {
			if err := bw.WriteRows(rows); err != nil {
				return err
			}
			continue
		}
		for _, r := range rows {
			if err := w.WriteRow(r); err != nil {
				return err
			}
		}
	}
	return nil
}
