package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/couchcryptid/race-results-etl/internal/domain"
)

// WriteCanonical emits records as a canonical CSV: the full schema header
// followed by one row per record in input order.
func WriteCanonical(w io.Writer, records []domain.RawRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(domain.FieldNames()); err != nil {
		return fmt.Errorf("write canonical header: %w", err)
	}
	for i, record := range records {
		if len(record) != domain.FieldCount() {
			return fmt.Errorf("record %d has %d fields, want %d", i, len(record), domain.FieldCount())
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
