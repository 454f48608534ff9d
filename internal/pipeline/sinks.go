package pipeline

import (
	"context"
	"io"

	"github.com/couchcryptid/race-results-etl/internal/domain"
	"github.com/couchcryptid/race-results-etl/internal/ingest"
)

// CSVSink writes canonical records as a headered CSV.
// It implements Loader.
type CSVSink struct {
	w io.Writer
}

// NewCSVSink wraps an output stream.
func NewCSVSink(w io.Writer) *CSVSink {
	return &CSVSink{w: w}
}

// Load writes the canonical header followed by one row per record.
func (s *CSVSink) Load(_ context.Context, records []domain.RawRecord) error {
	return ingest.WriteCanonical(s.w, records)
}
