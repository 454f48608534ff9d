package pipeline

import (
	"context"
	"io"

	"github.com/couchcryptid/race-results-etl/internal/domain"
	"github.com/couchcryptid/race-results-etl/internal/ingest"
)

// CopyPasteSource extracts records from a manually captured token stream.
type CopyPasteSource struct {
	r       io.Reader
	dnfBibs []int
}

// NewCopyPasteSource wraps a raw capture. Bibs listed in dnfBibs are tagged
// DNF even when a full-course line was parsed for them.
func NewCopyPasteSource(r io.Reader, dnfBibs []int) *CopyPasteSource {
	return &CopyPasteSource{r: r, dnfBibs: dnfBibs}
}

// Extract parses the capture into canonical records.
func (s *CopyPasteSource) Extract(_ context.Context) ([]domain.RawRecord, error) {
	return ingest.ReadCopyPaste(s.r, s.dnfBibs)
}

// RowSource extracts records from a scraped or previously normalized CSV.
type RowSource struct {
	r io.Reader
}

// NewRowSource wraps a CSV input carrying the canonical header.
func NewRowSource(r io.Reader) *RowSource {
	return &RowSource{r: r}
}

// Extract reads and re-normalizes the CSV rows. Normalization is idempotent,
// so feeding an already-canonical file back through is safe.
func (s *RowSource) Extract(_ context.Context) ([]domain.RawRecord, error) {
	return ingest.ReadRows(s.r)
}
