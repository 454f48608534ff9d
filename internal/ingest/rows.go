package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/couchcryptid/race-results-etl/internal/domain"
)

// ErrSchema marks a CSV whose header does not carry the canonical field set.
var ErrSchema = errors.New("schema violation")

// ReadRows parses a scrape CSV (or a canonical CSV — normalization is
// idempotent) into canonical records. Every canonical field must be present
// in the header; a missing field is fatal. Per-field coercion follows the
// schema classes: the bib must parse as an integer, soft integer fields fall
// back to the empty missing sentinel, the wave is derived from the bib and
// never read from the row, and "-"/"--" collapse to empty in any field.
func ReadRows(r io.Reader) ([]domain.RawRecord, error) {
	reader := csv.NewReader(r)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read results csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: results csv has no header", ErrSchema)
	}

	colIdx := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		colIdx[strings.TrimSpace(h)] = i
	}
	for _, name := range domain.FieldNames() {
		if _, ok := colIdx[name]; !ok {
			return nil, fmt.Errorf("%w: results csv missing field %q", ErrSchema, name)
		}
	}

	records := make([]domain.RawRecord, 0, len(rows)-1)
	for n, row := range rows[1:] {
		record, err := normalizeRow(row, colIdx)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// normalizeRow coerces one CSV row into a canonical record.
func normalizeRow(row []string, colIdx map[string]int) (domain.RawRecord, error) {
	get := func(f domain.FieldName) string {
		i := colIdx[string(f)]
		if i >= len(row) {
			return ""
		}
		v := strings.TrimSpace(row[i])
		if v == "-" || v == "--" {
			return ""
		}
		return v
	}

	bib, err := strconv.Atoi(get(domain.FieldBib))
	if err != nil {
		return nil, fmt.Errorf("invalid bib %q: %w", get(domain.FieldBib), err)
	}

	record := domain.NewRawRecord()
	for _, f := range domain.Fields() {
		v := get(f.Name)
		switch f.Class {
		case domain.ClassKey:
			record.Set(f.Name, strconv.Itoa(bib))
		case domain.ClassWave:
			record.Set(f.Name, domain.WaveFromBib(bib).Name)
		case domain.ClassInteger:
			if _, err := strconv.Atoi(v); err != nil {
				v = "" // soft missing, resolved by median imputation at load
			}
			record.Set(f.Name, v)
		case domain.ClassDuration:
			record.Set(f.Name, domain.NormalizeClock(v))
		case domain.ClassUppercase:
			record.Set(f.Name, strings.ToUpper(v))
		case domain.ClassCapitalized:
			record.Set(f.Name, domain.Capitalize(v))
		default:
			record.Set(f.Name, v)
		}
	}
	return record, nil
}
