package domain

import (
	"fmt"
	"strconv"
)

// RawRecord is one normalized participant row in canonical column order.
// Values are the textual forms written to the canonical CSV; the empty
// string is the missing-value sentinel.
type RawRecord []string

// NewRawRecord allocates an empty row with one slot per canonical field.
func NewRawRecord() RawRecord {
	return make(RawRecord, len(fields))
}

// Get returns the value of a field, or the empty string for unknown fields.
func (r RawRecord) Get(f FieldName) string {
	i, ok := fieldIndex[f]
	if !ok || i >= len(r) {
		return ""
	}
	return r[i]
}

// Set stores a value under a field. Unknown fields are ignored.
func (r RawRecord) Set(f FieldName, v string) {
	if i, ok := fieldIndex[f]; ok && i < len(r) {
		r[i] = v
	}
}

// Bib returns the record's bib number. A missing or malformed bib is a
// hard error; the bib is the primary key.
func (r RawRecord) Bib() (int, error) {
	v := r.Get(FieldBib)
	bib, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("record has invalid bib %q: %w", v, err)
	}
	return bib, nil
}
