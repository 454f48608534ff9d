package domain

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// Country lookup errors.
var (
	ErrInvalidCountryCode = errors.New("country code must be exactly 3 letters")
	ErrCountryNotFound    = errors.New("country code not found")
)

// Country is one row of the ISO 3166 reference table.
type Country struct {
	Name                   string
	Alpha2                 string
	Alpha3                 string
	CountryCode            string
	ISO31662               string
	Region                 string
	SubRegion              string
	IntermediateRegion     string
	RegionCode             string
	SubRegionCode          string
	IntermediateRegionCode string
}

// CountryColumns is the required header of the country-reference CSV.
var CountryColumns = []string{
	"name", "alpha-2", "alpha-3", "country-code", "iso_3166-2",
	"region", "sub-region", "intermediate-region",
	"region-code", "sub-region-code", "intermediate-region-code",
}

// CountryTable is the loaded reference table, keyed by alpha-3 code. It has
// an independent lifecycle from race datasets and is loaded on demand.
type CountryTable struct {
	countries []Country
	byAlpha3  map[string]Country
}

// LoadCountries reads the ISO 3166 reference CSV. The full 11-column header
// is required; a missing column is a fatal schema violation.
func LoadCountries(r io.Reader) (*CountryTable, error) {
	reader := csv.NewReader(r)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read country csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("country csv has no header")
	}

	idx := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		idx[h] = i
	}
	for _, col := range CountryColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("country csv missing column %q", col)
		}
	}

	get := func(row []string, col string) string {
		i := idx[col]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	t := &CountryTable{byAlpha3: make(map[string]Country, len(rows)-1)}
	for _, row := range rows[1:] {
		c := Country{
			Name:                   get(row, "name"),
			Alpha2:                 get(row, "alpha-2"),
			Alpha3:                 get(row, "alpha-3"),
			CountryCode:            get(row, "country-code"),
			ISO31662:               get(row, "iso_3166-2"),
			Region:                 get(row, "region"),
			SubRegion:              get(row, "sub-region"),
			IntermediateRegion:     get(row, "intermediate-region"),
			RegionCode:             get(row, "region-code"),
			SubRegionCode:          get(row, "sub-region-code"),
			IntermediateRegionCode: get(row, "intermediate-region-code"),
		}
		t.countries = append(t.countries, c)
		t.byAlpha3[c.Alpha3] = c
	}
	return t, nil
}

// Len returns the number of countries in the table.
func (t *CountryTable) Len() int { return len(t.countries) }

// All returns every country in file order.
func (t *CountryTable) All() []Country {
	out := make([]Country, len(t.countries))
	copy(out, t.countries)
	return out
}

// LookupAlpha3 finds a country by exact 3-letter code match. A code that is
// not exactly 3 characters is a caller error, never silently coerced.
func (t *CountryTable) LookupAlpha3(code string) (Country, error) {
	if len(code) != 3 {
		return Country{}, fmt.Errorf("%w: %q", ErrInvalidCountryCode, code)
	}
	c, ok := t.byAlpha3[code]
	if !ok {
		return Country{}, fmt.Errorf("%w: %q", ErrCountryNotFound, code)
	}
	return c, nil
}
