package dataset

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/couchcryptid/race-results-etl/internal/domain"
)

// Bundled sample data: a canonical results CSV and the ISO 3166 country
// reference, used as defaults when no path override is configured.
var (
	//go:embed data/sample_results.csv
	sampleResultsCSV []byte

	//go:embed data/country_codes.csv
	countryCodesCSV []byte
)

func sampleResultsReader() io.Reader {
	return bytes.NewReader(sampleResultsCSV)
}

// SampleResults returns a copy of the bundled canonical sample CSV.
func SampleResults() []byte {
	return bytes.Clone(sampleResultsCSV)
}

// LoadCountries reads the country reference table from path, or the bundled
// copy when path is empty.
func LoadCountries(path string) (*domain.CountryTable, error) {
	if path == "" {
		return domain.LoadCountries(bytes.NewReader(countryCodesCSV))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open country csv: %w", err)
	}
	defer f.Close()
	return domain.LoadCountries(f)
}
