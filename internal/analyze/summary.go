package analyze

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/couchcryptid/race-results-etl/internal/dataset"
	"github.com/couchcryptid/race-results-etl/internal/domain"
)

// ErrNoValues marks a summary request over a field with no present values.
var ErrNoValues = errors.New("no values present for field")

// FiveNumber is the distributional summary of one numeric field. Duration
// fields are summarized in seconds.
type FiveNumber struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	P25    float64 `json:"p25"`
	Median float64 `json:"median"`
	P75    float64 `json:"p75"`
	Max    float64 `json:"max"`
}

// Summary computes the five-number summary (plus count, mean, and sample
// standard deviation) of a numeric field. Requesting a non-numeric field is
// a caller error and is rejected.
func Summary(d *dataset.Dataset, field domain.FieldName) (FiveNumber, error) {
	_, values, err := numericColumn(d, field)
	if err != nil {
		return FiveNumber{}, err
	}
	if len(values) == 0 {
		return FiveNumber{}, ErrNoValues
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return FiveNumber{
		Count:  len(values),
		Mean:   stat.Mean(values, nil),
		Std:    stat.StdDev(values, nil),
		Min:    sorted[0],
		P25:    quantile(0.25, sorted),
		Median: quantile(0.5, sorted),
		P75:    quantile(0.75, sorted),
		Max:    sorted[len(sorted)-1],
	}, nil
}
