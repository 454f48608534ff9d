package analyze

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/couchcryptid/race-results-etl/internal/dataset"
	"github.com/couchcryptid/race-results-etl/internal/domain"
)

// ErrZeroVariance marks outlier detection over a constant-valued field,
// where z-scores are undefined.
var ErrZeroVariance = errors.New("field has zero variance")

// DefaultOutlierThreshold is the conventional |z| cutoff.
const DefaultOutlierThreshold = 3.0

// Outliers flags records whose field value deviates from the mean by
// strictly more than threshold population standard deviations. A value
// sitting exactly at the threshold is not flagged. The result maps bib to
// the record's numeric value (durations in seconds).
func Outliers(d *dataset.Dataset, field domain.FieldName, threshold float64) (map[int]float64, error) {
	bibs, values, err := numericColumn(d, field)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, ErrNoValues
	}

	mean := stat.Mean(values, nil)
	std := stat.PopStdDev(values, nil)
	if std == 0 {
		return nil, fmt.Errorf("%w: %q", ErrZeroVariance, field)
	}

	flagged := make(map[int]float64)
	for i, v := range values {
		if math.Abs((v-mean)/std) > threshold {
			flagged[bibs[i]] = v
		}
	}
	return flagged, nil
}
