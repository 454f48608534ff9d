// Package analyze provides canned statistical reports over a loaded race
// dataset: five-number summaries, grouped counts, binning, z-score outlier
// detection, and fastest-per-category lookups.
//
// Every function is pure and stateless: results are re-derived from the
// immutable dataset snapshot on each call, so concurrent use against the
// same dataset is safe. The functions assume the loader's invariants hold
// and do not re-validate records; malformed data must be rejected earlier.
package analyze

import (
	"fmt"
	"math"
	"time"

	"github.com/couchcryptid/race-results-etl/internal/dataset"
	"github.com/couchcryptid/race-results-etl/internal/domain"
)

// quantile returns the p-quantile of an ascending-sorted sample using linear
// interpolation at rank h = (n-1)p. The median of an even-sized sample is
// therefore the average of the two middle values.
func quantile(p float64, sorted []float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	h := p * float64(len(sorted)-1)
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}

// Count is one (key, count) pair of a value-counted series.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// numericValue extracts the numeric form of a field from one runner:
// integers as-is, durations in seconds. ok is false when the value is
// missing for this record (absent 20th floor split, DNF with no time).
func numericValue(r *dataset.Runner, field domain.FieldName) (v float64, ok bool, err error) {
	switch field {
	case domain.FieldAge:
		return float64(r.Age), true, nil
	case domain.FieldOverallPosition:
		return float64(r.OverallPosition), true, nil
	case domain.FieldGenderPosition:
		return float64(r.GenderPosition), true, nil
	case domain.FieldDivisionPosition:
		return float64(r.DivisionPosition), true, nil
	case domain.FieldTwentiethPosition:
		return float64(r.TwentiethPosition), true, nil
	case domain.FieldTwentiethGenderPosition:
		return float64(r.TwentiethGenderPosition), true, nil
	case domain.FieldTwentiethDivisionPosition:
		return float64(r.TwentiethDivisionPosition), true, nil
	case domain.FieldSixtyFifthPosition:
		return float64(r.SixtyFifthPosition), true, nil
	case domain.FieldSixtyFifthGenderPosition:
		return float64(r.SixtyFifthGenderPosition), true, nil
	case domain.FieldSixtyFifthDivisionPosition:
		return float64(r.SixtyFifthDivisionPosition), true, nil
	case domain.FieldPace:
		return r.Pace.Seconds(), r.Pace > 0, nil
	case domain.FieldTime:
		return r.Time.Seconds(), r.Time > 0, nil
	case domain.FieldTwentiethPace:
		return optionalSeconds(r.TwentiethPace)
	case domain.FieldTwentiethTime:
		return optionalSeconds(r.TwentiethTime)
	case domain.FieldSixtyFifthPace:
		return optionalSeconds(r.SixtyFifthPace)
	case domain.FieldSixtyFifthTime:
		return optionalSeconds(r.SixtyFifthTime)
	default:
		return 0, false, fmt.Errorf("field %q is not numeric", field)
	}
}

func optionalSeconds(d *time.Duration) (float64, bool, error) {
	if d == nil {
		return 0, false, nil
	}
	return d.Seconds(), true, nil
}

// numericColumn collects the present numeric values of a field across the
// whole dataset, paired with the owning bibs.
func numericColumn(d *dataset.Dataset, field domain.FieldName) (bibs []int, values []float64, err error) {
	for _, r := range d.Runners() {
		v, ok, err := numericValue(&r, field)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			continue
		}
		bibs = append(bibs, r.Bib)
		values = append(values, v)
	}
	return bibs, values, nil
}
