package dataset

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/couchcryptid/race-results-etl/internal/domain"
	"github.com/couchcryptid/race-results-etl/internal/ingest"
)

// ErrDuplicateBib marks a canonical CSV carrying the same bib twice. The bib
// is the dataset's primary key; a collision is a scrape bug, not something
// to resolve silently, so loading rejects it.
var ErrDuplicateBib = errors.New("duplicate bib")

// Options configure a dataset load.
type Options struct {
	// Path locates the canonical CSV. Empty means the bundled sample.
	Path string
	// RetainDNF keeps did-not-finish records in the dataset. The default
	// (false) drops them before any median is computed, so imputation only
	// ever sees the finishing population.
	RetainDNF bool
}

// Load reads a canonical CSV into a Dataset.
func Load(opts Options) (*Dataset, error) {
	var r io.Reader
	if opts.Path == "" {
		r = sampleResultsReader()
	} else {
		f, err := os.Open(opts.Path)
		if err != nil {
			return nil, fmt.Errorf("open results csv: %w", err)
		}
		defer f.Close()
		r = f
	}
	return LoadReader(r, opts.RetainDNF)
}

// LoadReader is Load for an already-open canonical CSV stream.
func LoadReader(r io.Reader, retainDNF bool) (*Dataset, error) {
	records, err := ingest.ReadRows(r)
	if err != nil {
		return nil, err
	}

	// DNF records are dropped before any statistic is computed, so the
	// medians below describe only the retained population.
	if !retainDNF {
		kept := records[:0]
		for _, rec := range records {
			if rec.Get(domain.FieldLevel) != string(domain.LevelDNF) {
				kept = append(kept, rec)
			}
		}
		records = kept
	}

	// Each integer field's median is computed independently over its own
	// non-missing values, then fills that field's gaps.
	for _, f := range domain.IntegerFields() {
		imputeInteger(records, f)
	}

	// Only the 65th floor durations are median-imputed; the 20th floor
	// checkpoint stays as captured.
	imputeDuration(records, domain.FieldSixtyFifthPace)
	imputeDuration(records, domain.FieldSixtyFifthTime)

	runners := make([]Runner, 0, len(records))
	byBib := make(map[int]int, len(records))
	for i, rec := range records {
		runner, err := buildRunner(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		if prev, dup := byBib[runner.Bib]; dup {
			return nil, fmt.Errorf("%w: bib %d appears at records %d and %d", ErrDuplicateBib, runner.Bib, prev+1, i+1)
		}
		byBib[runner.Bib] = i
		runners = append(runners, runner)
	}

	return &Dataset{runners: runners, byBib: byBib}, nil
}

// imputeInteger fills a field's missing values with the truncated median of
// its present values. Leaves the column untouched when no value is present.
func imputeInteger(records []domain.RawRecord, f domain.FieldName) {
	var present []float64
	for _, rec := range records {
		if v := rec.Get(f); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				present = append(present, float64(n))
			}
		}
	}
	if len(present) == 0 {
		return
	}
	fill := strconv.Itoa(int(median(present)))
	for _, rec := range records {
		if rec.Get(f) == "" {
			rec.Set(f, fill)
		}
	}
}

// imputeDuration fills a duration field's missing values with the median of
// its parseable values, rendered back in HH:MM:SS form.
func imputeDuration(records []domain.RawRecord, f domain.FieldName) {
	var present []float64
	for _, rec := range records {
		if v := rec.Get(f); v != "" {
			if d, err := domain.ParseClock(v); err == nil {
				present = append(present, d.Seconds())
			}
		}
	}
	if len(present) == 0 {
		return
	}
	fill := domain.FormatClock(time.Duration(math.Round(median(present))) * time.Second)
	for _, rec := range records {
		if rec.Get(f) == "" {
			rec.Set(f, fill)
		}
	}
}

// median returns the midpoint median: the middle sample, or the average of
// the two middle samples when the count is even.
func median(xs []float64) float64 {
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// buildRunner converts a fully imputed canonical record into a typed Runner.
// The reference URL column is dropped here; it has no analytical value.
func buildRunner(rec domain.RawRecord) (Runner, error) {
	level, err := domain.ParseLevel(rec.Get(domain.FieldLevel))
	if err != nil {
		return Runner{}, err
	}
	bib, err := rec.Bib()
	if err != nil {
		return Runner{}, err
	}

	r := Runner{
		Level:   level,
		Name:    rec.Get(domain.FieldRunnerName),
		Gender:  rec.Get(domain.FieldGender),
		Bib:     bib,
		State:   rec.Get(domain.FieldState),
		Country: rec.Get(domain.FieldCountry),
		Wave:    rec.Get(domain.FieldWave),
		City:    rec.Get(domain.FieldCity),
	}

	ints := []struct {
		f   domain.FieldName
		dst *int
	}{
		{domain.FieldAge, &r.Age},
		{domain.FieldOverallPosition, &r.OverallPosition},
		{domain.FieldGenderPosition, &r.GenderPosition},
		{domain.FieldDivisionPosition, &r.DivisionPosition},
		{domain.FieldTwentiethPosition, &r.TwentiethPosition},
		{domain.FieldTwentiethGenderPosition, &r.TwentiethGenderPosition},
		{domain.FieldTwentiethDivisionPosition, &r.TwentiethDivisionPosition},
		{domain.FieldSixtyFifthPosition, &r.SixtyFifthPosition},
		{domain.FieldSixtyFifthGenderPosition, &r.SixtyFifthGenderPosition},
		{domain.FieldSixtyFifthDivisionPosition, &r.SixtyFifthDivisionPosition},
	}
	for _, col := range ints {
		v := rec.Get(col.f)
		if v == "" {
			continue // only possible when the whole column was missing
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Runner{}, fmt.Errorf("field %q: invalid integer %q", col.f, v)
		}
		*col.dst = n
	}

	if r.Pace, err = parseDuration(rec, domain.FieldPace); err != nil {
		return Runner{}, err
	}
	if r.Time, err = parseDuration(rec, domain.FieldTime); err != nil {
		return Runner{}, err
	}
	if r.TwentiethPace, err = parseOptionalDuration(rec, domain.FieldTwentiethPace); err != nil {
		return Runner{}, err
	}
	if r.TwentiethTime, err = parseOptionalDuration(rec, domain.FieldTwentiethTime); err != nil {
		return Runner{}, err
	}
	if r.SixtyFifthPace, err = parseOptionalDuration(rec, domain.FieldSixtyFifthPace); err != nil {
		return Runner{}, err
	}
	if r.SixtyFifthTime, err = parseOptionalDuration(rec, domain.FieldSixtyFifthTime); err != nil {
		return Runner{}, err
	}

	if r.Time > 0 {
		r.FinishTime = domain.BaseRaceStart.Add(r.Time)
	}
	return r, nil
}

// parseDuration parses a required duration field, tolerating absence only
// as a zero value (retained DNF records have no elapsed time).
func parseDuration(rec domain.RawRecord, f domain.FieldName) (time.Duration, error) {
	v := rec.Get(f)
	if v == "" {
		return 0, nil
	}
	d, err := domain.ParseClock(v)
	if err != nil {
		return 0, fmt.Errorf("field %q: %w", f, err)
	}
	return d, nil
}

func parseOptionalDuration(rec domain.RawRecord, f domain.FieldName) (*time.Duration, error) {
	v := rec.Get(f)
	if v == "" {
		return nil, nil
	}
	d, err := domain.ParseClock(v)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", f, err)
	}
	return &d, nil
}
