package analyze

import (
	"time"

	"github.com/couchcryptid/race-results-etl/internal/dataset"
)

// FastestEntry is the winner of one category value.
type FastestEntry struct {
	Bib  int           `json:"bib"`
	Name string        `json:"name"`
	Time time.Duration `json:"time"`
	// Age is populated only for the age-bracket axis.
	Age int `json:"age,omitempty"`
}

// fastestBy finds the minimum-elapsed-time record per category value among
// records that have an elapsed time. Ties on exactly equal times are broken
// by ascending bib, making the result deterministic regardless of dataset
// order. The key set equals exactly the distinct category values present.
func fastestBy(d *dataset.Dataset, category func(*dataset.Runner) (string, bool)) map[string]FastestEntry {
	out := make(map[string]FastestEntry)
	for _, r := range d.Runners() {
		if r.Time <= 0 {
			continue
		}
		key, ok := category(&r)
		if !ok {
			continue
		}
		best, seen := out[key]
		if !seen || r.Time < best.Time || (r.Time == best.Time && r.Bib < best.Bib) {
			out[key] = FastestEntry{Bib: r.Bib, Name: r.Name, Time: r.Time, Age: r.Age}
		}
	}
	return out
}

// FastestByGender returns the fastest record per gender code.
func FastestByGender(d *dataset.Dataset) map[string]FastestEntry {
	m := fastestBy(d, func(r *dataset.Runner) (string, bool) { return r.Gender, true })
	stripAge(m)
	return m
}

// FastestByAgeBracket returns the fastest record per ten-year age bucket.
func FastestByAgeBracket(d *dataset.Dataset) map[string]FastestEntry {
	return fastestBy(d, func(r *dataset.Runner) (string, bool) { return ageBracket(r.Age) })
}

// FastestByCountry returns the fastest record per country code.
func FastestByCountry(d *dataset.Dataset) map[string]FastestEntry {
	m := fastestBy(d, func(r *dataset.Runner) (string, bool) { return r.Country, true })
	stripAge(m)
	return m
}

// stripAge clears the age detail on axes that do not report it.
func stripAge(m map[string]FastestEntry) {
	for k, e := range m {
		e.Age = 0
		m[k] = e
	}
}
