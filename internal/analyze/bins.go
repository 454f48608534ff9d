package analyze

import (
	"fmt"

	"github.com/couchcryptid/race-results-etl/internal/dataset"
)

// AgeBins partitions ages into ten-year-wide half-open buckets (10,20],
// (20,30], … (90,100], with human-readable range labels. Ages outside the
// covered range are dropped, matching the usual cut semantics. All buckets
// appear in the result, including empty ones.
func AgeBins(d *dataset.Dataset) ([]Count, [2]string) {
	counts := make([]Count, 9)
	for i := range counts {
		lo := (i + 1) * 10
		counts[i].Key = fmt.Sprintf("[%d - %d]", lo, lo+10)
	}
	for _, r := range d.Runners() {
		if i, ok := bucket(float64(r.Age), 10, 10, len(counts)); ok {
			counts[i].Count++
		}
	}
	return counts, [2]string{"Age", "Count"}
}

// TimeBins partitions elapsed times into ten-minute-wide buckets from 10 to
// 120 minutes, with the same labeling convention as AgeBins.
func TimeBins(d *dataset.Dataset) ([]Count, [2]string) {
	counts := make([]Count, 11)
	for i := range counts {
		lo := (i + 1) * 10
		counts[i].Key = fmt.Sprintf("[%d - %d]", lo, lo+10)
	}
	for _, r := range d.Runners() {
		if r.Time <= 0 {
			continue
		}
		if i, ok := bucket(r.Time.Minutes(), 10, 10, len(counts)); ok {
			counts[i].Count++
		}
	}
	return counts, [2]string{"Time", "Count"}
}

// bucket places v into half-open intervals (lo, lo+width], (lo+width, …],
// returning the bucket index or ok=false when v falls outside the range.
func bucket(v, lo, width float64, n int) (int, bool) {
	if v <= lo || v > lo+width*float64(n) {
		return 0, false
	}
	i := int((v - lo) / width)
	// Values on a right edge belong to the bucket they close.
	if v == lo+width*float64(i) {
		i--
	}
	if i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

// ageBracket returns the AgeBins label covering an age, or ok=false when
// the age is outside the binned range.
func ageBracket(age int) (string, bool) {
	i, ok := bucket(float64(age), 10, 10, 9)
	if !ok {
		return "", false
	}
	lo := (i + 1) * 10
	return fmt.Sprintf("[%d - %d]", lo, lo+10), true
}
