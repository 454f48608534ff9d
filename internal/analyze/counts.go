package analyze

import (
	"sort"
	"strconv"
	"time"

	"github.com/couchcryptid/race-results-etl/internal/dataset"
)

// SortedCounts orders a counted series by descending count. The sort is
// stable: keys with equal counts keep their original relative order.
func SortedCounts(counts []Count) []Count {
	out := make([]Count, len(counts))
	copy(out, counts)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// countBy tallies records per distinct key, returning pairs in first-seen
// dataset order.
func countBy(d *dataset.Dataset, key func(*dataset.Runner) string) []Count {
	idx := make(map[string]int)
	var out []Count
	for _, r := range d.Runners() {
		k := key(&r)
		if i, ok := idx[k]; ok {
			out[i].Count++
			continue
		}
		idx[k] = len(out)
		out = append(out, Count{Key: k, Count: 1})
	}
	return out
}

// sortByKey orders count pairs by ascending key, the grouped-count display
// convention.
func sortByKey(counts []Count) []Count {
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Key < counts[j].Key })
	return counts
}

// CountByAge counts records per distinct age, with display labels.
func CountByAge(d *dataset.Dataset) ([]Count, [2]string) {
	counts := countBy(d, func(r *dataset.Runner) string { return strconv.Itoa(r.Age) })
	sort.SliceStable(counts, func(i, j int) bool {
		a, _ := strconv.Atoi(counts[i].Key)
		b, _ := strconv.Atoi(counts[j].Key)
		return a < b
	})
	return counts, [2]string{"Age", "Count"}
}

// CountByGender counts records per gender code.
func CountByGender(d *dataset.Dataset) ([]Count, [2]string) {
	return sortByKey(countBy(d, func(r *dataset.Runner) string { return r.Gender })), [2]string{"Gender", "Count"}
}

// CountByWave counts records per wave.
func CountByWave(d *dataset.Dataset) ([]Count, [2]string) {
	return sortByKey(countBy(d, func(r *dataset.Runner) string { return r.Wave })), [2]string{"Wave", "Count"}
}

// CountryCounts returns the full country participation distribution in
// descending count order, plus two filtered views.
//
// The two filters are independent strict predicates, not a range: aboveMin
// keeps countries with count strictly greater than minParticipants, and
// belowMax keeps countries with count strictly less than maxParticipants.
// A country whose count equals either threshold is excluded from that view.
// The asymmetry is deliberate and mirrors how the reports are consumed
// (popular countries vs. long-tail countries).
func CountryCounts(d *dataset.Dataset, minParticipants, maxParticipants int) (full, aboveMin, belowMax []Count) {
	full = SortedCounts(countBy(d, func(r *dataset.Runner) string { return r.Country }))
	for _, c := range full {
		if c.Count > minParticipants {
			aboveMin = append(aboveMin, c)
		}
		if c.Count < maxParticipants {
			belowMax = append(belowMax, c)
		}
	}
	return full, aboveMin, belowMax
}

// BetterThanMedianWaves computes the median elapsed time and counts, per
// wave, how many records finished at or under it. Wave counts come back in
// descending order.
func BetterThanMedianWaves(d *dataset.Dataset) (time.Duration, []Count, error) {
	var secs []float64
	for _, r := range d.Runners() {
		if r.Time > 0 {
			secs = append(secs, r.Time.Seconds())
		}
	}
	if len(secs) == 0 {
		return 0, nil, ErrNoValues
	}
	sort.Float64s(secs)
	median := time.Duration(quantile(0.5, secs) * float64(time.Second))

	tally := make(map[string]int)
	var order []string
	for _, r := range d.Runners() {
		if r.Time <= 0 || r.Time > median {
			continue
		}
		if _, ok := tally[r.Wave]; !ok {
			order = append(order, r.Wave)
		}
		tally[r.Wave]++
	}
	counts := make([]Count, 0, len(order))
	for _, w := range order {
		counts = append(counts, Count{Key: w, Count: tally[w]})
	}
	return median, SortedCounts(counts), nil
}
