package analyze_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/race-results-etl/internal/analyze"
)

func TestCountByGender(t *testing.T) {
	d := eightRunners(t)

	counts, labels := analyze.CountByGender(d)
	assert.Equal(t, [2]string{"Gender", "Count"}, labels)
	assert.Equal(t, []analyze.Count{{Key: "F", Count: 4}, {Key: "M", Count: 4}}, counts)
}

func TestCountByWave(t *testing.T) {
	d := eightRunners(t)

	counts, _ := analyze.CountByWave(d)
	got := map[string]int{}
	for _, c := range counts {
		got[c.Key] = c.Count
	}
	assert.Equal(t, map[string]int{
		"ELITEMEN":   2,
		"ELITEWOMEN": 2,
		"PURPLE":     2,
		"GREEN":      2,
	}, got)
}

func TestCountByAge(t *testing.T) {
	d := eightRunners(t)

	counts, labels := analyze.CountByAge(d)
	assert.Equal(t, [2]string{"Age", "Count"}, labels)
	require.NotEmpty(t, counts)

	// Keys come back in ascending numeric order.
	assert.Equal(t, analyze.Count{Key: "20", Count: 2}, counts[0])
	assert.Equal(t, analyze.Count{Key: "60", Count: 1}, counts[len(counts)-1])
}

func TestSortedCountsStable(t *testing.T) {
	in := []analyze.Count{{Key: "a", Count: 1}, {Key: "b", Count: 3}, {Key: "c", Count: 1}}
	got := analyze.SortedCounts(in)
	assert.Equal(t, []analyze.Count{{Key: "b", Count: 3}, {Key: "a", Count: 1}, {Key: "c", Count: 1}}, got)
	// Input untouched.
	assert.Equal(t, "a", in[0].Key)
}

func TestCountryCounts(t *testing.T) {
	d := eightRunners(t)

	// USA=5, ITA=2, GBR=1.
	full, aboveMin, belowMax := analyze.CountryCounts(d, 2, 2)
	assert.Equal(t, []analyze.Count{{Key: "USA", Count: 5}, {Key: "ITA", Count: 2}, {Key: "GBR", Count: 1}}, full)
	assert.Equal(t, []analyze.Count{{Key: "USA", Count: 5}}, aboveMin, "strictly greater than min")
	assert.Equal(t, []analyze.Count{{Key: "GBR", Count: 1}}, belowMax, "strictly less than max")
}

func TestCountryCountsBoundary(t *testing.T) {
	d := eightRunners(t)

	// A country sitting exactly on both thresholds is excluded from both
	// filtered views; the filters are independent strict predicates.
	_, aboveMin, belowMax := analyze.CountryCounts(d, 5, 5)
	assert.Empty(t, aboveMin)
	for _, c := range belowMax {
		assert.NotEqual(t, "USA", c.Key)
	}
	assert.Len(t, belowMax, 2)
}

func TestBetterThanMedianWaves(t *testing.T) {
	d := eightRunners(t)

	median, waves, err := analyze.BetterThanMedianWaves(d)
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, median)
	// Finishers at or under 15:00: both elite men, both elite women.
	assert.Equal(t, []analyze.Count{
		{Key: "ELITEMEN", Count: 2},
		{Key: "ELITEWOMEN", Count: 2},
	}, waves)
}

func TestBetterThanMedianWavesEvenSample(t *testing.T) {
	d := buildDataset(t,
		runnerRow(5, "M", "USA", 20, "00:10:00"),
		runnerRow(26, "F", "ITA", 30, "00:20:00"),
	)

	median, waves, err := analyze.BetterThanMedianWaves(d)
	require.NoError(t, err)

	// Two finishers: the median is the midpoint of their times, so only the
	// faster one beats it.
	assert.Equal(t, 15*time.Minute, median)
	assert.Equal(t, []analyze.Count{{Key: "ELITEMEN", Count: 1}}, waves)
}
