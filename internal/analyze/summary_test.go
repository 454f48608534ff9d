package analyze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/race-results-etl/internal/analyze"
	"github.com/couchcryptid/race-results-etl/internal/domain"
)

func TestSummaryAge(t *testing.T) {
	d := eightRunners(t)

	s, err := analyze.Summary(d, domain.FieldAge)
	require.NoError(t, err)

	// Ages: 20, 20, 30, 34, 40, 45, 52, 60.
	assert.Equal(t, 8, s.Count)
	assert.InDelta(t, 37.625, s.Mean, 1e-9)
	assert.InDelta(t, 14.4414, s.Std, 1e-3)
	assert.InDelta(t, 20, s.Min, 1e-9)
	assert.InDelta(t, 27.5, s.P25, 1e-9)
	assert.InDelta(t, 37, s.Median, 1e-9)
	assert.InDelta(t, 46.75, s.P75, 1e-9)
	assert.InDelta(t, 60, s.Max, 1e-9)
}

func TestSummaryDurationInSeconds(t *testing.T) {
	d := eightRunners(t)

	s, err := analyze.Summary(d, domain.FieldTime)
	require.NoError(t, err)

	assert.Equal(t, 8, s.Count)
	assert.InDelta(t, 600, s.Min, 1e-9)
	assert.InDelta(t, 1200, s.Max, 1e-9)
	assert.InDelta(t, 900, s.Median, 1e-9)
}

func TestSummaryRejectsNonNumericField(t *testing.T) {
	d := eightRunners(t)

	_, err := analyze.Summary(d, domain.FieldRunnerName)
	assert.Error(t, err)

	_, err = analyze.Summary(d, "no such field")
	assert.Error(t, err)
}
