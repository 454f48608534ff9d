package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/race-results-etl/internal/domain"
)

func TestWaveFromBib(t *testing.T) {
	tests := []struct {
		name string
		bib  int
		want string
	}{
		{name: "first elite man", bib: 1, want: "ELITEMEN"},
		{name: "last elite man", bib: 25, want: "ELITEMEN"},
		{name: "first elite woman", bib: 26, want: "ELITEWOMEN"},
		{name: "last elite woman", bib: 49, want: "ELITEWOMEN"},
		{name: "gap between elites and purple", bib: 75, want: "BLACK"},
		{name: "first purple", bib: 100, want: "PURPLE"},
		{name: "last purple", bib: 199, want: "PURPLE"},
		{name: "green", bib: 250, want: "GREEN"},
		{name: "orange", bib: 304, want: "ORANGE"},
		{name: "grey", bib: 419, want: "GREY"},
		{name: "gold", bib: 548, want: "GOLD"},
		{name: "black", bib: 650, want: "BLACK"},
		{name: "beyond last wave", bib: 9999, want: "BLACK"},
		{name: "zero bib", bib: 0, want: "BLACK"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.WaveFromBib(tc.bib).Name)
		})
	}
}

func TestWaveStartTimes(t *testing.T) {
	elite, ok := domain.WaveByName("ELITEMEN")
	require.True(t, ok)
	assert.Equal(t, domain.BaseRaceStart, elite.StartTime())

	women, ok := domain.WaveByName("ELITEWOMEN")
	require.True(t, ok)
	assert.Equal(t, domain.BaseRaceStart.Add(2*time.Minute), women.StartTime())

	black, ok := domain.WaveByName("BLACK")
	require.True(t, ok)
	assert.Equal(t, domain.BaseRaceStart.Add(60*time.Minute), black.StartTime())

	_, ok = domain.WaveByName("NOPE")
	assert.False(t, ok)
}

func TestWavesOrdering(t *testing.T) {
	waves := domain.Waves()
	require.NotEmpty(t, waves)

	// Bib ranges must not overlap and offsets must not decrease.
	for i := 1; i < len(waves); i++ {
		assert.Greater(t, waves[i].FirstBib, waves[i-1].LastBib,
			"wave %s overlaps %s", waves[i].Name, waves[i-1].Name)
		assert.GreaterOrEqual(t, waves[i].StartOffset, waves[i-1].StartOffset)
	}
}
