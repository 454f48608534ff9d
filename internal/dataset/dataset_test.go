package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/race-results-etl/internal/dataset"
)

func loadSample(t *testing.T) *dataset.Dataset {
	t.Helper()
	d, err := dataset.Load(dataset.Options{})
	require.NoError(t, err)
	return d
}

func TestRowsProjection(t *testing.T) {
	d := loadSample(t)

	header, rows := d.Rows()
	assert.Len(t, header, 14)
	assert.Equal(t, "level", header[0])
	assert.Equal(t, "age", header[13])
	assert.Len(t, rows, d.Len())

	t.Run("bib filter preserves dataset order", func(t *testing.T) {
		// Bib 19 precedes bib 3 in the sample CSV; the filter order must
		// not matter.
		_, filtered := d.Rows(3, 19)
		require.Len(t, filtered, 2)
		assert.Equal(t, "19", filtered[0][3])
		assert.Equal(t, "3", filtered[1][3])
	})

	t.Run("unknown bib yields no row", func(t *testing.T) {
		_, filtered := d.Rows(99999)
		assert.Empty(t, filtered)
	})
}

func TestTimesProjection(t *testing.T) {
	d := loadSample(t)

	header, rows := d.Times()
	assert.Len(t, header, 7)
	assert.Equal(t, "finish timestamp", header[6])
	require.Len(t, rows, d.Len())

	for _, row := range rows {
		assert.Len(t, row, len(header))
	}

	// Bib 105 has no 20th floor split; its checkpoint cells render empty.
	runners := d.Runners()
	for i, r := range runners {
		if r.Bib != 105 {
			continue
		}
		assert.Equal(t, "", rows[i][2])
		assert.Equal(t, "", rows[i][3])
		assert.NotEqual(t, "", rows[i][4], "65th floor split is imputed")
	}
}

func TestPositionsProjection(t *testing.T) {
	d := loadSample(t)

	header, rows := d.Positions()
	assert.Len(t, header, 10)
	assert.Equal(t, "overall position", header[0])
	assert.Equal(t, "age", header[3])
	require.Len(t, rows, d.Len())

	// Winner row: overall position 1 leads the projection.
	assert.Equal(t, "1", rows[0][0])
}

func TestCategoriesProjection(t *testing.T) {
	d := loadSample(t)

	header, rows := d.Categories()
	assert.Len(t, header, 7)
	require.Len(t, rows, d.Len())
	assert.Equal(t, "Full Course", rows[0][0])
	assert.Equal(t, "ELITEMEN", rows[0][5])
}

func TestByBibMiss(t *testing.T) {
	d := loadSample(t)
	_, ok := d.ByBib(50)
	assert.False(t, ok)
}
