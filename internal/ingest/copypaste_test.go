package ingest_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/race-results-etl/internal/domain"
	"github.com/couchcryptid/race-results-etl/internal/ingest"
)

// capture holds two full 8-token cycles: a regular elite runner and an
// age-less runner matched by the alternate info-line form.
const capture = `Wai Ching Soh
M 29Bib 19Kuala Lumpur, Selangor, MYS
1
1
1
10:36
MIN/MI
55:58
Piotr Lobodzinski
MBib 573-, POL
26
--
4
13:45
MIN/MI
1:12:41
`

func TestReadCopyPaste(t *testing.T) {
	records, err := ingest.ReadCopyPaste(strings.NewReader(capture), nil)
	require.NoError(t, err)
	require.Len(t, records, 2)

	t.Run("full info line", func(t *testing.T) {
		rec := records[0]
		assert.Equal(t, "Wai Ching Soh", rec.Get(domain.FieldRunnerName))
		assert.Equal(t, "M", rec.Get(domain.FieldGender))
		assert.Equal(t, "29", rec.Get(domain.FieldAge))
		assert.Equal(t, "19", rec.Get(domain.FieldBib))
		assert.Equal(t, "ELITEMEN", rec.Get(domain.FieldWave))
		assert.Equal(t, string(domain.LevelFullCourse), rec.Get(domain.FieldLevel))
		assert.Equal(t, "Kuala lumpur", rec.Get(domain.FieldCity))
		assert.Equal(t, "Selangor", rec.Get(domain.FieldState))
		assert.Equal(t, "MYS", rec.Get(domain.FieldCountry))
		assert.Equal(t, "1", rec.Get(domain.FieldOverallPosition))
		assert.Equal(t, "00:10:36", rec.Get(domain.FieldPace))
		assert.Equal(t, "00:55:58", rec.Get(domain.FieldTime))
	})

	t.Run("age-less info line", func(t *testing.T) {
		rec := records[1]
		assert.Equal(t, "Piotr Lobodzinski", rec.Get(domain.FieldRunnerName))
		assert.Equal(t, "M", rec.Get(domain.FieldGender))
		assert.Equal(t, "", rec.Get(domain.FieldAge))
		assert.Equal(t, "573", rec.Get(domain.FieldBib))
		assert.Equal(t, "GOLD", rec.Get(domain.FieldWave))
		assert.Equal(t, "", rec.Get(domain.FieldCity))
		assert.Equal(t, "", rec.Get(domain.FieldState))
		assert.Equal(t, "POL", rec.Get(domain.FieldCountry))
		assert.Equal(t, "", rec.Get(domain.FieldGenderPosition), "non-integer gender position becomes missing")
		assert.Equal(t, "01:12:41", rec.Get(domain.FieldTime))
	})

	t.Run("checkpoint fields stay empty", func(t *testing.T) {
		for _, rec := range records {
			assert.Equal(t, "", rec.Get(domain.FieldTwentiethTime))
			assert.Equal(t, "", rec.Get(domain.FieldSixtyFifthTime))
		}
	})
}

func TestReadCopyPasteForcedDNF(t *testing.T) {
	records, err := ingest.ReadCopyPaste(strings.NewReader(capture), []int{573})
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, string(domain.LevelFullCourse), records[0].Get(domain.FieldLevel))
	assert.Equal(t, string(domain.LevelDNF), records[1].Get(domain.FieldLevel))
}

func TestReadCopyPasteLocationVariants(t *testing.T) {
	tests := []struct {
		name     string
		infoLine string
		city     string
		state    string
		country  string
	}{
		{name: "three parts", infoLine: "F 31Bib 26sydney, nsw, AUS", city: "Sydney", state: "Nsw", country: "AUS"},
		{name: "two parts", infoLine: "F 31Bib 26nsw, aus", city: "", state: "Nsw", country: "AUS"},
		{name: "one part", infoLine: "F 31Bib 26aus", city: "", state: "", country: "AUS"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := "Andrea Mayr\n" + tc.infoLine + "\n2\n1\n1\n11:23\nMIN/MI\n1:00:02\n"
			records, err := ingest.ReadCopyPaste(strings.NewReader(in), nil)
			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, tc.city, records[0].Get(domain.FieldCity))
			assert.Equal(t, tc.state, records[0].Get(domain.FieldState))
			assert.Equal(t, tc.country, records[0].Get(domain.FieldCountry))
		})
	}
}

func TestReadCopyPasteErrors(t *testing.T) {
	t.Run("unmatched info line is fatal", func(t *testing.T) {
		in := "Somebody\nno bib here at all\n1\n1\n1\n10:00\nMIN/MI\n50:00\n"
		_, err := ingest.ReadCopyPaste(strings.NewReader(in), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no bib here at all")
	})

	t.Run("truncated cycle is fatal", func(t *testing.T) {
		in := "Somebody\nM 30Bib 201berlin, be, DEU\n5\n3\n"
		_, err := ingest.ReadCopyPaste(strings.NewReader(in), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "truncated")
	})

	t.Run("bad overall position is fatal", func(t *testing.T) {
		in := "Somebody\nM 30Bib 201berlin, be, DEU\nNaN\n3\n2\n10:00\nMIN/MI\n50:00\n"
		_, err := ingest.ReadCopyPaste(strings.NewReader(in), nil)
		require.Error(t, err)
	})
}
