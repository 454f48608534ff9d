package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/race-results-etl/internal/domain"
)

func TestParseLevel(t *testing.T) {
	l, err := domain.ParseLevel("Full Course")
	require.NoError(t, err)
	assert.Equal(t, domain.LevelFullCourse, l)

	l, err = domain.ParseLevel("DNF")
	require.NoError(t, err)
	assert.Equal(t, domain.LevelDNF, l)

	_, err = domain.ParseLevel("half course")
	assert.Error(t, err)
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "KUALA LUMPUR", want: "Kuala lumpur"},
		{in: "new york", want: "New york"},
		{in: "nY", want: "Ny"},
		{in: "águeda", want: "Águeda"},
		{in: "ZÜRICH", want: "Zürich"},
		{in: "", want: ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, domain.Capitalize(tc.in), "input %q", tc.in)
	}
}

func TestCourseRecords(t *testing.T) {
	assert.Equal(t, "Paul Crake", domain.MaleCourseRecord.Name)
	assert.Equal(t, "Andrea Mayr", domain.FemaleCourseRecord.Name)

	male, err := domain.ParseClock(domain.MaleCourseRecord.Time)
	require.NoError(t, err)
	female, err := domain.ParseClock(domain.FemaleCourseRecord.Time)
	require.NoError(t, err)
	assert.Less(t, male, female)
}
