package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/race-results-etl/internal/domain"
)

const countryCSV = `name,alpha-2,alpha-3,country-code,iso_3166-2,region,sub-region,intermediate-region,region-code,sub-region-code,intermediate-region-code
United States of America,US,USA,840,ISO 3166-2:US,Americas,Northern America,,019,021,
Malaysia,MY,MYS,458,ISO 3166-2:MY,Asia,South-eastern Asia,,142,035,
`

func TestLoadCountries(t *testing.T) {
	table, err := domain.LoadCountries(strings.NewReader(countryCSV))
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	usa, err := table.LookupAlpha3("USA")
	require.NoError(t, err)
	assert.Equal(t, "United States of America", usa.Name)
	assert.Equal(t, "US", usa.Alpha2)
	assert.Equal(t, "Americas", usa.Region)

	all := table.All()
	require.Len(t, all, 2)
	assert.Equal(t, "Malaysia", all[1].Name)
}

func TestLoadCountriesMissingColumn(t *testing.T) {
	_, err := domain.LoadCountries(strings.NewReader("name,alpha-2\nX,Y\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alpha-3")
}

func TestLookupAlpha3Errors(t *testing.T) {
	table, err := domain.LoadCountries(strings.NewReader(countryCSV))
	require.NoError(t, err)

	_, err = table.LookupAlpha3("US")
	assert.ErrorIs(t, err, domain.ErrInvalidCountryCode)

	_, err = table.LookupAlpha3("ZZZ")
	assert.ErrorIs(t, err, domain.ErrCountryNotFound)
}
