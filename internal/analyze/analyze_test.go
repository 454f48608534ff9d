package analyze_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/race-results-etl/internal/dataset"
	"github.com/couchcryptid/race-results-etl/internal/domain"
)

// buildDataset loads an inline canonical CSV into a dataset.
func buildDataset(t *testing.T, rows ...string) *dataset.Dataset {
	t.Helper()
	in := strings.Join(domain.FieldNames(), ",") + "\n" + strings.Join(rows, "\n") + "\n"
	d, err := dataset.LoadReader(strings.NewReader(in), false)
	require.NoError(t, err)
	return d
}

// runnerRow renders one finisher with the fields the analysis functions read;
// checkpoint columns are left empty.
func runnerRow(bib int, gender, country string, age int, clock string) string {
	return fmt.Sprintf("Full Course,Runner %d,%s,%d,,%s,,1,1,1,%s,%s,,%d,,,,,,,,,,,",
		bib, gender, bib, country, clock, clock, age)
}

// eightRunners is the shared fixture: four men and four women across four
// waves and three countries, with an exact tie for the fastest time.
func eightRunners(t *testing.T) *dataset.Dataset {
	t.Helper()
	return buildDataset(t,
		runnerRow(5, "M", "USA", 20, "00:10:00"),
		runnerRow(2, "M", "USA", 20, "00:10:00"),
		runnerRow(26, "F", "ITA", 30, "00:12:00"),
		runnerRow(30, "F", "ITA", 34, "00:14:00"),
		runnerRow(100, "M", "GBR", 45, "00:16:00"),
		runnerRow(101, "F", "USA", 40, "00:16:00"),
		runnerRow(200, "M", "USA", 52, "00:18:00"),
		runnerRow(201, "F", "USA", 60, "00:20:00"),
	)
}
