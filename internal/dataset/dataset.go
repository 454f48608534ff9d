package dataset

import (
	"strconv"
	"time"

	"github.com/couchcryptid/race-results-etl/internal/domain"
)

// Dataset is the loaded, normalized collection of runner records, keyed
// uniquely by bib. It is an immutable snapshot: analysis functions only
// read from it.
type Dataset struct {
	runners []Runner
	byBib   map[int]int
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.runners) }

// Runners returns every record in dataset order.
func (d *Dataset) Runners() []Runner {
	out := make([]Runner, len(d.runners))
	copy(out, d.runners)
	return out
}

// ByBib finds a record by its bib number.
func (d *Dataset) ByBib(bib int) (Runner, bool) {
	i, ok := d.byBib[bib]
	if !ok {
		return Runner{}, false
	}
	return d.runners[i], true
}

// displayFields is the projection consumed by table renderers: the summary
// columns without checkpoint splits.
var displayFields = []domain.FieldName{
	domain.FieldLevel, domain.FieldRunnerName, domain.FieldGender,
	domain.FieldBib, domain.FieldState, domain.FieldCountry,
	domain.FieldWave, domain.FieldOverallPosition, domain.FieldGenderPosition,
	domain.FieldDivisionPosition, domain.FieldPace, domain.FieldTime,
	domain.FieldCity, domain.FieldAge,
}

// Rows projects the dataset into a header plus one formatted row per
// record. With bibs given, only matching records are returned, preserving
// dataset order rather than the order of the bib list.
func (d *Dataset) Rows(bibs ...int) ([]string, [][]string) {
	header := make([]string, len(displayFields))
	for i, f := range displayFields {
		header[i] = string(f)
	}

	var want map[int]bool
	if len(bibs) > 0 {
		want = make(map[int]bool, len(bibs))
		for _, b := range bibs {
			want[b] = true
		}
	}

	var rows [][]string
	for i := range d.runners {
		r := &d.runners[i]
		if want != nil && !want[r.Bib] {
			continue
		}
		rows = append(rows, []string{
			string(r.Level), r.Name, r.Gender,
			strconv.Itoa(r.Bib), r.State, r.Country,
			r.Wave, strconv.Itoa(r.OverallPosition), strconv.Itoa(r.GenderPosition),
			strconv.Itoa(r.DivisionPosition), domain.FormatClock(r.Pace), domain.FormatClock(r.Time),
			r.City, strconv.Itoa(r.Age),
		})
	}
	return header, rows
}

// Times projects only the duration and timestamp columns, formatted.
// Missing 20th floor splits render as empty strings.
func (d *Dataset) Times() ([]string, [][]string) {
	header := []string{
		string(domain.FieldPace), string(domain.FieldTime),
		string(domain.FieldTwentiethPace), string(domain.FieldTwentiethTime),
		string(domain.FieldSixtyFifthPace), string(domain.FieldSixtyFifthTime),
		"finish timestamp",
	}
	rows := make([][]string, len(d.runners))
	for i := range d.runners {
		r := &d.runners[i]
		rows[i] = []string{
			domain.FormatClock(r.Pace), domain.FormatClock(r.Time),
			formatOptional(r.TwentiethPace), formatOptional(r.TwentiethTime),
			formatOptional(r.SixtyFifthPace), formatOptional(r.SixtyFifthTime),
			r.FinishTime.Format(time.RFC3339),
		}
	}
	return header, rows
}

// Positions projects only the integer columns: the nine positions plus age.
func (d *Dataset) Positions() ([]string, [][]string) {
	fields := domain.IntegerFields()
	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = string(f)
	}
	rows := make([][]string, len(d.runners))
	for i := range d.runners {
		r := &d.runners[i]
		rows[i] = []string{
			strconv.Itoa(r.OverallPosition), strconv.Itoa(r.GenderPosition), strconv.Itoa(r.DivisionPosition),
			strconv.Itoa(r.Age),
			strconv.Itoa(r.TwentiethPosition), strconv.Itoa(r.TwentiethGenderPosition), strconv.Itoa(r.TwentiethDivisionPosition),
			strconv.Itoa(r.SixtyFifthPosition), strconv.Itoa(r.SixtyFifthGenderPosition), strconv.Itoa(r.SixtyFifthDivisionPosition),
		}
	}
	return header, rows
}

// Categories projects only the free-text and categorical columns.
func (d *Dataset) Categories() ([]string, [][]string) {
	header := []string{
		string(domain.FieldLevel), string(domain.FieldRunnerName), string(domain.FieldGender),
		string(domain.FieldState), string(domain.FieldCountry), string(domain.FieldWave),
		string(domain.FieldCity),
	}
	rows := make([][]string, len(d.runners))
	for i := range d.runners {
		r := &d.runners[i]
		rows[i] = []string{string(r.Level), r.Name, r.Gender, r.State, r.Country, r.Wave, r.City}
	}
	return header, rows
}

func formatOptional(d *time.Duration) string {
	if d == nil {
		return ""
	}
	return domain.FormatClock(*d)
}
