// Package dataset loads canonical race CSVs into an immutable in-memory
// collection of typed runner records, applying the load-time normalization
// pass: DNF filtering, per-field median imputation, duration parsing, and
// the derived finish timestamp. Datasets are reconstructed fresh on every
// run and have no mutation API.
package dataset

import (
	"time"

	"github.com/couchcryptid/race-results-etl/internal/domain"
)

// Runner is one loaded participant record. After Load returns, every
// position field and the age are non-missing (median-imputed where the
// source was empty) and the 65th floor durations are filled; only the 20th
// floor durations may remain nil, since that checkpoint is deliberately not
// imputed.
type Runner struct {
	Level   domain.Level
	Name    string
	Gender  string
	Bib     int
	State   string
	Country string
	Wave    string
	City    string
	Age     int

	OverallPosition  int
	GenderPosition   int
	DivisionPosition int

	Pace time.Duration
	Time time.Duration

	TwentiethPosition         int
	TwentiethGenderPosition   int
	TwentiethDivisionPosition int
	TwentiethPace             *time.Duration
	TwentiethTime             *time.Duration

	SixtyFifthPosition         int
	SixtyFifthGenderPosition   int
	SixtyFifthDivisionPosition int
	SixtyFifthPace             *time.Duration
	SixtyFifthTime             *time.Duration

	// FinishTime is the derived wall-clock finish: race base start plus
	// elapsed time. Zero when the elapsed time is missing (retained DNFs).
	FinishTime time.Time
}
