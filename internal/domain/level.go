package domain

import "fmt"

// Level is the two-valued completion outcome for a runner.
type Level string

const (
	// LevelFullCourse marks a runner who completed all 86 floors.
	LevelFullCourse Level = "Full Course"
	// LevelDNF marks a runner who did not finish.
	LevelDNF Level = "DNF"
)

// ParseLevel validates a level value read from a canonical CSV.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelFullCourse, LevelDNF:
		return Level(s), nil
	default:
		return "", fmt.Errorf("invalid level %q", s)
	}
}

// CourseRecord is an all-time course best, kept for display alongside
// race reports.
type CourseRecord struct {
	Name    string
	Country string
	Year    int
	Time    string
}

// Course records as of the 2023 edition.
var (
	MaleCourseRecord   = CourseRecord{Name: "Paul Crake", Country: "Australia", Year: 2003, Time: "9:33"}
	FemaleCourseRecord = CourseRecord{Name: "Andrea Mayr", Country: "Austria", Year: 2006, Time: "11:23"}
)
