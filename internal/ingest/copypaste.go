// Package ingest normalizes raw race captures into canonical records.
//
// Two independent paths feed the same canonical output: ReadCopyPaste for
// manually captured, line-oriented text and ReadRows for the scraper's CSV.
// Both are all-or-nothing: a record either parses completely or the whole
// run fails with the offending input in the error.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/couchcryptid/race-results-etl/internal/domain"
)

var (
	// runnerInfoRe matches the combined gender/age/bib/location line:
	// "M 29Bib 19Kuala Lumpur, -, MYS".
	runnerInfoRe = regexp.MustCompile(`([A-Z]) (\d+)Bib (\d*)(.*)`)

	// runnerInfoNoAgeRe matches the alternate form without age or detailed
	// location: "MBib 573-, POL".
	runnerInfoNoAgeRe = regexp.MustCompile(`([A-Z]+)Bib (\d+)-, (.*)`)
)

// tokens per record in a copy-paste capture: name, info line, three
// positions, pace, the literal MIN/MI unit marker, elapsed time.
const cycleLen = 8

// ReadCopyPaste parses a manually captured results page. Each record is a
// fixed 8-line token cycle; see the package doc of internal/domain for the
// capture format. Bibs listed in forcedDNF are tagged DNF even though the
// website rendered a full-course line for them. Checkpoint fields are left
// empty since this capture path has no split data.
func ReadCopyPaste(r io.Reader, forcedDNF []int) ([]domain.RawRecord, error) {
	dnf := make(map[int]bool, len(forcedDNF))
	for _, bib := range forcedDNF {
		dnf[bib] = true
	}

	var (
		records []domain.RawRecord
		record  domain.RawRecord
		tok     int
		lineNum int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		tok++
		lineNum++

		switch tok {
		case 1:
			record = domain.NewRawRecord()
			record.Set(domain.FieldRunnerName, line)
		case 2:
			if err := parseInfoLine(record, line, dnf); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
		case 3:
			if err := setIntToken(record, domain.FieldOverallPosition, line); err != nil {
				return nil, fmt.Errorf("line %d: overall position: %w", lineNum, err)
			}
		case 4:
			// Runners without a recorded gender have no gender position.
			if _, err := strconv.Atoi(line); err != nil {
				record.Set(domain.FieldGenderPosition, "")
			} else {
				record.Set(domain.FieldGenderPosition, line)
			}
		case 5:
			if err := setIntToken(record, domain.FieldDivisionPosition, line); err != nil {
				return nil, fmt.Errorf("line %d: division position: %w", lineNum, err)
			}
		case 6:
			record.Set(domain.FieldPace, domain.NormalizeClock(line))
		case 7:
			// Always the literal unit marker MIN/MI.
		case 8:
			record.Set(domain.FieldTime, domain.NormalizeClock(line))
			records = append(records, record)
			tok = 0
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read raw capture: %w", err)
	}
	if tok != 0 {
		return nil, fmt.Errorf("truncated capture: %d leftover token(s) after line %d", tok, lineNum)
	}
	return records, nil
}

// parseInfoLine extracts gender, age, bib, and location from the combined
// info line, trying the detailed form first and the age-less form second.
// Neither form matching is fatal for the whole ingestion run.
func parseInfoLine(record domain.RawRecord, line string, dnf map[int]bool) error {
	if m := runnerInfoRe.FindStringSubmatch(line); m != nil {
		record.Set(domain.FieldGender, strings.ToUpper(m[1]))
		record.Set(domain.FieldAge, m[2])
		bib, err := strconv.Atoi(m[3])
		if err != nil {
			return fmt.Errorf("invalid bib in %q: %w", line, err)
		}
		setBib(record, bib, dnf)
		setLocation(record, m[4])
		return nil
	}

	if m := runnerInfoNoAgeRe.FindStringSubmatch(line); m != nil {
		record.Set(domain.FieldGender, strings.ToUpper(m[1]))
		record.Set(domain.FieldAge, "")
		bib, err := strconv.Atoi(m[2])
		if err != nil {
			return fmt.Errorf("invalid bib in %q: %w", line, err)
		}
		setBib(record, bib, dnf)
		record.Set(domain.FieldCity, "")
		record.Set(domain.FieldState, "")
		record.Set(domain.FieldCountry, strings.ToUpper(strings.TrimSpace(m[3])))
		return nil
	}

	return fmt.Errorf("runner info line did not match either supported form: %q", line)
}

// setBib stores the bib and everything derived from it: wave and level.
func setBib(record domain.RawRecord, bib int, dnf map[int]bool) {
	record.Set(domain.FieldBib, strconv.Itoa(bib))
	record.Set(domain.FieldWave, domain.WaveFromBib(bib).Name)
	if dnf[bib] {
		record.Set(domain.FieldLevel, string(domain.LevelDNF))
	} else {
		record.Set(domain.FieldLevel, string(domain.LevelFullCourse))
	}
}

// setLocation splits the trailing location into city/state/country. The
// website prints one, two, or three comma-separated parts; city then state
// default to empty as parts run out.
func setLocation(record domain.RawRecord, location string) {
	parts := strings.Split(location, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	switch len(parts) {
	case 3:
		record.Set(domain.FieldCity, domain.Capitalize(parts[0]))
		record.Set(domain.FieldState, domain.Capitalize(parts[1]))
		record.Set(domain.FieldCountry, strings.ToUpper(parts[2]))
	case 2:
		record.Set(domain.FieldCity, "")
		record.Set(domain.FieldState, domain.Capitalize(parts[0]))
		record.Set(domain.FieldCountry, strings.ToUpper(parts[1]))
	case 1:
		record.Set(domain.FieldCity, "")
		record.Set(domain.FieldState, "")
		record.Set(domain.FieldCountry, strings.ToUpper(parts[0]))
	default:
		record.Set(domain.FieldCity, "")
		record.Set(domain.FieldState, "")
		record.Set(domain.FieldCountry, "")
	}
}

func setIntToken(record domain.RawRecord, f domain.FieldName, v string) error {
	if _, err := strconv.Atoi(v); err != nil {
		return fmt.Errorf("invalid integer %q: %w", v, err)
	}
	record.Set(f, v)
	return nil
}
