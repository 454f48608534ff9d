package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NormalizeClock rewrites a colon-separated duration into HH:MM:SS form:
// single-digit components are zero-padded and "00:" is prepended when the
// hour component is missing ("9:33" → "00:09:33", "1:02:3" → "01:02:03").
// Empty input stays empty; it is the missing-value sentinel.
func NormalizeClock(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	parts := strings.Split(s, ":")
	for i, p := range parts {
		if len(p) == 1 {
			parts[i] = "0" + p
		}
	}
	if len(parts) == 2 {
		parts = append([]string{"00"}, parts...)
	}
	return strings.Join(parts, ":")
}

// ParseClock parses a normalized HH:MM:SS value into a duration. One- and
// two-component inputs are normalized first, so "53:00" parses as 53 minutes.
func ParseClock(s string) (time.Duration, error) {
	s = NormalizeClock(s)
	if s == "" {
		return 0, fmt.Errorf("empty clock value")
	}
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("clock value %q: want HH:MM:SS", s)
	}
	var secs [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("clock value %q: bad component %q", s, p)
		}
		secs[i] = n
	}
	if secs[1] > 59 || secs[2] > 59 {
		return 0, fmt.Errorf("clock value %q: minutes and seconds must be under 60", s)
	}
	return time.Duration(secs[0])*time.Hour +
		time.Duration(secs[1])*time.Minute +
		time.Duration(secs[2])*time.Second, nil
}

// FormatClock renders a duration back into the canonical HH:MM:SS form.
func FormatClock(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
