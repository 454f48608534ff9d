package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Capitalize returns the canonical city/state form: first letter upper,
// the rest lower ("KUALA LUMPUR" → "Kuala lumpur"). The first rune is
// decoded as UTF-8 so accented names ("águeda") survive intact.
func Capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
