package validate

import (
	"fmt"
	"strings"
	"time"
)

// dateSeparators are the accepted cosmetic separators of the dd/mm/yyyy
// grammar. The same separator must be used in both positions.
var dateSeparators = []string{"/", "-", "."}

// IsValidDateText reports whether v is text in dd/mm/yyyy form (day and
// month as 1 or 2 digits, year as exactly 4) denoting a real calendar date
// under the proleptic Gregorian leap-year rule.
func IsValidDateText(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	day, month, year, ok := splitDateText(s)
	return ok && isRealDate(day, month, year)
}

// ParseDate parses dd/mm/yyyy text into a UTC midnight time.Time. It
// re-validates the text and reports ok=false on any failure. The three
// accepted separators produce the identical date value.
func ParseDate(s string) (time.Time, bool) {
	day, month, year, ok := splitDateText(s)
	if !ok || !isRealDate(day, month, year) {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// ValidateDate validates and parses an arbitrary value as a dd/mm/yyyy
// date. It is total over any input: non-text values fail with
// ErrTypeMismatch, text that does not match the grammar fails with
// ErrInvalidFormat, and grammatical text naming an impossible date fails
// with ErrOutOfRange.
func ValidateDate(v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: date must be text", ErrTypeMismatch)
	}

	day, month, year, ok := splitDateText(s)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: expected a dd/mm/yyyy date", ErrInvalidFormat)
	}
	if !isRealDate(day, month, year) {
		return time.Time{}, fmt.Errorf("%w: not a real calendar date", ErrOutOfRange)
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// splitDateText applies the separator grammar: three components joined by
// one of the accepted separators, day and month 1-2 digits, year exactly 4.
// Mixed separators never match because splitting on the wrong separator
// leaves non-digit characters in a component.
func splitDateText(s string) (day, month, year int, ok bool) {
	for _, sep := range dateSeparators {
		parts := strings.Split(s, sep)
		if len(parts) != 3 {
			continue
		}
		if !isDigits(parts[0], 1, 2) || !isDigits(parts[1], 1, 2) || !isDigits(parts[2], 4, 4) {
			continue
		}
		day = atoi(parts[0])
		month = atoi(parts[1])
		year = atoi(parts[2])
		return day, month, year, true
	}
	return 0, 0, 0, false
}

// isRealDate checks the components against real calendar rules: month in
// [1,12] and day in [1, daysInMonth].
func isRealDate(day, month, year int) bool {
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= daysInMonth(month, year)
}

// daysInMonth returns the length of a month under the proleptic Gregorian
// rule: years divisible by 4 are leap years, except centuries not divisible
// by 400.
func daysInMonth(month, year int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// isDigits reports whether s consists solely of ASCII digits and its length
// is within [min, max].
func isDigits(s string, min, max int) bool {
	if len(s) < min || len(s) > max {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// atoi converts digit-only text as checked by isDigits; it never sees
// anything else.
func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
