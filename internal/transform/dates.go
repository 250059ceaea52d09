// Copyright Johnny Jacob, 2026. All rights reserved.

package transform

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// monthNumbers maps month names and their common abbreviations to month
// numbers. Logseq also writes "sept", so it is accepted alongside "sep".
var monthNumbers = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

var (
	ordinalSuffix = regexp.MustCompile(`(\d+)(st|nd|rd|th)`)
	monthDayYear  = regexp.MustCompile(`^([A-Za-z]+)\s+(\d{1,2}),?\s+(\d{4})$`)
	dayMonthYear  = regexp.MustCompile(`^(\d{1,2})\s+([A-Za-z]+),?\s+(\d{4})$`)
)

// ParseNaturalDate parses dates like "Nov 6th, 2025" or "6 November 2025"
// and returns the zero-padded ISO form "2025-11-06". ok is false when the
// month name is unrecognized or the day does not exist in that calendar
// month (month names are case-insensitive; the ordinal suffix and a
// trailing comma are both optional).
func ParseNaturalDate(s string) (iso string, ok bool) {
	s = ordinalSuffix.ReplaceAllString(s, "${1}")
	s = strings.TrimSpace(s)

	if m := monthDayYear.FindStringSubmatch(s); m != nil {
		return isoDate(m[3], m[1], m[2])
	}
	if m := dayMonthYear.FindStringSubmatch(s); m != nil {
		return isoDate(m[3], m[2], m[1])
	}
	return "", false
}

func isoDate(yearStr, monthStr, dayStr string) (string, bool) {
	month, ok := monthNumbers[strings.ToLower(monthStr)]
	if !ok {
		return "", false
	}
	year, _ := strconv.Atoi(yearStr)
	day, _ := strconv.Atoi(dayStr)
	if !validDate(year, month, day) {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day), true
}

// validDate reports whether the given day exists in the given month.
// time.Date normalizes out-of-range values (Feb 30 becomes Mar 1 or 2),
// so a round-trip comparison detects them.
func validDate(year int, month time.Month, day int) bool {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && t.Month() == month && t.Day() == day
}
