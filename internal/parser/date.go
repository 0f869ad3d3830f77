package parser

import (
	"regexp"
	"strconv"
	"time"
)

// dateRe matches date-shaped tokens like 5/10/24, 05-10-2024.
var dateRe = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})`)

// twoDigitYearPivot maps two-digit years into the window starting at 1950:
// 00-49 resolve to the 2000s, 50-99 to 1950-1999. Changing this silently
// shifts receipt dates by a century.
const twoDigitYearPivot = 1950

// ExtractDate scans line for a date-shaped substring and parses it as
// month/day/year, with or without leading zeros, using / or - separators.
// It reports false when no parseable date exists; callers fall back to the
// current date. It never returns an error.
func ExtractDate(line string) (time.Time, bool) {
	m := dateRe.FindStringSubmatch(line)
	if m == nil {
		return time.Time{}, false
	}

	month, err := strconv.Atoi(m[1])
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(m[2])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(m[3])
	if err != nil {
		return time.Time{}, false
	}
	if year < 100 {
		year = pivotYear(year)
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	// time.Date normalizes overflow (e.g. Feb 30 becomes Mar 2); reject
	// anything that did not round-trip.
	if int(date.Month()) != month || date.Day() != day {
		return time.Time{}, false
	}
	return date, true
}

func pivotYear(yy int) int {
	if yy < twoDigitYearPivot-1900 {
		return 2000 + yy
	}
	return 1900 + yy
}
