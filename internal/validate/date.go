package validate

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"jesbridge/backend/helper"
)

// Month abbreviations in the SAS DDMMMYYYY convention. Lookup is
// case-insensitive, matching the reference behavior.
var monthAbbrevs = map[string]time.Month{
	"JAN": time.January, "FEB": time.February, "MAR": time.March,
	"APR": time.April, "MAY": time.May, "JUN": time.June,
	"JUL": time.July, "AUG": time.August, "SEP": time.September,
	"OCT": time.October, "NOV": time.November, "DEC": time.December,
}

func dateFormatError(value string) error {
	return fmt.Errorf("Invalid date format for '%s'. Use DDMMMYYYY (e.g., 31AUG2019)", value)
}

// ParseDDMMMYYYY parses a date like "31AUG2019", ignoring surrounding
// whitespace. The returned error message embeds the original input verbatim.
func ParseDDMMMYYYY(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	if len(s) != 9 {
		return time.Time{}, dateFormatError(value)
	}

	dayStr, monthStr, yearStr := s[0:2], s[2:5], s[5:9]
	if !helper.IsDigits(dayStr) || !helper.IsDigits(yearStr) {
		return time.Time{}, dateFormatError(value)
	}

	month, ok := monthAbbrevs[strings.ToUpper(monthStr)]
	if !ok {
		return time.Time{}, dateFormatError(value)
	}

	day, _ := strconv.Atoi(dayStr)
	year, _ := strconv.Atoi(yearStr)

	// time.Date normalizes out-of-range days (e.g. 31FEB -> 02MAR), so an
	// exact round-trip is required for the input to be a real calendar date.
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, dateFormatError(value)
	}

	return t, nil
}
