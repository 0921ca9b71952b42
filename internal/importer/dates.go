package importer

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	allDigitsRe = regexp.MustCompile(`^\d+$`)
	slashDateRe = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2,4}$`)
)

var dayCountEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// NormalizeDate converts a free-form date string into the numeric day count
// the remote inventory system stores: days since 1900-01-01 plus two. The +2
// reproduces the spreadsheet-epoch quirk baked into the historical data and
// must not be "fixed" — the remote side compares these values verbatim.
//
// Already-numeric input is assumed converted and returned unchanged, as is
// anything that does not look like a D/M/Y slash date. The function is total:
// malformed input falls back to the original string.
func NormalizeDate(s string) string {
	if s == "" {
		return ""
	}
	if allDigitsRe.MatchString(s) {
		return s
	}
	if !slashDateRe.MatchString(s) {
		return s
	}

	parts := strings.Split(s, "/")
	first, err1 := strconv.Atoi(parts[0])
	second, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return s
	}

	// A leading component that could be a month is treated as one (US
	// order); otherwise the date is read as day/month/year.
	month, day := first, second
	if first > 12 {
		day, month = first, second
	}

	if year < 100 {
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
	}

	// time.Date normalizes out-of-range day/month values instead of
	// failing, which matches the lenient behavior the label data relies on.
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	days := int(date.Sub(dayCountEpoch)/(24*time.Hour)) + 2
	return strconv.Itoa(days)
}

// looksLikeDate reports whether a resolved code is actually a date cell that
// bled into the code column through a merged-cell gap.
func looksLikeDate(s string) bool {
	return strings.Contains(s, "/") || slashDateRe.MatchString(s)
}
