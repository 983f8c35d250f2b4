// Package dates recognizes dates embedded in file name stems and derives
// date prefixes from file metadata.
package dates

import (
	"regexp"
	"time"
)

// DateFormat selects the granularity of a formatted date prefix. It affects
// output only; extraction always parses full calendar dates.
type DateFormat string

const (
	// Full renders YYYY-MM-DD.
	Full DateFormat = "full"
	// YearMonth renders YYYY-MM.
	YearMonth DateFormat = "year-month"
	// Year renders YYYY.
	Year DateFormat = "year"
)

var formatLayouts = map[DateFormat]string{
	Full:      "2006-01-02",
	YearMonth: "2006-01",
	Year:      "2006",
}

// datePattern pairs a regexp capturing the digit groups of one date layout
// with the time.Parse layout matching the concatenated groups.
type datePattern struct {
	re     *regexp.Regexp
	layout string
}

// Patterns are tried in priority order; the first substring that parses as a
// real calendar date wins.
var datePatterns = []datePattern{
	{regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`), "20060102"}, // 2024-01-15
	{regexp.MustCompile(`(\d{4})_(\d{2})_(\d{2})`), "20060102"}, // 2024_01_15
	{regexp.MustCompile(`(\d{4})(\d{2})(\d{2})`), "20060102"},   // 20240115
	{regexp.MustCompile(`(\d{2})-(\d{2})-(\d{4})`), "01022006"}, // 01-15-2024
	{regexp.MustCompile(`(\d{2})_(\d{2})_(\d{4})`), "01022006"}, // 01_15_2024
}

// stripPrefixPatterns match a date anchored to the start of a stem plus the
// separator run that follows it. Validity of the digits is not checked here.
var stripPrefixPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[-_\s]*`),
	regexp.MustCompile(`^\d{4}_\d{2}_\d{2}[-_\s]*`),
	regexp.MustCompile(`^\d{8}[-_\s]*`),
	regexp.MustCompile(`^\d{2}-\d{2}-\d{4}[-_\s]*`),
	regexp.MustCompile(`^\d{2}_\d{2}_\d{4}[-_\s]*`),
}

var separatorRun = regexp.MustCompile(`^[-_\s]*`)

// Extract returns the first date embedded anywhere in stem, trying each
// layout in priority order. A substring that matches a layout but is not a
// real calendar date (month 13, day 45) abandons that layout entirely; the
// same match is never retried. ok is false when no layout yields a date.
func Extract(stem string) (date time.Time, ok bool) {
	date, _, _, ok = findDate(stem)
	return date, ok
}

// findDate locates the first parseable date and the span of its token.
func findDate(stem string) (date time.Time, start, end int, ok bool) {
	for _, p := range datePatterns {
		m := p.re.FindStringSubmatchIndex(stem)
		if m == nil {
			continue
		}
		var digits string
		for g := 1; g <= 3; g++ {
			digits += stem[m[2*g]:m[2*g+1]]
		}
		t, err := time.Parse(p.layout, digits)
		if err != nil {
			continue
		}
		return t, m[0], m[1], true
	}
	return time.Time{}, 0, 0, false
}

// StripDate removes the exact date token Extract would find, wherever it sits
// in the stem, together with the separator/whitespace run that follows it.
// The stem comes back unchanged when no layout parses. Callers use this only
// after a date was confirmed; the no-date cleanup path is StripDatePrefix.
func StripDate(stem string) string {
	_, start, end, ok := findDate(stem)
	if !ok {
		return stem
	}
	rest := separatorRun.ReplaceAllString(stem[end:], "")
	return stem[:start] + rest
}

// StripDatePrefix removes a date anchored to the start of stem plus its
// trailing separator run. Every layout is applied in sequence. Dates embedded
// mid-stem are left alone.
func StripDatePrefix(stem string) string {
	for _, re := range stripPrefixPatterns {
		stem = re.ReplaceAllString(stem, "")
	}
	return stem
}

// FormatDate renders date at the granularity format selects. Unrecognized
// values silently fall back to Full.
func FormatDate(date time.Time, format DateFormat) string {
	layout, ok := formatLayouts[format]
	if !ok {
		layout = formatLayouts[Full]
	}
	return date.Format(layout)
}
