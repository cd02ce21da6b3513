package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	slashDateRe = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/\d{4}`)
	isoDateRe   = regexp.MustCompile(`\d{4}-(\d{2})-\d{2}`)
	dashDateRe  = regexp.MustCompile(`(\d{2})-\d{2}-\d{4}`)
)

// InferPeriod extracts a month name and a four-digit year from a free-text
// statement-period string. It is a best-effort chain over the formats seen in
// real data, not a date parser: each strategy is tried in order until the
// corresponding field resolves, and unresolved fields stay empty.
//
// Month strategies, in order: full English month name, three-letter
// abbreviation, D/D/YYYY dates, ISO YYYY-MM-DD dates, MM-DD-YYYY dates.
// The year comes from the first 20xx substring anywhere in the text.
func InferPeriod(period string) (month, year string) {
	if period == "" {
		return "", ""
	}

	if m := yearRe.FindStringSubmatch(period); m != nil {
		year = m[1]
	}

	lower := strings.ToLower(period)
	for m := time.January; m <= time.December; m++ {
		if strings.Contains(lower, strings.ToLower(m.String())) {
			month = m.String()
			break
		}
	}

	if month == "" {
		for m := time.January; m <= time.December; m++ {
			if strings.Contains(period, m.String()[:3]) {
				month = m.String()
				break
			}
		}
	}

	if month == "" {
		month = slashDateMonth(period)
	}

	if month == "" {
		if m := isoDateRe.FindStringSubmatch(period); m != nil {
			month = monthByNumber(m[1])
		}
	}

	if month == "" {
		if m := dashDateRe.FindStringSubmatch(period); m != nil {
			month = monthByNumber(m[1])
		}
	}

	return month, year
}

// slashDateMonth picks the month out of slash-separated dates. Statement
// periods mix US MM/DD/YYYY and day-first DD/MM/YYYY ordering; a leading
// group above 12 anywhere in the text proves the period is day-first, in
// which case the month is the second group.
func slashDateMonth(period string) string {
	matches := slashDateRe.FindAllStringSubmatch(period, -1)
	if len(matches) == 0 {
		return ""
	}

	group := 1
	for _, m := range matches {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 12 {
			group = 2
			break
		}
	}

	return monthByNumber(matches[0][group])
}

// monthByNumber maps a 1-12 numeric group to a month name, or "" when the
// group is out of range.
func monthByNumber(s string) string {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 12 {
		return ""
	}
	return time.Month(n).String()
}
