// Package extract is the spreadsheet-to-record normalization engine. It turns
// loosely structured, human-entered worksheet rows into typed MP and KYM
// records through positional column schemas, defensive scalar coercion and
// statement-period inference.
//
// Every coercer in this file is total: unrecognized input degrades to a typed
// zero value instead of failing. The source data is a best-effort reporting
// view over hand-entered spreadsheets, so completeness of the output table
// wins over per-field strictness.
package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"mpreview/internal/worksheet"
	"mpreview/pkg/contracts/domain"
)

// serialEpoch is the spreadsheet date epoch, 1899-12-30. The two-day offset
// from 1900-01-01 preserves the historical leap-year bug of the format, so
// serial day counts from real workbooks convert to the dates users saw.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// serialFloor is the smallest numeric value treated as a day-count serial
// when resolving years. Anything between the direct-year range and this floor
// is returned verbatim as a last resort.
const serialFloor = 30000

var currencyJunk = strings.NewReplacer("$", "", ",", "", " ", "", "\t", "")

// Text returns the trimmed display form of a cell, or "" when empty.
func Text(c worksheet.Cell) string {
	if c.IsEmpty() {
		return ""
	}
	return strings.TrimSpace(c.Raw)
}

// Number coerces a cell to a float64. Text values are stripped of thousands
// separators, currency symbols and internal whitespace before parsing.
// Unparseable input yields 0.
func Number(c worksheet.Cell) float64 {
	switch c.Kind {
	case worksheet.Number:
		return c.Num
	case worksheet.Text:
		v, err := strconv.ParseFloat(currencyJunk.Replace(strings.TrimSpace(c.Raw)), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return v
	}
	return 0
}

// Count coerces a cell to a whole number of transactions.
func Count(c worksheet.Cell) int {
	return int(Number(c))
}

// Currency coerces a cell to a monetary amount. On top of the stripping done
// by Number it honors the accounting convention that a value wholly wrapped
// in parentheses is negative: "(123.45)" parses as -123.45.
func Currency(c worksheet.Cell) decimal.Decimal {
	switch c.Kind {
	case worksheet.Number:
		return decimal.NewFromFloat(c.Num)
	case worksheet.Text:
		s := currencyJunk.Replace(strings.TrimSpace(c.Raw))
		if len(s) >= 2 && strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
			s = "-" + s[1:len(s)-1]
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero
		}
		return d
	}
	return decimal.Zero
}

// BalanceOf coerces a cell into the optional-numeric balance contract. Text
// that does not parse as an amount is preserved raw rather than zeroed, since
// the column's type has drifted across schema revisions.
func BalanceOf(c worksheet.Cell) domain.Balance {
	switch c.Kind {
	case worksheet.Number:
		return domain.NumericBalance(decimal.NewFromFloat(c.Num))
	case worksheet.Text:
		s := currencyJunk.Replace(strings.TrimSpace(c.Raw))
		if len(s) >= 2 && strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
			s = "-" + s[1:len(s)-1]
		}
		if d, err := decimal.NewFromString(s); err == nil {
			return domain.NumericBalance(d)
		}
		return domain.RawBalance(strings.TrimSpace(c.Raw))
	}
	return domain.NumericBalance(decimal.Zero)
}

// MonthName resolves a statement-month cell to a full English month name.
// Text cells are trusted to already hold a month string and pass through
// trimmed; numeric cells are interpreted as serial day counts.
func MonthName(c worksheet.Cell) string {
	switch c.Kind {
	case worksheet.Text:
		return strings.TrimSpace(c.Raw)
	case worksheet.Number:
		return serialEpoch.Add(serialDays(c.Num)).Month().String()
	}
	return ""
}

var (
	bareYearRe  = regexp.MustCompile(`^\d{4}$`)
	yearRe      = regexp.MustCompile(`\b(20\d{2})\b`)
	shortYearRe = regexp.MustCompile(`[-/](\d{2})$`)
)

// Year resolves a statement-year cell to a four-digit year string. Numeric
// values in the plausible direct-year range are taken at face value rather
// than as day counts; larger values convert through the serial epoch.
func Year(c worksheet.Cell) string {
	switch c.Kind {
	case worksheet.Text:
		s := strings.TrimSpace(c.Raw)
		if bareYearRe.MatchString(s) {
			return s
		}
		if m := yearRe.FindStringSubmatch(s); m != nil {
			return m[1]
		}
		if m := shortYearRe.FindStringSubmatch(s); m != nil {
			return "20" + m[1]
		}
		return s
	case worksheet.Number:
		switch {
		case c.Num >= 1900 && c.Num <= 2100:
			return strconv.Itoa(int(c.Num))
		case c.Num > serialFloor:
			return strconv.Itoa(serialEpoch.Add(serialDays(c.Num)).Year())
		default:
			return strconv.Itoa(int(c.Num))
		}
	}
	return ""
}

func serialDays(n float64) time.Duration {
	return time.Duration(n * 24 * float64(time.Hour))
}
