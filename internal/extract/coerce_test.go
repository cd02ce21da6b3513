package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mpreview/internal/worksheet"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		cell worksheet.Cell
		want string
	}{
		{name: "plain text", cell: worksheet.TextCell("Chase"), want: "Chase"},
		{name: "surrounding whitespace trimmed", cell: worksheet.TextCell("  Chase  "), want: "Chase"},
		{name: "empty cell", cell: worksheet.Cell{}, want: ""},
		{name: "numeric cell uses raw form", cell: worksheet.NumberCell(42), want: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.cell))
		})
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name string
		cell worksheet.Cell
		want float64
	}{
		{name: "numeric cell", cell: worksheet.NumberCell(1234.5), want: 1234.5},
		{name: "plain numeric text", cell: worksheet.TextCell("42.5"), want: 42.5},
		{name: "thousands separators", cell: worksheet.TextCell("1,000"), want: 1000},
		{name: "currency symbol", cell: worksheet.TextCell("$250.75"), want: 250.75},
		{name: "internal whitespace", cell: worksheet.TextCell("1 234"), want: 1234},
		{name: "unparseable text", cell: worksheet.TextCell("abc"), want: 0},
		{name: "inf spelling", cell: worksheet.TextCell("inf"), want: 0},
		{name: "nan spelling", cell: worksheet.TextCell("NaN"), want: 0},
		{name: "empty cell", cell: worksheet.Cell{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Number(tt.cell))
		})
	}
}

func TestCount(t *testing.T) {
	assert.Equal(t, 3, Count(worksheet.TextCell("3")))
	assert.Equal(t, 1000, Count(worksheet.TextCell("1,000")))
	assert.Equal(t, 12, Count(worksheet.NumberCell(12)))
	assert.Equal(t, 0, Count(worksheet.TextCell("n/a")))
	assert.Equal(t, 0, Count(worksheet.Cell{}))
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		name string
		cell worksheet.Cell
		want string
	}{
		{name: "numeric cell", cell: worksheet.NumberCell(1234.5), want: "1234.5"},
		{name: "dollar and separators", cell: worksheet.TextCell("$1,234.50"), want: "1234.5"},
		{name: "accounting parentheses are negative", cell: worksheet.TextCell("(123.45)"), want: "-123.45"},
		{name: "parenthesized with symbols", cell: worksheet.TextCell("($1,500.00)"), want: "-1500"},
		{name: "unparseable text degrades to zero", cell: worksheet.TextCell("pending"), want: "0"},
		{name: "infinity spelling degrades to zero", cell: worksheet.FromRaw("Infinity"), want: "0"},
		{name: "nan spelling degrades to zero", cell: worksheet.FromRaw("nan"), want: "0"},
		{name: "empty cell", cell: worksheet.Cell{}, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(tt.cell).String())
		})
	}
}

func TestBalanceOf(t *testing.T) {
	t.Run("numeric cell", func(t *testing.T) {
		b := BalanceOf(worksheet.NumberCell(4321.75))
		assert.True(t, b.Numeric)
		assert.Equal(t, "4321.75", b.Amount.String())
	})

	t.Run("parseable text", func(t *testing.T) {
		b := BalanceOf(worksheet.TextCell("$2,000.00"))
		assert.True(t, b.Numeric)
		assert.Equal(t, "2000", b.Amount.String())
	})

	t.Run("parenthesized negative", func(t *testing.T) {
		b := BalanceOf(worksheet.TextCell("(55.10)"))
		assert.True(t, b.Numeric)
		assert.Equal(t, "-55.1", b.Amount.String())
	})

	t.Run("unparseable text kept raw", func(t *testing.T) {
		b := BalanceOf(worksheet.TextCell("see notes"))
		assert.False(t, b.Numeric)
		assert.Equal(t, "see notes", b.Raw)
	})

	t.Run("infinity spelling kept raw", func(t *testing.T) {
		b := BalanceOf(worksheet.FromRaw("Infinity"))
		assert.False(t, b.Numeric)
		assert.Equal(t, "Infinity", b.Raw)
	})

	t.Run("empty cell is numeric zero", func(t *testing.T) {
		b := BalanceOf(worksheet.Cell{})
		assert.True(t, b.Numeric)
		assert.True(t, b.Amount.IsZero())
	})
}

func TestMonthName(t *testing.T) {
	tests := []struct {
		name string
		cell worksheet.Cell
		want string
	}{
		{name: "text passes through", cell: worksheet.TextCell("August"), want: "August"},
		{name: "text trimmed", cell: worksheet.TextCell(" July "), want: "July"},
		{name: "serial date resolves to month", cell: worksheet.NumberCell(45870), want: "August"},
		{name: "empty cell", cell: worksheet.Cell{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthName(tt.cell))
		})
	}
}

func TestYear(t *testing.T) {
	tests := []struct {
		name string
		cell worksheet.Cell
		want string
	}{
		{name: "bare year text", cell: worksheet.TextCell("2025"), want: "2025"},
		{name: "year embedded in text", cell: worksheet.TextCell("FY 2025 statement"), want: "2025"},
		{name: "trailing short year", cell: worksheet.TextCell("08/25"), want: "2025"},
		{name: "unresolvable text kept verbatim", cell: worksheet.TextCell("unknown"), want: "unknown"},
		{name: "numeric direct year", cell: worksheet.NumberCell(2025), want: "2025"},
		{name: "numeric serial date", cell: worksheet.NumberCell(45870), want: "2025"},
		{name: "numeric below serial floor floored", cell: worksheet.NumberCell(125.7), want: "125"},
		{name: "empty cell", cell: worksheet.Cell{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Year(tt.cell))
		})
	}
}
