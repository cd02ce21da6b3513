// Package worksheet models a decoded spreadsheet as ordered rows of typed
// cells. Cells form a small closed variant (Empty | Text | Number) so that
// runtime type inspection stays here and in the coercers instead of leaking
// into the row mapper.
package worksheet

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies the variant a Cell holds.
type Kind int

const (
	Empty Kind = iota
	Text
	Number
)

// Cell is one spreadsheet cell. Raw always holds the display form as stored
// in the workbook; Num is only meaningful when Kind is Number.
type Cell struct {
	Kind Kind
	Raw  string
	Num  float64
}

// TextCell builds a text cell.
func TextCell(s string) Cell {
	return Cell{Kind: Text, Raw: s}
}

// NumberCell builds a numeric cell.
func NumberCell(v float64) Cell {
	return Cell{Kind: Number, Raw: strconv.FormatFloat(v, 'f', -1, 64), Num: v}
}

// FromRaw classifies a raw stored value into the cell variant. Spreadsheet
// serial dates and plain numbers are both stored as numeric text, so anything
// that parses as a finite float is a Number cell. ParseFloat also accepts
// "inf", "infinity" and "nan" spellings; those are not amounts a workbook can
// hold, so they stay text.
func FromRaw(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Cell{}
	}
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Cell{Kind: Text, Raw: raw}
		}
		return Cell{Kind: Number, Raw: trimmed, Num: v}
	}
	return Cell{Kind: Text, Raw: raw}
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == Empty
}

// Row is one ordered worksheet row.
type Row []Cell

// Sheet is a fully decoded worksheet snapshot.
type Sheet struct {
	Name string
	Rows []Row
}
