package extract

import (
	"mpreview/internal/worksheet"
	"mpreview/pkg/contracts/domain"
)

// Records maps every qualifying data row of a sheet through mapRow, in row
// order. The first row is header metadata and is always dropped. A row
// qualifies only when it is non-empty and its case-id cell has content;
// everything else is silently skipped, since a sparse sheet is partially
// empty rather than malformed. A sheet with fewer than two rows yields an
// empty, non-nil slice.
func Records[T any](sheet *worksheet.Sheet, s Schema, mapRow func(worksheet.Row) T) []T {
	out := make([]T, 0)
	if sheet == nil || len(sheet.Rows) < 2 {
		return out
	}
	for _, row := range sheet.Rows[1:] {
		if len(row) == 0 {
			continue
		}
		if Text(cellAt(row, s, FieldCaseID)) == "" {
			continue
		}
		out = append(out, mapRow(row))
	}
	return out
}

// MPRecords extracts the Merchant Pulse record sequence from a sheet.
func MPRecords(sheet *worksheet.Sheet, s Schema, link LinkResolver) []domain.MPRecord {
	return Records(sheet, s, func(row worksheet.Row) domain.MPRecord {
		return MapMP(row, s, link)
	})
}

// KYMRecords extracts the KYM record sequence from a sheet.
func KYMRecords(sheet *worksheet.Sheet, s Schema, link LinkResolver) []domain.KYMRecord {
	return Records(sheet, s, func(row worksheet.Row) domain.KYMRecord {
		return MapKYM(row, s, link)
	})
}
