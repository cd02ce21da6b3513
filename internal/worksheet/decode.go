package worksheet

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrEmptyWorkbook indicates the downloaded byte buffer held no data.
	ErrEmptyWorkbook = errors.New("workbook buffer is empty")
	// ErrNoSheets indicates a workbook without any worksheets.
	ErrNoSheets = errors.New("workbook contains no sheets")
)

// Decode parses an xlsx byte buffer and returns the named worksheet as typed
// rows. An empty sheetName selects the first sheet in the workbook. Cells are
// read as raw stored values so numeric cells (including serial dates) keep
// their numeric identity.
func Decode(data []byte, sheetName string) (*Sheet, error) {
	if len(data) == 0 {
		return nil, ErrEmptyWorkbook
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoSheets
		}
		sheetName = sheets[0]
	}

	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	rows := make([]Row, 0, len(raw))
	for _, rawRow := range raw {
		row := make(Row, 0, len(rawRow))
		for _, value := range rawRow {
			row = append(row, FromRaw(value))
		}
		rows = append(rows, row)
	}

	return &Sheet{Name: sheetName, Rows: rows}, nil
}
