package worksheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, sheet string, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		require.NoError(t, f.SetSheetName("Sheet1", sheet))
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	data := buildWorkbook(t, "querry", [][]interface{}{
		{"Case ID", "Amount"},
		{"case-1", 1234.5},
		{"case-2", "pending"},
	})

	sheet, err := Decode(data, "querry")
	require.NoError(t, err)

	assert.Equal(t, "querry", sheet.Name)
	require.Len(t, sheet.Rows, 3)

	assert.Equal(t, Text, sheet.Rows[1][0].Kind)
	assert.Equal(t, "case-1", sheet.Rows[1][0].Raw)
	assert.Equal(t, Number, sheet.Rows[1][1].Kind)
	assert.Equal(t, 1234.5, sheet.Rows[1][1].Num)
	assert.Equal(t, Text, sheet.Rows[2][1].Kind)
}

func TestDecodeDefaultsToFirstSheet(t *testing.T) {
	data := buildWorkbook(t, "querry", [][]interface{}{
		{"Case ID"},
		{"case-1"},
	})

	sheet, err := Decode(data, "")
	require.NoError(t, err)
	assert.Equal(t, "querry", sheet.Name)
	assert.Len(t, sheet.Rows, 2)
}

func TestDecodeErrors(t *testing.T) {
	t.Run("empty buffer", func(t *testing.T) {
		_, err := Decode(nil, "")
		assert.ErrorIs(t, err, ErrEmptyWorkbook)
	})

	t.Run("not an xlsx file", func(t *testing.T) {
		_, err := Decode([]byte("this is not a workbook"), "")
		assert.Error(t, err)
	})

	t.Run("unknown sheet", func(t *testing.T) {
		data := buildWorkbook(t, "querry", [][]interface{}{{"Case ID"}})
		_, err := Decode(data, "missing")
		assert.Error(t, err)
	})
}
