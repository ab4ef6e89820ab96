// Package spreadsheet converts workbooks to and from plain row matrices so
// the parsing and cleaning code never touches a workbook library directly.
package spreadsheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadMatrix reads a workbook into a rectangular matrix of raw cell values.
// The first sheet is used unless sheetName names another one. Raw values
// preserve day-fraction time serials as numeric strings instead of the
// sheet's display formatting; row 0 is data, not a field-name header.
func ReadMatrix(r io.Reader, sheetName string) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheetName = sheets[0]
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
	}
	return rows, nil
}

// WriteMatrix serializes a row matrix into a single-sheet workbook and
// returns the file bytes, for cleaned-spreadsheet downloads.
func WriteMatrix(sheetName string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// NewFile starts with "Sheet1"; rename it rather than juggling indexes.
	if sheetName != "" && sheetName != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheetName); err != nil {
			return nil, fmt.Errorf("rename sheet: %w", err)
		}
	} else if sheetName == "" {
		sheetName = "Sheet1"
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
