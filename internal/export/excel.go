// Package export turns report tables into downloadable files.
package export

import (
	"bytes"
	"fmt"

	"incentivehub/internal/report"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Datos"

// Workbook renders a report table into a single-sheet xlsx file. Headers go
// on row 1; rows follow in table order with cells looked up by header key.
func Workbook(table report.Table) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for col, header := range table.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, err
		}
	}

	for i, row := range table.Rows {
		for col, header := range table.Headers {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, row[header]); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}
