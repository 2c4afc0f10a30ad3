package utils

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelColumn adalah satu kolom export beserta lebarnya.
type ExcelColumn struct {
	Header string
	Width  float64
}

// GenerateExcel membuat file xlsx satu sheet: baris 1 header bergaya,
// baris berikutnya data. Nilai nil dibiarkan kosong.
func GenerateExcel(sheetName string, columns []ExcelColumn, rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat sheet: %w", err)
	}
	if sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#2E7D32"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("gagal membuat style header: %w", err)
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, col.Header); err != nil {
			return nil, fmt.Errorf("gagal menulis header %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, err
		}
		if col.Width > 0 {
			name, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return nil, err
			}
			if err := f.SetColWidth(sheetName, name, name, col.Width); err != nil {
				return nil, err
			}
		}
	}

	for r, row := range rows {
		for c, value := range row {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("gagal menulis baris %d kolom %d: %w", r+2, c+1, err)
			}
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("gagal menulis file excel: %w", err)
	}
	return buf.Bytes(), nil
}
