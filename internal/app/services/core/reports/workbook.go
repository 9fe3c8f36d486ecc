package reports

import (
	"github.com/xuri/excelize/v2"
)

const defaultSheetName = "Sheet1"

type sheet struct {
	Name    string
	Headers []string
	Rows    [][]interface{}
}

// renderWorkbook writes one worksheet per sheet, each with a bold header row.
func renderWorkbook(sheets []sheet) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	headerStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	for i, s := range sheets {
		if i == 0 {
			if err := file.SetSheetName(defaultSheetName, s.Name); err != nil {
				return nil, err
			}
		} else if _, err := file.NewSheet(s.Name); err != nil {
			return nil, err
		}

		if err := writeRow(file, s.Name, 1, toCells(s.Headers)); err != nil {
			return nil, err
		}
		if err := file.SetRowStyle(s.Name, 1, 1, headerStyle); err != nil {
			return nil, err
		}
		for r, row := range s.Rows {
			if err := writeRow(file, s.Name, r+2, row); err != nil {
				return nil, err
			}
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func writeRow(file *excelize.File, sheetName string, row int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return file.SetSheetRow(sheetName, cell, &cells)
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, value := range values {
		cells[i] = value
	}
	return cells
}
