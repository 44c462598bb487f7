package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/inbound-go/pkg/inbound/models"
)

// ParseXLSX reads an Office Open XML workbook (.xlsx/.xlsm).
// Cell values are read raw so dates arrive as Excel serial numbers. Text
// cells stay strings even when they look numeric.
func ParseXLSX(path string, opts models.ParseOptions) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetName := opts.Sheet
	if sheetName == "" {
		sheetList := f.GetSheetList()
		if len(sheetList) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheetName = sheetList[0]
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	return rowsToTable(rows, opts.SkipRows, typedCell(f, sheetName))
}

// typedCell converts raw cell text according to the cell's stored type.
func typedCell(f *excelize.File, sheet string) cellFunc {
	return func(row, col int, raw string) any {
		if strings.TrimSpace(raw) == "" {
			return nil
		}

		ref, err := excelize.CoordinatesToCellName(col+1, row+1)
		if err != nil {
			return parseValue(raw)
		}
		cellType, err := f.GetCellType(sheet, ref)
		if err != nil {
			return parseValue(raw)
		}

		switch cellType {
		case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
			return raw
		case excelize.CellTypeBool:
			return raw == "1" || raw == "TRUE" || raw == "true"
		default:
			return parseValue(raw)
		}
	}
}
