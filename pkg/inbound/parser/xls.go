package parser

import (
	"fmt"
	"os"

	"github.com/extrame/xls"

	"github.com/ukaji3/inbound-go/pkg/inbound/models"
)

// ParseXLS reads a legacy BIFF (.xls) workbook.
func ParseXLS(path string, opts models.ParseOptions) (*models.Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	wb, err := xls.OpenReader(fh, "utf-8")
	if err != nil {
		return nil, err
	}
	if wb == nil {
		return nil, fmt.Errorf("%s: no workbook stream", path)
	}

	var sheet *xls.WorkSheet
	if opts.Sheet == "" {
		sheet = wb.GetSheet(0)
	} else {
		for i := 0; i < wb.NumSheets(); i++ {
			if s := wb.GetSheet(i); s != nil && s.Name == opts.Sheet {
				sheet = s
				break
			}
		}
	}
	if sheet == nil {
		return nil, fmt.Errorf("sheet %q not found", opts.Sheet)
	}

	grid := make([]*xls.Row, int(sheet.MaxRow)+1)
	width := 0
	for i := range grid {
		grid[i] = rowAt(sheet, i)
		if grid[i] != nil && grid[i].LastCol() > width {
			width = grid[i].LastCol()
		}
	}

	rows := make([][]string, len(grid))
	for i, row := range grid {
		if row == nil {
			continue
		}
		// Cells written without a ROW record report no columns.
		last := row.LastCol()
		if last == 0 {
			last = width
		}
		cells := make([]string, last)
		for j := range cells {
			cells[j] = row.Col(j)
		}
		rows[i] = cells
	}

	return rowsToTable(rows, opts.SkipRows, nil)
}

// rowAt returns row i of sheet, or nil when the sheet has no such row.
func rowAt(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}
