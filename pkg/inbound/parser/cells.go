// Package parser reads source files (CSV, XLS, XLSX) into tables.
package parser

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/inbound-go/pkg/inbound/models"
)

// ErrNoHeader indicates a file without a header row after the skipped rows.
var ErrNoHeader = errors.New("no header row")

// cellFunc converts the raw text of the cell at (row, col) of the source grid.
type cellFunc func(row, col int, raw string) any

// rowsToTable turns a raw string grid into a Table.
// The first row after skip is the header; blank rows are dropped.
// A nil convert applies parseValue to every cell.
func rowsToTable(rows [][]string, skip int, convert cellFunc) (*models.Table, error) {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(rows) {
		return nil, ErrNoHeader
	}
	rows = trimGrid(rows[skip:])
	if len(rows) == 0 || isBlank(rows[0]) {
		return nil, ErrNoHeader
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}

	table := &models.Table{
		Columns: header,
		Rows:    make([][]any, 0, len(rows)-1),
	}

	for r, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		record := make([]any, len(row))
		for i, cellValue := range row {
			if convert == nil {
				record[i] = parseValue(cellValue)
			} else {
				record[i] = convert(skip+r+1, i, cellValue)
			}
		}
		table.Rows = append(table.Rows, record)
	}

	return table, nil
}

// parseValue attempts to parse a string value as a number.
// Returns nil for blank cells, int64 for integers, float64 for decimals,
// or the original string.
func parseValue(s string) interface{} {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(f) {
			return nil
		}
		if !math.IsInf(f, 0) {
			return f
		}
	}
	// Return as string
	return s
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
