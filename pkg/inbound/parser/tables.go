package parser

import "strings"

// trimGrid drops trailing blank rows and cuts every row at the last
// column holding data anywhere in the grid.
func trimGrid(rows [][]string) [][]string {
	_, maxRow, _, maxCol := findDataBounds(rows)
	if maxRow < 0 {
		return nil
	}

	out := make([][]string, maxRow+1)
	for i := 0; i <= maxRow; i++ {
		row := rows[i]
		if len(row) > maxCol+1 {
			row = row[:maxCol+1]
		}
		out[i] = row
	}
	return out
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
