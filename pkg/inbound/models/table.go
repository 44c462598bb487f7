// Package models defines the data structures passed between the pipeline stages.
package models

// Table is one loaded (and possibly cleaned) dataset.
//
// Cells hold nil (missing), string, int64, float64, bool or time.Time values.
// Rows may be ragged; Values pads them to the column count.
type Table struct {
	// Name is the source name the table was loaded for.
	Name string
	// Columns is the ordered header row.
	Columns []string
	// Rows holds the data rows, excluding the header.
	Rows [][]any
}

// Width returns the number of columns.
func (t *Table) Width() int {
	return len(t.Columns)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at (row, col), or nil when out of range.
func (t *Table) Cell(row, col int) any {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return nil
	}
	return t.Rows[row][col]
}

// Clone returns a deep copy of the header and row slices. Cell values are
// immutable scalars so they are shared.
func (t *Table) Clone() *Table {
	out := &Table{
		Name:    t.Name,
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]any, len(t.Rows)),
	}
	for i, row := range t.Rows {
		out.Rows[i] = append([]any(nil), row...)
	}
	return out
}

// DropColumns removes the named columns in place. Unknown names are ignored.
func (t *Table) DropColumns(names ...string) {
	drop := make(map[int]bool)
	for _, name := range names {
		if ix := t.ColumnIndex(name); ix >= 0 {
			drop[ix] = true
		}
	}
	if len(drop) == 0 {
		return
	}

	columns := make([]string, 0, len(t.Columns)-len(drop))
	for i, c := range t.Columns {
		if !drop[i] {
			columns = append(columns, c)
		}
	}
	t.Columns = columns

	for r, row := range t.Rows {
		kept := make([]any, 0, len(row))
		for i, v := range row {
			if !drop[i] {
				kept = append(kept, v)
			}
		}
		t.Rows[r] = kept
	}
}

// InsertColumn inserts a column at position pos in place. A position past the
// last column appends. values is indexed by row; missing entries become nil.
func (t *Table) InsertColumn(pos int, name string, values []any) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(t.Columns) {
		pos = len(t.Columns)
	}

	t.Columns = append(t.Columns[:pos], append([]string{name}, t.Columns[pos:]...)...)

	for r, row := range t.Rows {
		var v any
		if r < len(values) {
			v = values[r]
		}
		if len(row) < pos {
			row = append(row, make([]any, pos-len(row))...)
		}
		t.Rows[r] = append(row[:pos], append([]any{v}, row[pos:]...)...)
	}
}

// Values returns the data rows padded to the column count, ready to be
// written row-major into a sheet.
func (t *Table) Values() [][]any {
	out := make([][]any, len(t.Rows))
	for i, row := range t.Rows {
		padded := make([]any, len(t.Columns))
		copy(padded, row)
		if len(row) > len(t.Columns) {
			padded = append(padded, row[len(t.Columns):]...)
		}
		out[i] = padded
	}
	return out
}
