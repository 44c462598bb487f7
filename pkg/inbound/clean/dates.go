// Package clean holds the per-source table transforms.
//
// Every cleaner is pure: it returns a modified copy and never fails. Cells it
// cannot interpret become nil.
package clean

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/inbound-go/pkg/inbound/models"
)

// Largest serial excel can display (12/31/9999).
const maxExcelSerial = 2958465

// CoerceDate converts v to a calendar date at midnight UTC, or nil.
// Numbers are read as Excel 1900-system serials; strings are parsed
// month-first. Digit-only strings of 4, 8 or 14 digits are yyyy, yyyymmdd
// and yyyymmddhhmmss; other numeric strings are serials.
func CoerceDate(v any) (out any) {
	defer func() {
		if recover() != nil {
			out = nil
		}
	}()

	switch x := v.(type) {
	case nil:
		return nil
	case time.Time:
		if x.IsZero() {
			return nil
		}
		return day(x)
	case int64:
		return fromSerial(float64(x))
	case int:
		return fromSerial(float64(x))
	case float64:
		return fromSerial(x)
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && !compactDate(s) {
			return fromSerial(f)
		}
		t, err := dateparse.ParseIn(s, time.UTC)
		if err != nil {
			return nil
		}
		return day(t)
	default:
		return nil
	}
}

func compactDate(s string) bool {
	switch len(s) {
	case 4, 8, 14:
	default:
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func fromSerial(f float64) any {
	if math.IsNaN(f) || f < 1 || f > maxExcelSerial {
		return nil
	}
	t, err := excelize.ExcelDateToTime(f, false)
	if err != nil {
		return nil
	}
	return day(t)
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// coerceColumns applies CoerceDate to the given column positions. Positions
// outside the table are ignored.
func coerceColumns(t *models.Table, cols ...int) {
	for _, col := range cols {
		if col < 0 || col >= t.Width() {
			continue
		}
		for _, row := range t.Rows {
			if col < len(row) {
				row[col] = CoerceDate(row[col])
			}
		}
	}
}

// span returns the positions from..to inclusive.
func span(from, to int) []int {
	var cols []int
	for i := from; i <= to; i++ {
		cols = append(cols, i)
	}
	return cols
}
