package models

import "time"

// DatedFolder is a drop folder whose name parsed as a date.
type DatedFolder struct {
	// Date is the calendar date encoded in the folder name.
	Date time.Time
	// Path is the folder path.
	Path string
}
