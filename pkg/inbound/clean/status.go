package clean

import "github.com/ukaji3/inbound-go/pkg/inbound/models"

// Status normalises the forwarder container status report, whose milestone
// dates sit in the fifth to eighth columns.
func Status(t *models.Table) *models.Table {
	if t == nil {
		return nil
	}
	out := t.Clone()

	coerceColumns(out, span(4, 7)...)

	return out
}
