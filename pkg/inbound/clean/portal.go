package clean

import (
	"time"

	"github.com/ukaji3/inbound-go/pkg/inbound/models"
)

const (
	// ETAColumn is the portal's arrival date at the last container yard or
	// freight station.
	ETAColumn = "ETA-Last CY/CFS Location"
	// ExpectedDeliveryColumn is derived from ETAColumn.
	ExpectedDeliveryColumn = "Expected Delivery Date"

	expectedDeliveryPos = 10
	deliveryLeadDays    = 5
)

// portalDateColumns are the departure, arrival and discharge dates.
var portalDateColumns = []int{5, 6, 7}

// Portal normalises the carrier portal shipment export.
func Portal(t *models.Table) *models.Table {
	if t == nil {
		return nil
	}
	out := t.Clone()

	coerceColumns(out, portalDateColumns...)

	eta := out.ColumnIndex(ETAColumn)
	expected := make([]any, out.Len())
	for i := range out.Rows {
		if eta < 0 {
			continue
		}
		if d, ok := CoerceDate(out.Cell(i, eta)).(time.Time); ok {
			expected[i] = d.AddDate(0, 0, deliveryLeadDays)
		}
	}

	out.InsertColumn(expectedDeliveryPos, ExpectedDeliveryColumn, expected)

	return out
}
