package clean

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/inbound-go/pkg/inbound/models"
)

func portalTable() *models.Table {
	columns := []string{
		"Shipment", "Shipper", "Consignee", "POL", "POD",
		"ETD", "ATD", ETAColumn, "Vessel", "Voyage", "Container", "Status",
	}
	row := func(id, etd, atd string, eta any) []any {
		return []any{id, "Acme", "Contoso", "CNSHA", "USLAX", etd, atd, eta, "EVER GIVEN", "045E", "EGHU1234567", "In transit"}
	}
	return &models.Table{
		Name:    "portal",
		Columns: columns,
		Rows: [][]any{
			row("S1", "12/20/2023", "12/21/2023", "2024-01-01"),
			row("S2", "garbage", "", "TBD"),
			row("S3", "", "", int64(45292)),
		},
	}
}

func TestPortal(t *testing.T) {
	in := portalTable()
	out := Portal(in)
	require.NotNil(t, out)

	assert.Equal(t, 13, out.Width())
	assert.Equal(t, ExpectedDeliveryColumn, out.Columns[10])
	assert.Equal(t, "Container", out.Columns[11])

	assert.Equal(t, date(2024, 1, 6), out.Rows[0][10])
	assert.Equal(t, date(2023, 12, 20), out.Rows[0][5])
	assert.Equal(t, date(2023, 12, 21), out.Rows[0][6])
	assert.Equal(t, date(2024, 1, 1), out.Rows[0][7])

	assert.Nil(t, out.Rows[1][5])
	assert.Nil(t, out.Rows[1][6])
	assert.Nil(t, out.Rows[1][7])
	assert.Nil(t, out.Rows[1][10])

	assert.Equal(t, date(2024, 1, 6), out.Rows[2][10])

	// input untouched
	assert.Equal(t, 12, in.Width())
	assert.Equal(t, "2024-01-01", in.Rows[0][7])
}

func TestPortalNarrowTable(t *testing.T) {
	in := &models.Table{
		Columns: []string{ETAColumn},
		Rows:    [][]any{{"2024-01-01"}, {}},
	}

	out := Portal(in)
	require.NotNil(t, out)

	assert.Equal(t, []string{ETAColumn, ExpectedDeliveryColumn}, out.Columns)
	assert.Equal(t, date(2024, 1, 6), out.Rows[0][1])
	assert.Equal(t, []any{nil, nil}, out.Rows[1])
}

func TestPortalWithoutETA(t *testing.T) {
	in := &models.Table{Columns: []string{"A", "B"}, Rows: [][]any{{"x", "y"}}}

	out := Portal(in)
	assert.Equal(t, []any{"x", "y", nil}, out.Rows[0])
	assert.Nil(t, Portal(nil))
}

func TestCleanersNeverPanic(t *testing.T) {
	odd := []any{nil, "", "??", int64(-1), 1e300, true, struct{}{}, []byte("x")}
	columns := make([]string, 14)
	for i := range columns {
		columns[i] = fmt.Sprintf("C%d", i)
	}
	columns[3] = ETAColumn
	columns[4] = MasterBLColumn

	in := &models.Table{Columns: columns}
	for _, v := range odd {
		row := make([]any, len(columns))
		for i := range row {
			row[i] = v
		}
		in.Rows = append(in.Rows, row)
	}
	in.Rows = append(in.Rows, []any{}, []any{"short"})

	assert.NotPanics(t, func() {
		Portal(in)
		Carrier(in)
		Status(in)
	})
}
