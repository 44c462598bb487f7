package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/ukaji3/inbound-go/pkg/inbound/models"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestParseCSV(t *testing.T) {
	path := writeFile(t, "ERP_Open_PO.csv", []byte("\xEF\xBB\xBFPO Number,Qty,Ship Date\nPO-1,12,01/02/2025\nPO-2,,\n"))

	table, err := ParseCSV(path, models.ParseOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"PO Number", "Qty", "Ship Date"}, table.Columns)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, []any{"PO-1", int64(12), "01/02/2025"}, table.Rows[0])
	assert.Equal(t, []any{"PO-2", nil, nil}, table.Rows[1])
}

func TestParseCSVOptions(t *testing.T) {
	body := "Report generated by ERP\n\nLieferant;Menge\nMüller GmbH;3\n"
	encoded, err := charmap.Windows1252.NewEncoder().String(body)
	require.NoError(t, err)

	path := writeFile(t, "ERP_Suppliers.csv", []byte(encoded))

	table, err := ParseCSV(path, models.ParseOptions{
		SkipRows:  2,
		Encoding:  "windows-1252",
		Delimiter: ';',
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Lieferant", "Menge"}, table.Columns)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "Müller GmbH", table.Rows[0][0])
	assert.Equal(t, int64(3), table.Rows[0][1])
}

func TestParseCSVErrors(t *testing.T) {
	_, err := ParseCSV(filepath.Join(t.TempDir(), "missing.csv"), models.ParseOptions{})
	assert.Error(t, err)

	path := writeFile(t, "empty.csv", nil)
	_, err = ParseCSV(path, models.ParseOptions{})
	assert.Error(t, err)

	path = writeFile(t, "enc.csv", []byte("a,b\n1,2\n"))
	_, err = ParseCSV(path, models.ParseOptions{Encoding: "klingon"})
	assert.Error(t, err)
}

func TestParseCSVRaggedRows(t *testing.T) {
	path := writeFile(t, "ERP_Open_PO.csv", []byte("PO,Qty,Note\nPO-1,1,x\nPO-2,2\nPO-3,3,y,extra\n"))

	table, err := ParseCSV(path, models.ParseOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"PO", "Qty", "Note", ""}, table.Columns)
	assert.Equal(t, [][]any{
		{"PO-1", int64(1), "x", nil},
		{"PO-2", int64(2), nil, nil},
		{"PO-3", int64(3), "y", "extra"},
	}, table.Rows)
}

func TestParseCSVKeepsHeaderNames(t *testing.T) {
	path := writeFile(t, "Carrier_Tracking.csv", []byte("Date,Date,,Master BL\n1,2,3,0251234\n"))

	table, err := ParseCSV(path, models.ParseOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Date", "Date", "", "Master BL"}, table.Columns)
	assert.Equal(t, 3, table.ColumnIndex("Master BL"))
	require.Equal(t, 1, table.Len())
	assert.Equal(t, int64(3), table.Rows[0][2])
}

func TestParseCSVHeaderOnly(t *testing.T) {
	path := writeFile(t, "Portal_Shipments.csv", []byte("Container,ETA\n"))

	table, err := ParseCSV(path, models.ParseOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Container", "ETA"}, table.Columns)
	assert.Equal(t, 0, table.Len())
}
