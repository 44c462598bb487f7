package clean

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ukaji3/inbound-go/pkg/inbound/models"
)

// MasterBLColumn holds the master bill of lading number.
const MasterBLColumn = "Master BL"

// carrierDropColumns are free-text columns not carried into the report.
var carrierDropColumns = []string{"Booking Party", "Remarks"}

// CarrierPrefix maps a bill of lading number prefix to the issuing carrier's
// SCAC code.
type CarrierPrefix struct {
	Prefix string
	SCAC   string
}

// CarrierPrefixes are the carriers whose portal drops the SCAC from the
// master bill of lading.
var CarrierPrefixes = []CarrierPrefix{
	{Prefix: "BO", SCAC: "HLCU"},
	{Prefix: "BOM", SCAC: "HDMU"},
	{Prefix: "NGB", SCAC: "EGLV"},
	{Prefix: "SHA", SCAC: "COSU"},
	{Prefix: "SZ", SCAC: "ONEY"},
	{Prefix: "SZX", SCAC: "OOLU"},
	{Prefix: "TXG", SCAC: "YMLU"},
	{Prefix: "25", SCAC: "MAEU"},
}

// Carrier normalises the carrier tracking report.
func Carrier(t *models.Table) *models.Table {
	if t == nil {
		return nil
	}
	out := t.Clone()

	out.DropColumns(carrierDropColumns...)

	if ix := out.ColumnIndex(MasterBLColumn); ix >= 0 {
		prefixes := longestFirst(CarrierPrefixes)
		for _, row := range out.Rows {
			if ix < len(row) {
				row[ix] = RewriteMasterBL(row[ix], prefixes)
			}
		}
	}

	coerceColumns(out, span(8, 11)...)

	return out
}

// RewriteMasterBL prepends the SCAC of the first matching prefix. prefixes
// must already be ordered longest first. Values that already start with one
// of the SCAC codes, and values matching no prefix, are returned unchanged.
func RewriteMasterBL(v any, prefixes []CarrierPrefix) any {
	var s string
	switch x := v.(type) {
	case string:
		s = strings.TrimSpace(x)
	case int64:
		s = strconv.FormatInt(x, 10)
	default:
		return v
	}
	if s == "" {
		return v
	}

	for _, p := range prefixes {
		if strings.HasPrefix(s, p.SCAC) {
			return s
		}
	}

	for _, p := range prefixes {
		if strings.HasPrefix(s, p.Prefix) {
			return p.SCAC + s
		}
	}

	return v
}

// longestFirst orders prefixes by descending length, keeping declaration
// order between prefixes of equal length.
func longestFirst(prefixes []CarrierPrefix) []CarrierPrefix {
	out := append([]CarrierPrefix(nil), prefixes...)
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].Prefix) > len(out[j].Prefix)
	})
	return out
}
