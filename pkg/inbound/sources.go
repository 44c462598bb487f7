package inbound

import (
	"github.com/ukaji3/inbound-go/pkg/inbound/clean"
	"github.com/ukaji3/inbound-go/pkg/inbound/models"
	"github.com/ukaji3/inbound-go/pkg/inbound/parser"
)

var (
	csvFile  = models.Candidate{Ext: "csv", Parse: parser.ParseCSV}
	xlsFile  = models.Candidate{Ext: "xls", Parse: parser.ParseXLS}
	xlsxFile = models.Candidate{Ext: "xlsx", Parse: parser.ParseXLSX}
)

// Sources returns the weekly feeds, in the order their sheets are written.
func Sources() []models.Source {
	return []models.Source{
		{
			Name:       "erp",
			Prefix:     "ERP_Open_PO",
			Sheet:      "ERP",
			Candidates: []models.Candidate{csvFile, xlsxFile},
			Options:    models.ParseOptions{Encoding: "windows-1252"},
		},
		{
			Name:       "forwarder",
			Prefix:     "Forwarder_Report",
			Sheet:      "Forwarder",
			Candidates: []models.Candidate{xlsxFile, xlsFile},
			Options:    models.ParseOptions{SkipRows: 2},
		},
		{
			Name:        "portal",
			Prefix:      "Portal_Shipments",
			Sheet:       "Portal",
			Candidates:  []models.Candidate{xlsxFile, xlsFile},
			Postprocess: clean.Portal,
		},
		{
			Name:        "carrier",
			Prefix:      "Carrier_Tracking",
			Sheet:       "Carrier",
			Candidates:  []models.Candidate{xlsxFile, csvFile},
			Postprocess: clean.Carrier,
		},
		{
			Name:        "status",
			Prefix:      "Container_Status",
			Sheet:       "Status",
			Candidates:  []models.Candidate{xlsFile, xlsxFile},
			Postprocess: clean.Status,
		},
	}
}
