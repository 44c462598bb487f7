package models

import (
	"errors"
	"testing"
)

func parseNothing(string, ParseOptions) (*Table, error) {
	return &Table{}, nil
}

func TestValidateSources(t *testing.T) {
	valid := func() Source {
		return Source{
			Name:       "erp",
			Prefix:     "ERP_Open_PO",
			Sheet:      "ERP",
			Candidates: []Candidate{{Ext: "csv", Parse: parseNothing}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Source, *Source)
		invalid bool
	}{
		{"valid", func(a, b *Source) {}, false},
		{"no name", func(a, b *Source) { a.Name = "" }, true},
		{"duplicate name", func(a, b *Source) { b.Name = a.Name }, true},
		{"blank prefix", func(a, b *Source) { a.Prefix = " " }, true},
		{"duplicate sheet", func(a, b *Source) { b.Sheet = a.Sheet }, true},
		{"no candidates", func(a, b *Source) { a.Candidates = nil }, true},
		{"no extension", func(a, b *Source) { a.Candidates[0].Ext = "." }, true},
		{"no parser", func(a, b *Source) { a.Candidates[0].Parse = nil }, true},
		{"shared prefix", func(a, b *Source) { b.Prefix = a.Prefix }, false},
	}

	for _, tt := range tests {
		a, b := valid(), valid()
		b.Name, b.Sheet = "portal", "Portal"
		tt.mutate(&a, &b)

		err := ValidateSources([]Source{a, b})
		if tt.invalid && !errors.Is(err, ErrInvalidSource) {
			t.Errorf("%s: expected ErrInvalidSource, got %v", tt.name, err)
		}
		if !tt.invalid && err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
	}
}

func TestPrefixes(t *testing.T) {
	sources := []Source{{Prefix: "ERP"}, {Prefix: "Portal"}, {Prefix: "ERP"}}

	got := Prefixes(sources)
	if len(got) != 2 || got[0] != "ERP" || got[1] != "Portal" {
		t.Errorf("Prefixes() = %v", got)
	}
}
