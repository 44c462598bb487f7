package models

import "sort"

// SheetTables maps an output worksheet name to its table. A nil table marks a
// source that could not be loaded; its sheet is skipped when writing.
type SheetTables map[string]*Table

// Names returns the sheet names in the order given by order, followed by any
// sheet not mentioned in order.
func (s SheetTables) Names(order []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, name := range order {
		if _, ok := s[name]; ok && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	var rest []string
	for name := range s {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}
