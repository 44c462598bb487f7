package models

import (
	"errors"
	"fmt"
	"strings"
)

// ParseFunc reads the file at path into a Table.
type ParseFunc func(path string, opts ParseOptions) (*Table, error)

// TransformFunc is a postprocessing step applied to a freshly parsed Table.
type TransformFunc func(*Table) *Table

// ParseOptions carries parser keyword arguments.
type ParseOptions struct {
	// Sheet selects a worksheet by name (spreadsheet formats). Empty means the first sheet.
	Sheet string
	// SkipRows is the number of rows above the header row to discard.
	SkipRows int
	// Encoding names the text encoding of CSV files (e.g. "windows-1252"). Empty means UTF-8.
	Encoding string
	// Delimiter is the CSV field separator. Zero means ','.
	Delimiter rune
}

// Candidate is one (extension, parser) pair tried when locating a source file.
type Candidate struct {
	// Ext is the file extension without the leading dot, e.g. "xlsx".
	Ext string
	// Parse reads a matched file.
	Parse ParseFunc
}

// Source describes one upstream data feed.
type Source struct {
	// Name is the unique key of the source.
	Name string
	// Prefix is the leading part of the file names belonging to the source.
	Prefix string
	// Sheet is the template worksheet the cleaned table is written to.
	Sheet string
	// Candidates are tried in order; the first extension with a matching file wins.
	Candidates []Candidate
	// Options are passed to the parser.
	Options ParseOptions
	// Postprocess is optional.
	Postprocess TransformFunc
}

// ErrInvalidSource is wrapped by every ValidateSources failure.
var ErrInvalidSource = errors.New("invalid source configuration")

// ValidateSources checks a source table once at startup.
func ValidateSources(sources []Source) error {
	names := make(map[string]bool)
	sheets := make(map[string]bool)

	for i, src := range sources {
		if src.Name == "" {
			return fmt.Errorf("%w: source #%d has no name", ErrInvalidSource, i+1)
		}
		if names[src.Name] {
			return fmt.Errorf("%w: duplicate source %q", ErrInvalidSource, src.Name)
		}
		names[src.Name] = true

		if strings.TrimSpace(src.Prefix) == "" {
			return fmt.Errorf("%w: source %q has no file prefix", ErrInvalidSource, src.Name)
		}

		if src.Sheet != "" {
			if sheets[src.Sheet] {
				return fmt.Errorf("%w: sheet %q is bound to more than one source", ErrInvalidSource, src.Sheet)
			}
			sheets[src.Sheet] = true
		}

		if len(src.Candidates) == 0 {
			return fmt.Errorf("%w: source %q has no file candidates", ErrInvalidSource, src.Name)
		}
		for _, c := range src.Candidates {
			if strings.TrimPrefix(c.Ext, ".") == "" {
				return fmt.Errorf("%w: source %q has a candidate without extension", ErrInvalidSource, src.Name)
			}
			if c.Parse == nil {
				return fmt.Errorf("%w: source %q has no parser for %q", ErrInvalidSource, src.Name, c.Ext)
			}
		}
	}

	return nil
}

// Prefixes returns the distinct file prefixes of sources, in declaration order.
func Prefixes(sources []Source) []string {
	seen := make(map[string]bool)
	var out []string
	for _, src := range sources {
		if !seen[src.Prefix] {
			seen[src.Prefix] = true
			out = append(out, src.Prefix)
		}
	}
	return out
}
