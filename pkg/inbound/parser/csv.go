package parser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ukaji3/inbound-go/pkg/inbound/models"
)

// ParseCSV reads a delimited text export.
func ParseCSV(path string, opts models.ParseOptions) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := decode(f, opts.Encoding)
	if err != nil {
		return nil, err
	}

	if opts.SkipRows > 0 {
		if r, err = skipLines(r, opts.SkipRows); err != nil {
			return nil, err
		}
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoHeader
	}
	records = padRecords(records)
	if len(records) == 1 {
		return rowsToTable(records, 0, nil)
	}

	// gota renames duplicate and blank headers, so the raw header row is kept.
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nil),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("read csv: %w", df.Err)
	}

	grid := df.Records()
	grid[0] = records[0]
	return rowsToTable(grid, 0, nil)
}

// padRecords widens every record to the widest one. Short rows get empty
// trailing fields.
func padRecords(records [][]string) [][]string {
	width := 0
	for _, rec := range records {
		if len(rec) > width {
			width = len(rec)
		}
	}
	for i, rec := range records {
		if len(rec) < width {
			records[i] = append(rec, make([]string, width-len(rec))...)
		}
	}
	return records
}

// decode wraps r so that it yields UTF-8. A byte order mark always wins over
// the configured encoding.
func decode(r io.Reader, encoding string) (io.Reader, error) {
	name := strings.ToLower(strings.TrimSpace(encoding))
	if name == "" || name == "utf-8" || name == "utf8" {
		return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())), nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", encoding, err)
	}

	return transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())), nil
}

func skipLines(r io.Reader, n int) (io.Reader, error) {
	br := bufio.NewReader(r)
	for i := 0; i < n; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			if err == io.EOF {
				return strings.NewReader(""), nil
			}
			return nil, err
		}
	}
	return br, nil
}
