package writer

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ukaji3/inbound-go/pkg/inbound/models"
)

// DateStamp is the MM.DD.YY suffix of output file names.
const DateStamp = "01.02.06"

// Options configures a template write.
type Options struct {
	// TemplateDir is searched for the template workbook.
	TemplateDir string
	// TemplatePrefix is the leading part of the template file name and the
	// leading part of the output file name.
	TemplatePrefix string
	// TemplateExt is the template (and output) extension, including the dot.
	TemplateExt string
	// OutputDir receives the saved workbook.
	OutputDir string
	// Stamp sits between the prefix and the date in the output name.
	Stamp string
	// Anchor is the top-left cell of the pasted data.
	Anchor string
	// Order lists sheets in the order they are written.
	Order []string
	// Now returns the save date. Defaults to time.Now.
	Now func() time.Time
}

// Report summarises a template write.
type Report struct {
	Template string
	Output   string
	Written  map[string]int
	Skipped  []string
	Failed   map[string]error
}

// OutputName returns "<prefix> <stamp> <MM.DD.YY><ext>". Two saves on the same
// day produce the same name.
func OutputName(prefix, stamp string, now time.Time, ext string) string {
	parts := []string{strings.TrimSpace(prefix)}
	if s := strings.TrimSpace(stamp); s != "" {
		parts = append(parts, s)
	}
	parts = append(parts, now.Format(DateStamp))
	return strings.Join(parts, " ") + ext
}

// Write pastes every non-nil table into its sheet of a copy of the template
// and saves the copy into opts.OutputDir. Nil tables and per-sheet failures
// are logged and skipped. A missing template returns ErrTemplateNotFound
// before anything is written.
func Write(opts Options, sheets models.SheetTables, log *zap.Logger) (report *Report, err error) {
	if log == nil {
		log = zap.NewNop()
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	template, err := FindTemplate(opts.TemplateDir, opts.TemplatePrefix, opts.TemplateExt)
	if err != nil {
		log.Error("Template workbook not found", zap.String("dir", opts.TemplateDir),
			zap.String("prefix", opts.TemplatePrefix), zap.Error(err))
		return nil, err
	}

	s, err := Open(template, log)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close template: %w", cerr)
		}
	}()

	report = &Report{
		Template: template,
		Written:  make(map[string]int),
		Failed:   make(map[string]error),
	}

	for _, name := range sheets.Names(opts.Order) {
		table := sheets[name]
		if table == nil {
			log.Warn("No data for sheet, skipped", zap.String("sheet", name))
			report.Skipped = append(report.Skipped, name)
			continue
		}

		if err := s.WriteSheet(name, table, opts.Anchor); err != nil {
			log.Error("Failed to write sheet", zap.String("sheet", name), zap.Error(err))
			report.Failed[name] = err
			continue
		}

		report.Written[name] = table.Len()
		log.Info("Wrote sheet", zap.String("sheet", name), zap.Int("rows", table.Len()))
	}

	output := filepath.Join(opts.OutputDir, OutputName(opts.TemplatePrefix, opts.Stamp, now(), opts.TemplateExt))
	if filepath.Clean(output) == filepath.Clean(template) {
		return report, errors.New("output would overwrite the template")
	}
	if err := s.SaveAs(output); err != nil {
		return report, fmt.Errorf("save %s: %w", output, err)
	}

	report.Output = output
	log.Info("Saved workbook", zap.String("output", output))

	return report, nil
}
