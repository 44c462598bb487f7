package inbound

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ukaji3/inbound-go/pkg/inbound/loader"
	"github.com/ukaji3/inbound-go/pkg/inbound/models"
	"github.com/ukaji3/inbound-go/pkg/inbound/paths"
	"github.com/ukaji3/inbound-go/pkg/inbound/scanner"
	"github.com/ukaji3/inbound-go/pkg/inbound/writer"
)

// Result is everything one run produced.
type Result struct {
	// Root is the cloud storage root.
	Root string
	// BaseDir holds the dated drop folders.
	BaseDir string
	// Folders maps a file prefix to the newest folder holding a matching file.
	Folders map[string]string
	// Tables maps a source name to its cleaned table, nil when it failed.
	Tables map[string]*models.Table
	// Sheets maps a template sheet to its table, nil when the source failed.
	Sheets models.SheetTables
	// Failures maps a source name to the reason it has no table.
	Failures map[string]error
	// Report describes the template write; nil on a dry run or without template.
	Report *writer.Report
	// Output is the saved workbook path, empty when nothing was saved.
	Output string
}

// Locate resolves the cloud root and the newest folder for every source prefix.
func Locate(opts Options, sources []models.Source, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}

	root := opts.CloudRoot
	if root == "" {
		r := paths.DefaultResolver()
		r.EnvVars = opts.EnvVars
		var err error
		if root, err = r.Resolve(); err != nil {
			return nil, err
		}
	}
	log.Info("Resolved cloud storage root", zap.String("root", root))

	base := resolve(root, opts.InboundDir)
	log.Info("Using base directory", zap.String("base", base))

	folders, err := scanner.Resolve(base, models.Prefixes(sources), opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", base, err)
	}
	for prefix, folder := range folders {
		log.Debug("Resolved folder", zap.String("prefix", prefix), zap.String("folder", folder))
	}

	return &Result{
		Root:     root,
		BaseDir:  base,
		Folders:  folders,
		Tables:   make(map[string]*models.Table),
		Sheets:   make(models.SheetTables),
		Failures: make(map[string]error),
	}, nil
}

// Run loads and cleans every source and writes the report workbook.
//
// A source that cannot be found or parsed is logged and its sheet skipped. So
// is a missing template, in which case nothing is saved. Errors are returned
// only for invalid configuration, an undetectable cloud root, an unreadable
// base directory, or a failed save.
func Run(opts Options, sources []models.Source, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := models.ValidateSources(sources); err != nil {
		return nil, err
	}

	result, err := Locate(opts, sources, log)
	if err != nil {
		return nil, err
	}

	for _, src := range sources {
		result.Tables[src.Name] = nil

		folder, ok := result.Folders[src.Prefix]
		if !ok {
			err := fmt.Errorf("%w: no %s* file in the latest %d folders", loader.ErrNoMatchingFile, src.Prefix, opts.Limit)
			log.Warn("Source not found", zap.String("source", src.Name), zap.Error(err))
			result.Failures[src.Name] = err
			continue
		}

		table, err := loader.Load(src, folder)
		if err != nil {
			log.Warn("Source not loaded", zap.String("source", src.Name), zap.String("folder", folder), zap.Error(err))
			result.Failures[src.Name] = err
			continue
		}

		log.Info("Loaded source",
			zap.String("source", src.Name),
			zap.String("folder", folder),
			zap.Int("rows", table.Len()),
			zap.Int("columns", table.Width()))
		result.Tables[src.Name] = table
	}

	var order []string
	for _, src := range sources {
		if src.Sheet == "" {
			continue
		}
		result.Sheets[src.Sheet] = result.Tables[src.Name]
		order = append(order, src.Sheet)
	}

	if opts.DryRun {
		log.Info("Dry run, report not written", zap.Int("sheets", len(order)))
		return result, nil
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	report, err := writer.Write(writer.Options{
		TemplateDir:    opts.TemplateDir,
		TemplatePrefix: opts.TemplatePrefix,
		TemplateExt:    opts.TemplateExt,
		OutputDir:      resolve(result.Root, opts.OutputDir),
		Stamp:          opts.Stamp,
		Anchor:         opts.Anchor,
		Order:          order,
		Now:            now,
	}, result.Sheets, log)
	result.Report = report

	switch {
	case errors.Is(err, writer.ErrTemplateNotFound):
		log.Warn("Report not written", zap.Error(err))
		return result, nil
	case err != nil:
		return result, err
	}

	result.Output = report.Output

	return result, nil
}
