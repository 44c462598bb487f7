// Package writer pastes cleaned tables into the master template workbook and
// saves the result under a dated name.
package writer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ukaji3/inbound-go/pkg/inbound/models"
)

// ErrTemplateNotFound indicates no template workbook matched the prefix.
var ErrTemplateNotFound = errors.New("template not found")

// ErrSheetNotFound indicates the template has no sheet of the given name.
var ErrSheetNotFound = errors.New("sheet not found")

// Office writes an owner file named ~$<name> (or ~$ plus the name without its
// first two characters) next to every workbook it has open.
const lockPrefix = "~$"

// FindTemplate returns the first file in dir named prefix*ext. Office lock
// files, directories and earlier saved reports are ignored.
func FindTemplate(dir, prefix, ext string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.Join(ErrTemplateNotFound, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, lockPrefix) || isReport(name) {
			continue
		}
		if strings.HasPrefix(name, prefix) && strings.EqualFold(filepath.Ext(name), ext) {
			return filepath.Join(dir, name), nil
		}
	}

	return "", fmt.Errorf("%w: no %s*%s in %s", ErrTemplateNotFound, prefix, ext, dir)
}

// isReport reports whether name ends in the MM.DD.YY stamp of OutputName.
func isReport(name string) bool {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	i := strings.LastIndexByte(stem, ' ')
	if i < 0 {
		return false
	}
	_, err := time.Parse(DateStamp, stem[i+1:])
	return err == nil
}

// OpenElsewhere returns the Office owner files showing that path is open in
// another application.
func OpenElsewhere(path string) []string {
	dir, name := filepath.Split(path)
	candidates := []string{lockPrefix + name}
	if len(name) > 2 {
		candidates = append(candidates, lockPrefix+name[2:])
	}

	var found []string
	for _, c := range candidates {
		if _, err := os.Stat(filepath.Join(dir, c)); err == nil {
			found = append(found, filepath.Join(dir, c))
		}
	}
	return found
}

// Session is an open template workbook. Close must be called on every path;
// the original template is never written.
type Session struct {
	Path string

	file *excelize.File
	log  *zap.Logger
}

// Open loads the template at path.
func Open(path string, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}

	for _, owner := range OpenElsewhere(path) {
		log.Warn("Template is open in another application; its unsaved changes are not included",
			zap.String("template", path), zap.String("owner", owner))
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open template: %w", err)
	}

	return &Session{Path: path, file: f, log: log}, nil
}

// Close releases the workbook. It is safe to call more than once.
func (s *Session) Close() error {
	if s == nil || s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// WriteSheet writes the table's data rows into sheet, row-major, starting at
// the anchor cell. The header row is not written.
func (s *Session) WriteSheet(sheet string, t *models.Table, anchor string) error {
	idx, err := s.file.GetSheetIndex(sheet)
	if err != nil {
		return err
	}
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}

	col, row, err := excelize.CellNameToCoordinates(anchor)
	if err != nil {
		return fmt.Errorf("invalid anchor %q: %w", anchor, err)
	}

	for i, values := range t.Values() {
		cell, err := excelize.CoordinatesToCellName(col, row+i)
		if err != nil {
			return err
		}
		if err := s.file.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write %s!%s: %w", sheet, cell, err)
		}
	}

	return nil
}

// SaveAs writes the workbook to path, creating its directory.
func (s *Session) SaveAs(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	for _, owner := range OpenElsewhere(path) {
		s.log.Warn("Output workbook is open in another application",
			zap.String("output", path), zap.String("owner", owner))
	}

	return s.file.SaveAs(path)
}
