// Package loader reads one source's file out of its resolved drop folder.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/inbound-go/pkg/inbound/models"
)

// Find returns the first file in folder named prefix*.ext, trying each
// candidate in order. The second result is the candidate that matched.
// Directory listings are sorted by name, so the choice is stable.
func Find(src models.Source, folder string) (string, *models.Candidate, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return "", nil, err
	}

	for i := range src.Candidates {
		c := &src.Candidates[i]
		ext := "." + strings.TrimPrefix(c.Ext, ".")
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || !strings.HasPrefix(name, src.Prefix) {
				continue
			}
			if len(name) < len(src.Prefix)+len(ext) || !strings.EqualFold(name[len(name)-len(ext):], ext) {
				continue
			}
			return filepath.Join(folder, name), c, nil
		}
	}

	return "", nil, ErrNoMatchingFile
}

// Load parses the source's file in folder and applies its postprocess step.
// At most one file is read. Failures are returned as *LoadError, including
// panics raised by a parser or transform.
func Load(src models.Source, folder string) (*models.Table, error) {
	path, candidate, err := Find(src, folder)
	if err != nil {
		return nil, err
	}

	table, err := safely(func() (*models.Table, error) {
		return candidate.Parse(path, src.Options)
	})
	if err != nil {
		return nil, NewLoadError(src.Name, path, "parse", err)
	}
	if table == nil {
		return nil, NewLoadError(src.Name, path, "parse", fmt.Errorf("parser returned no table"))
	}
	table.Name = src.Name

	if src.Postprocess != nil {
		table, err = safely(func() (*models.Table, error) {
			return src.Postprocess(table), nil
		})
		if err != nil {
			return nil, NewLoadError(src.Name, path, "postprocess", err)
		}
		if table == nil {
			return nil, NewLoadError(src.Name, path, "postprocess", fmt.Errorf("transform returned no table"))
		}
	}

	return table, nil
}

func safely(fn func() (*models.Table, error)) (table *models.Table, err error) {
	defer func() {
		if r := recover(); r != nil {
			table, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
