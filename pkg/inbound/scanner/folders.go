// Package scanner locates the newest dated drop folder holding each source's files.
package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ukaji3/inbound-go/pkg/inbound/models"
)

// DateLayout is the MM.DD.YY folder naming scheme. Single digit month and day
// are accepted as well.
const DateLayout = "1.2.06"

// DefaultLimit is the number of most recent folders searched.
const DefaultLimit = 15

// ParseFolderDate parses a folder name as a drop date.
func ParseFolderDate(name string) (time.Time, bool) {
	d, err := time.Parse(DateLayout, name)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// ListDated returns the immediate subdirectories of base whose names parse as
// dates, newest first. Other entries are ignored.
func ListDated(base string) ([]models.DatedFolder, error) {
	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, err
	}

	var folders []models.DatedFolder
	for _, entry := range entries {
		if !isDir(base, entry) {
			continue
		}
		date, ok := ParseFolderDate(entry.Name())
		if !ok {
			continue
		}
		folders = append(folders, models.DatedFolder{
			Date: date,
			Path: filepath.Join(base, entry.Name()),
		})
	}

	sort.SliceStable(folders, func(i, j int) bool {
		if !folders[i].Date.Equal(folders[j].Date) {
			return folders[i].Date.After(folders[j].Date)
		}
		return folders[i].Path > folders[j].Path
	})

	return folders, nil
}

// Resolve maps each prefix to the newest of the latest limit dated folders
// that contains an entry whose name starts with the prefix. Prefixes with no
// match are absent from the result. A non-positive limit means DefaultLimit.
func Resolve(base string, prefixes []string, limit int) (map[string]string, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	folders, err := ListDated(base)
	if err != nil {
		return nil, err
	}
	if len(folders) > limit {
		folders = folders[:limit]
	}

	resolved := make(map[string]string)
	for _, folder := range folders {
		if len(resolved) == len(prefixes) {
			break
		}

		entries, err := os.ReadDir(folder.Path)
		if err != nil {
			continue
		}

		for _, prefix := range prefixes {
			if _, ok := resolved[prefix]; ok {
				continue
			}
			if hasPrefixedEntry(entries, prefix) {
				resolved[prefix] = filepath.ToSlash(filepath.Clean(folder.Path))
			}
		}
	}

	return resolved, nil
}

func hasPrefixedEntry(entries []os.DirEntry, prefix string) bool {
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), prefix) {
			return true
		}
	}
	return false
}

// isDir follows symlinks so linked drop folders count.
func isDir(base string, entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(base, entry.Name()))
	return err == nil && info.IsDir()
}
