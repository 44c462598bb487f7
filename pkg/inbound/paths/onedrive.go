// Package paths locates the cloud storage root synced to this machine.
package paths

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrCloudRootNotFound indicates that neither the environment nor the home
// directory points at a business cloud storage folder.
var ErrCloudRootNotFound = errors.New("cloud storage root not found")

// Resolver finds the OneDrive for Business root.
type Resolver struct {
	// EnvVars are checked in order; the first set to an existing path wins.
	EnvVars []string
	// Marker must appear in a home directory entry name (case-sensitive).
	Marker string
	// Delimiter separates the marker from the tenant name. Personal accounts
	// lack it.
	Delimiter string

	LookupEnv func(string) (string, bool)
	HomeDir   func() (string, error)
}

// DefaultResolver returns a Resolver for OneDrive for Business.
func DefaultResolver() Resolver {
	return Resolver{
		EnvVars:   []string{"OneDriveCommercial", "OneDriveBusiness", "OneDrive"},
		Marker:    "OneDrive",
		Delimiter: " - ",
		LookupEnv: os.LookupEnv,
		HomeDir:   os.UserHomeDir,
	}
}

// Resolve returns the cloud storage root.
//
// Home directory candidates are sorted by name so the choice between several
// business tenants is stable across platforms.
func (r Resolver) Resolve() (string, error) {
	lookup := r.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	for _, key := range r.EnvVars {
		if path, ok := lookup(key); ok && path != "" && exists(path) {
			return path, nil
		}
	}

	home := r.HomeDir
	if home == nil {
		home = os.UserHomeDir
	}
	dir, err := home()
	if err != nil {
		return "", errors.Join(ErrCloudRootNotFound, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.Join(ErrCloudRootNotFound, err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if r.Marker == "" || !strings.Contains(name, r.Marker) {
			continue
		}
		if r.Delimiter != "" && !strings.Contains(name, r.Delimiter) {
			continue
		}
		if info, err := os.Stat(filepath.Join(dir, name)); err != nil || !info.IsDir() {
			continue
		}
		names = append(names, name)
	}

	if len(names) == 0 {
		return "", ErrCloudRootNotFound
	}

	sort.Strings(names)

	return filepath.Join(dir, names[0]), nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
