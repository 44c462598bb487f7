package loader

import (
	"errors"
	"fmt"
)

// ErrNoMatchingFile indicates no file in the folder matched any candidate.
var ErrNoMatchingFile = errors.New("no matching file")

// LoadError represents a failure while reading or postprocessing a source file.
type LoadError struct {
	Source string
	Path   string
	Stage  string // "parse", "postprocess"
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error in source %q (%s %s): %v", e.Source, e.Stage, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(source, path, stage string, err error) *LoadError {
	return &LoadError{
		Source: source,
		Path:   path,
		Stage:  stage,
		Err:    err,
	}
}
