// Package inbound assembles the weekly inbound logistics report.
package inbound

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/inbound-go/pkg/inbound/scanner"
)

// ErrInvalidOptions is wrapped by every Options.Validate failure.
var ErrInvalidOptions = errors.New("invalid options")

// Options configures a run. The zero value is not usable; start from
// DefaultOptions.
type Options struct {
	// CloudRoot is the cloud storage root. Empty means detect it.
	CloudRoot string `yaml:"cloud_root"`
	// EnvVars are consulted, in order, when detecting the cloud root.
	EnvVars []string `yaml:"env_vars"`
	// InboundDir holds the dated drop folders, relative to CloudRoot.
	InboundDir string `yaml:"inbound_dir"`
	// OutputDir receives the saved report, relative to CloudRoot.
	OutputDir string `yaml:"output_dir"`
	// Limit is the number of most recent dated folders searched.
	Limit int `yaml:"limit"`

	// TemplateDir is searched for the template workbook.
	TemplateDir string `yaml:"template_dir"`
	// TemplatePrefix is the leading part of the template file name.
	TemplatePrefix string `yaml:"template_prefix"`
	// TemplateExt is the template extension including the dot.
	TemplateExt string `yaml:"template_ext"`
	// Stamp is placed between the template prefix and the date in the output name.
	Stamp string `yaml:"stamp"`
	// Anchor is the cell where pasted data starts on every sheet.
	Anchor string `yaml:"anchor"`

	// DryRun loads and cleans every source but does not write the report.
	DryRun bool `yaml:"-"`
	// Now returns the report date. Defaults to time.Now.
	Now func() time.Time `yaml:"-"`
}

// DefaultOptions returns the compiled-in configuration.
func DefaultOptions() Options {
	return Options{
		EnvVars:        []string{"OneDriveCommercial", "OneDriveBusiness", "OneDrive"},
		InboundDir:     "Inbound Update",
		OutputDir:      filepath.Join("Inbound Update", "Weekly Reports"),
		Limit:          scanner.DefaultLimit,
		TemplateDir:    ".",
		TemplatePrefix: "Inbound Master",
		TemplateExt:    ".xlsm",
		Stamp:          "Update",
		Anchor:         "A2",
	}
}

// LoadOptions overlays the YAML file at path onto DefaultOptions.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse config: %w", err)
	}

	opts.normalise()

	return opts, opts.Validate()
}

// Save writes the options as YAML.
func (o Options) Save(path string) error {
	data, err := yaml.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the options.
func (o Options) Validate() error {
	switch {
	case strings.TrimSpace(o.InboundDir) == "":
		return fmt.Errorf("%w: inbound_dir is required", ErrInvalidOptions)
	case strings.TrimSpace(o.OutputDir) == "":
		return fmt.Errorf("%w: output_dir is required", ErrInvalidOptions)
	case strings.TrimSpace(o.TemplatePrefix) == "":
		return fmt.Errorf("%w: template_prefix is required", ErrInvalidOptions)
	case !strings.HasPrefix(o.TemplateExt, "."):
		return fmt.Errorf("%w: template_ext %q must start with '.'", ErrInvalidOptions, o.TemplateExt)
	case strings.TrimSpace(o.Anchor) == "":
		return fmt.Errorf("%w: anchor is required", ErrInvalidOptions)
	case o.CloudRoot == "" && len(o.EnvVars) == 0:
		return fmt.Errorf("%w: cloud_root or env_vars is required", ErrInvalidOptions)
	}
	return nil
}

func (o *Options) normalise() {
	if o.CloudRoot != "" {
		o.CloudRoot = filepath.Clean(o.CloudRoot)
	}
	o.InboundDir = filepath.Clean(o.InboundDir)
	o.OutputDir = filepath.Clean(o.OutputDir)
	o.TemplateDir = filepath.Clean(o.TemplateDir)
	if o.Limit <= 0 {
		o.Limit = scanner.DefaultLimit
	}
}

// resolve joins a configured directory onto root unless it is absolute.
func resolve(root, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}
