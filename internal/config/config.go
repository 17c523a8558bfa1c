// Package config loads and validates YAML configuration for the mdblocks CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-mdblocks/internal/dateutil"
	"github.com/alnah/go-mdblocks/internal/fileutil"
	"github.com/alnah/go-mdblocks/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDirName is the directory searched under os.UserConfigDir.
const AppDirName = "go-mdblocks"

// Field length limits.
const (
	MaxPathLength        = 4096 // Input, output and CSS paths
	MaxTitleLength       = 200  // Document title
	MaxPageSizeLength    = 10   // "letter", "a4", "legal"
	MaxOrientationLength = 10   // "portrait", "landscape"
	MaxTimeoutLength     = 20   // "90s", "2m30s"
)

// MaxColumns mirrors the widest grid a cards block accepts.
const MaxColumns = 12

// Config holds all configuration for document generation.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Document DocumentConfig `yaml:"document"`
	CSS      CSSConfig      `yaml:"css"`
	Page     PageConfig     `yaml:"page"`
	PDF      PDFConfig      `yaml:"pdf"`
	Cards    CardsConfig    `yaml:"cards"`
	Projects ProjectsConfig `yaml:"projects"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// DocumentConfig defines document metadata.
type DocumentConfig struct {
	Title string `yaml:"title"` // Empty = first H1, then file name
}

// CSSConfig defines styling options.
type CSSConfig struct {
	File string `yaml:"file"` // Stylesheet path, relative to the working directory
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal" (default: "letter")
	Orientation string  `yaml:"orientation"` // "portrait", "landscape" (default: "portrait")
	Margin      float64 `yaml:"margin"`      // inches (default: 0.5)
}

// PDFConfig defines PDF output options.
type PDFConfig struct {
	Enabled bool   `yaml:"enabled"` // Write a PDF next to the HTML
	Timeout string `yaml:"timeout"` // Go duration, e.g. "45s" (empty = 30s)
}

// CardsConfig defines defaults for cards blocks.
type CardsConfig struct {
	Columns         int  `yaml:"columns"`         // 1-12, 0 = 3
	ImageBackground bool `yaml:"imageBackground"` // Images as card backgrounds
}

// ProjectsConfig defines defaults for projects blocks.
type ProjectsConfig struct {
	PeriodFormat     string `yaml:"periodFormat"` // Month label format or preset (default: "MMM YYYY")
	HideDescriptions bool   `yaml:"hideDescriptions"`
}

// Validate checks field lengths and values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"document.title", c.Document.Title, MaxTitleLength},
		{"css.file", c.CSS.File, MaxPathLength},
		{"page.size", c.Page.Size, MaxPageSizeLength},
		{"page.orientation", c.Page.Orientation, MaxOrientationLength},
		{"pdf.timeout", c.PDF.Timeout, MaxTimeoutLength},
		{"projects.periodFormat", c.Projects.PeriodFormat, dateutil.MaxDateFormatLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Cards.Columns < 0 || c.Cards.Columns > MaxColumns {
		return fmt.Errorf("%w: cards.columns must be between 1 and %d, got %d", ErrInvalidValue, MaxColumns, c.Cards.Columns)
	}

	if c.Projects.PeriodFormat != "" {
		if _, err := dateutil.ParseDateFormat(c.Projects.PeriodFormat); err != nil {
			return fmt.Errorf("%w: projects.periodFormat: %w", ErrInvalidValue, err)
		}
	}

	if c.PDF.Timeout != "" {
		if _, err := c.PDF.ParseTimeout(); err != nil {
			return err
		}
	}

	return nil
}

// ParseTimeout returns the configured timeout, or 0 when unset.
func (p PDFConfig) ParseTimeout() (time.Duration, error) {
	if p.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(p.Timeout)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: pdf.timeout %q (expected a positive duration such as 30s or 2m)", ErrInvalidValue, p.Timeout)
	}
	return d, nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: HTML only, block defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Unknown keys are rejected. Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists the files LoadConfig tries for a config name, in order:
// current directory, then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
