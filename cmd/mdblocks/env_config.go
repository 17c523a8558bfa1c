package main

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/alnah/go-mdblocks/internal/config"
)

// envPrefix namespaces every recognized environment variable.
const envPrefix = "MDBLOCKS_"

// ErrInvalidEnv is returned when an MDBLOCKS_* value cannot be parsed.
var ErrInvalidEnv = errors.New("invalid environment variable")

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        `env:"CONFIG"`     // MDBLOCKS_CONFIG: config file name or path
	OutputDir  string        `env:"OUTPUT_DIR"` // MDBLOCKS_OUTPUT_DIR: default output directory
	Timeout    time.Duration `env:"TIMEOUT"`    // MDBLOCKS_TIMEOUT: PDF generation timeout
	Workers    int           `env:"WORKERS"`    // MDBLOCKS_WORKERS: parallel workers
}

// knownEnvVars lists valid MDBLOCKS_* names, derived from envConfig tags.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = func() map[string]bool {
	known := make(map[string]bool)
	t := reflect.TypeFor[envConfig]()
	for i := range t.NumField() {
		if tag := t.Field(i).Tag.Get("env"); tag != "" {
			known[envPrefix+tag] = true
		}
	}
	return known
}()

// loadEnvConfig reads MDBLOCKS_* values from environ ("KEY=value" pairs).
func loadEnvConfig(environ []string) (*envConfig, error) {
	cfg := &envConfig{}
	opts := env.Options{
		Prefix:      envPrefix,
		Environment: environMap(environ),
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnv, err)
	}

	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("%w: %sTIMEOUT must be positive, got %s", ErrInvalidEnv, envPrefix, cfg.Timeout)
	}
	if err := validateWorkers(cfg.Workers); err != nil {
		return nil, fmt.Errorf("%w: %sWORKERS: %w", ErrInvalidEnv, envPrefix, err)
	}
	return cfg, nil
}

// environMap turns "KEY=value" pairs into a map. Later pairs win.
func environMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			m[k] = v
		}
	}
	return m
}

// warnUnknownEnvVars logs warnings for unrecognized MDBLOCKS_* variables.
// Helps catch typos like MDBLOCKS_WORKER instead of MDBLOCKS_WORKERS.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment values over the config file.
// Flags are merged afterwards and win over both:
// CLI flags > env vars > config file > defaults.
func applyEnvConfig(e *envConfig, cfg *config.Config) {
	if e.OutputDir != "" {
		cfg.Output.DefaultDir = e.OutputDir
	}
	if e.Timeout > 0 {
		cfg.PDF.Timeout = e.Timeout.String()
	}
}
