package main

// Notes:
// - Environment variables are passed as "KEY=value" slices, so no test
//   touches the process environment.

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-mdblocks/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - MDBLOCKS_* parsing
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		environ []string
		want    envConfig
		wantErr error
	}{
		{
			name:    "empty",
			environ: nil,
			want:    envConfig{},
		},
		{
			name: "all set",
			environ: []string{
				"MDBLOCKS_CONFIG=work",
				"MDBLOCKS_OUTPUT_DIR=/tmp/out",
				"MDBLOCKS_TIMEOUT=90s",
				"MDBLOCKS_WORKERS=4",
				"HOME=/home/x",
			},
			want: envConfig{ConfigPath: "work", OutputDir: "/tmp/out", Timeout: 90 * time.Second, Workers: 4},
		},
		{
			name:    "value with equals sign",
			environ: []string{"MDBLOCKS_OUTPUT_DIR=/tmp/a=b"},
			want:    envConfig{OutputDir: "/tmp/a=b"},
		},
		{
			name:    "last assignment wins",
			environ: []string{"MDBLOCKS_WORKERS=2", "MDBLOCKS_WORKERS=3"},
			want:    envConfig{Workers: 3},
		},
		{
			name:    "unprefixed names are ignored",
			environ: []string{"CONFIG=other", "WORKERS=abc"},
			want:    envConfig{},
		},
		{
			name:    "invalid timeout",
			environ: []string{"MDBLOCKS_TIMEOUT=soon"},
			wantErr: ErrInvalidEnv,
		},
		{
			name:    "negative timeout",
			environ: []string{"MDBLOCKS_TIMEOUT=-5s"},
			wantErr: ErrInvalidEnv,
		},
		{
			name:    "non-numeric workers",
			environ: []string{"MDBLOCKS_WORKERS=many"},
			wantErr: ErrInvalidEnv,
		},
		{
			name:    "too many workers",
			environ: []string{"MDBLOCKS_WORKERS=64"},
			wantErr: ErrInvalidWorkerCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loadEnvConfig(tt.environ)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("loadEnvConfig() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("loadEnvConfig() unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("loadEnvConfig() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	warnUnknownEnvVars(&buf, []string{
		"MDBLOCKS_WORKERS=2",
		"MDBLOCKS_WORKER=2",
		"MDBLOCKS_TIMEOUT=1m",
		"PATH=/bin",
	})

	out := buf.String()
	if !strings.Contains(out, "MDBLOCKS_WORKER ") {
		t.Errorf("expected warning for MDBLOCKS_WORKER, got %q", out)
	}
	if strings.Count(out, "warning:") != 1 {
		t.Errorf("expected exactly one warning, got %q", out)
	}
}

// ---------------------------------------------------------------------------
// TestKnownEnvVars - Derived from envConfig tags
// ---------------------------------------------------------------------------

func TestKnownEnvVars(t *testing.T) {
	t.Parallel()

	want := []string{"MDBLOCKS_CONFIG", "MDBLOCKS_OUTPUT_DIR", "MDBLOCKS_TIMEOUT", "MDBLOCKS_WORKERS"}
	if len(knownEnvVars) != len(want) {
		t.Errorf("knownEnvVars has %d entries, want %d", len(knownEnvVars), len(want))
	}
	for _, name := range want {
		if !knownEnvVars[name] {
			t.Errorf("knownEnvVars missing %s", name)
		}
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Environment over config file
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("overrides file values", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{
			Output: config.OutputConfig{DefaultDir: "file-out"},
			PDF:    config.PDFConfig{Timeout: "10s"},
		}
		applyEnvConfig(&envConfig{OutputDir: "env-out", Timeout: 2 * time.Minute}, cfg)

		if cfg.Output.DefaultDir != "env-out" {
			t.Errorf("Output.DefaultDir = %q, want env-out", cfg.Output.DefaultDir)
		}
		if d, _ := cfg.PDF.ParseTimeout(); d != 2*time.Minute {
			t.Errorf("PDF.Timeout = %q, want 2m", cfg.PDF.Timeout)
		}
	})

	t.Run("unset values keep file values", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{
			Output: config.OutputConfig{DefaultDir: "file-out"},
			PDF:    config.PDFConfig{Timeout: "10s"},
		}
		applyEnvConfig(&envConfig{}, cfg)

		if cfg.Output.DefaultDir != "file-out" || cfg.PDF.Timeout != "10s" {
			t.Errorf("config changed: %+v", cfg)
		}
	})
}
