package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	mdblocks "github.com/alnah/go-mdblocks"
	"github.com/alnah/go-mdblocks/internal/config"
	"github.com/alnah/go-mdblocks/internal/fileutil"
	"github.com/alnah/go-mdblocks/internal/hints"
)

// ErrInvalidTimeout is returned for a --timeout value that is not a positive duration.
var ErrInvalidTimeout = errors.New("invalid timeout")

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	title string // empty = first H1, then file name
	css   string
	page  *mdblocks.PageSettings
	pdf   bool
}

// runConvertCmd parses convert flags and runs the conversion.
func runConvertCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stdout)
	if err != nil {
		return err
	}
	return runConvert(ctx, positional, flags, env)
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	environ := env.Environ()
	warnUnknownEnvVars(env.Stderr, environ)
	envCfg, err := loadEnvConfig(environ)
	if err != nil {
		return err
	}

	// Config: --config > MDBLOCKS_CONFIG > none
	cfg := config.DefaultConfig()
	if name := cmp.Or(flags.common.config, envCfg.ConfigPath); name != "" {
		cfg, err = config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				return fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	timeout, err := resolveTimeout(flags.timeout, cfg)
	if err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	files, err := discoverFiles(inputPath, cfg.Output.DefaultDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	css, err := readCSS(cfg.CSS.File)
	if err != nil {
		return err
	}

	params := &conversionParams{
		title: cfg.Document.Title,
		css:   css,
		pdf:   cfg.PDF.Enabled,
	}
	if params.pdf {
		params.page = buildPageSettings(cfg)
		if err := params.page.Validate(); err != nil {
			return err
		}
	}

	configureMaxProcs(flags.common.verbose, env.Stderr)
	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	poolSize := mdblocks.ResolvePoolSize(workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d\n", poolSize)
	}

	pool := env.NewPool(poolSize, converterOptions(cfg, timeout)...)
	defer func() { _ = pool.Close() }()

	start := env.Now()
	results := convertBatch(ctx, pool, files, params)
	summary := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Total: %v\n", env.Now().Sub(start).Round(time.Millisecond))
	}

	if summary.Failed > 0 {
		// Exit code follows the first failure; details were printed per file.
		return fmt.Errorf("%d of %d conversion(s) failed: %w", summary.Failed, len(results), summary.FirstErr)
	}
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.DefaultDir = flags.output
	}
	if flags.title != "" {
		cfg.Document.Title = flags.title
	}
	if flags.css != "" {
		cfg.CSS.File = flags.css
	}
	if flags.pdf {
		cfg.PDF.Enabled = true
	}

	if flags.page.size != "" {
		cfg.Page.Size = flags.page.size
	}
	if flags.page.orientation != "" {
		cfg.Page.Orientation = flags.page.orientation
	}
	if flags.page.margin != 0 {
		cfg.Page.Margin = flags.page.margin
	}

	if flags.blocks.columns != 0 {
		cfg.Cards.Columns = flags.blocks.columns
	}
	if flags.blocks.imageBackground {
		cfg.Cards.ImageBackground = true
	}
	if flags.blocks.periodFormat != "" {
		cfg.Projects.PeriodFormat = flags.blocks.periodFormat
	}
	if flags.blocks.hideDescriptions {
		cfg.Projects.HideDescriptions = true
	}
}

// resolveTimeout returns the PDF timeout: --timeout, then the merged config
// (which already carries MDBLOCKS_TIMEOUT). Zero means the library default.
func resolveTimeout(flagValue string, cfg *config.Config) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil || d <= 0 {
			return 0, fmt.Errorf("%w: %q (expected a positive duration such as 30s or 2m)", ErrInvalidTimeout, flagValue)
		}
		return d, nil
	}
	return cfg.PDF.ParseTimeout()
}

// converterOptions maps the merged config to library options.
func converterOptions(cfg *config.Config, timeout time.Duration) []mdblocks.Option {
	opts := []mdblocks.Option{
		mdblocks.WithCardsDefaults(mdblocks.CardsDefaults{
			Columns:         cfg.Cards.Columns,
			ImageBackground: cfg.Cards.ImageBackground,
		}),
		mdblocks.WithPlanDefaults(mdblocks.PlanDefaults{
			PeriodFormat:     cfg.Projects.PeriodFormat,
			HideDescriptions: cfg.Projects.HideDescriptions,
		}),
	}
	if timeout > 0 {
		opts = append(opts, mdblocks.WithTimeout(timeout))
	}
	return opts
}

// resolveInputPath picks the positional argument or the configured default.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", fmt.Errorf("%w: pass a file or directory, or set input.defaultDir in config", ErrNoInput)
}

// readCSS loads the stylesheet, or returns "" when none is configured.
func readCSS(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided stylesheet
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadCSS, err)
	}
	return string(data), nil
}

// buildPageSettings fills unset page fields with library defaults.
func buildPageSettings(cfg *config.Config) *mdblocks.PageSettings {
	page := mdblocks.DefaultPageSettings()
	if cfg.Page.Size != "" {
		page.Size = strings.ToLower(cfg.Page.Size)
	}
	if cfg.Page.Orientation != "" {
		page.Orientation = strings.ToLower(cfg.Page.Orientation)
	}
	if cfg.Page.Margin != 0 {
		page.Margin = cfg.Page.Margin
	}
	return page
}

var firstHeadingPattern = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// extractFirstHeading extracts the first # heading from markdown content.
func extractFirstHeading(markdown string) string {
	matches := firstHeadingPattern.FindStringSubmatch(markdown)
	if len(matches) >= 2 {
		return strings.TrimSpace(matches[1])
	}
	return ""
}

// resolveTitle returns the title for one file: configured title,
// then the first H1, then the file name without extension.
func resolveTitle(configured, markdown, filename string) string {
	if configured != "" {
		return configured
	}
	if h1 := extractFirstHeading(markdown); h1 != "" {
		return h1
	}
	return strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
}
