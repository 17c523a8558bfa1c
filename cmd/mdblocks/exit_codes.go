package main

import (
	"context"
	"errors"
	"os"

	mdblocks "github.com/alnah/go-mdblocks"
	"github.com/alnah/go-mdblocks/internal/config"
	"github.com/alnah/go-mdblocks/internal/dateutil"
	"github.com/alnah/go-mdblocks/internal/hints"
	"github.com/alnah/go-mdblocks/internal/projects"
)

// Exit codes for the mdblocks CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, validation or block content
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// ErrUsage marks command-line syntax errors.
var ErrUsage = errors.New("invalid usage")

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, mdblocks.ErrBrowserConnect) ||
		errors.Is(err, mdblocks.ErrPageCreate) ||
		errors.Is(err, mdblocks.ErrPageLoad) ||
		errors.Is(err, mdblocks.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrReadPlan) ||
		errors.Is(err, ErrCreateOutputDir) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation/block errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidEnv) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrNoMarkdownFiles) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, mdblocks.ErrEmptyMarkdown) ||
		errors.Is(err, mdblocks.ErrInvalidPageSize) ||
		errors.Is(err, mdblocks.ErrInvalidOrientation) ||
		errors.Is(err, mdblocks.ErrInvalidMargin) ||
		errors.Is(err, mdblocks.ErrInvalidColumns) ||
		errors.Is(err, mdblocks.ErrInvalidPeriodFormat) ||
		errors.Is(err, mdblocks.ErrBlockDecode) ||
		errors.Is(err, mdblocks.ErrInvalidBlockOption) ||
		errors.Is(err, projects.ErrInvalidPlan) ||
		errors.Is(err, projects.ErrInvalidActivity) ||
		errors.Is(err, projects.ErrMissingTitle) ||
		errors.Is(err, dateutil.ErrInvalidDate) ||
		errors.Is(err, dateutil.ErrInvalidDuration) {
		return ExitUsage
	}

	return ExitGeneral
}

// formatError renders err with an actionable hint when one applies.
func formatError(err error, env *Environment) string {
	return err.Error() + hintFor(err, env)
}

// hintFor picks the hint for the most specific cause of err.
func hintFor(err error, env *Environment) string {
	switch {
	case errors.Is(err, mdblocks.ErrBrowserConnect):
		return hints.ForBrowserConnect(env.browserEnv())
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, mdblocks.ErrPageLoad):
		return hints.ForTimeout()
	case errors.Is(err, ErrCreateOutputDir):
		return hints.ForOutputDirectory()
	case errors.Is(err, dateutil.ErrInvalidDuration):
		return hints.ForDuration()
	case errors.Is(err, dateutil.ErrInvalidDate):
		return hints.ForDate()
	case errors.Is(err, mdblocks.ErrInvalidBlockOption):
		return hints.ForBlockOption()
	}
	return ""
}
