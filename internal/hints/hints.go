// Package hints builds the actionable suffixes appended to CLI error
// messages, formatted as "\n  hint: <text>".
package hints

import (
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdblocks/internal/fileutil"
)

// ciMarkers are variables set by common CI runners.
var ciMarkers = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"}

// InContainer reports whether the process runs in a Docker container.
func InContainer() bool {
	return fileutil.FileExists("/.dockerenv")
}

// BrowserEnv is what the browser hint looks at.
type BrowserEnv struct {
	Getenv      func(key string) string
	InContainer bool
}

// ForBrowserConnect suggests the ROD_* variables that usually fix a failed
// Chrome launch: disabling the sandbox in CI or containers, and pointing
// at a local Chrome binary.
func ForBrowserConnect(env BrowserEnv) string {
	var hints []string

	sandboxed := env.InContainer
	for _, key := range ciMarkers {
		if env.Getenv(key) != "" {
			sandboxed = true
		}
	}
	if sandboxed && env.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if env.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	return formatHints(hints)
}

// ForTimeout suggests a longer PDF timeout.
func ForTimeout() string {
	return format("for large documents, use --timeout flag")
}

// ForConfigNotFound suggests --config, and creating the file in the user
// config directory when that location was searched.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	marker := "go-mdblocks" + string(filepath.Separator)
	for _, p := range searchedPaths {
		if strings.Contains(p, marker) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory is shown when an output directory cannot be created.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForDuration returns the accepted lasts forms.
func ForDuration() string {
	return format(`lasts takes "<n> days|weeks|months|years", e.g. "2 weeks"`)
}

// ForDate returns the accepted date forms.
func ForDate() string {
	return format("dates use YYYY-MM-DD; quote values that YAML could misread")
}

// ForBlockOption returns the options a block info string accepts.
func ForBlockOption() string {
	return formatHints([]string{
		"cards: id, cols=1-12, image-bg",
		"projects: id, period-format, hide-descriptions",
	})
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

func formatHints(hints []string) string {
	return format(strings.Join(hints, "; "))
}
