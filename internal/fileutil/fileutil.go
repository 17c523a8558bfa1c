// Package fileutil holds the file helpers shared by the converter, the
// config loader and the CLI.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// markdownExts lists the extensions treated as Markdown sources.
var markdownExts = []string{".md", ".markdown"}

// IsMarkdown reports whether path has a Markdown extension, ignoring case.
func IsMarkdown(path string) bool {
	return slices.Contains(markdownExts, strings.ToLower(filepath.Ext(path)))
}

// IsFilePath reports whether s looks like a path rather than a bare name:
// "work" is a name, "./work.yaml" and `C:\cfg\work.yaml` are paths.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// FileExists reports whether path exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// WriteTempHTML writes an HTML document to a new temp file so a browser can
// load it with a file:// URL. cleanup removes the file.
func WriteTempHTML(content string) (path string, cleanup func(), err error) {
	f, err := os.CreateTemp("", "mdblocks-*.html")
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}
	path = f.Name()
	cleanup = func() { _ = os.Remove(path) }

	_, err = f.WriteString(content)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", err)
	}
	return path, cleanup, nil
}

// WriteFile writes data next to path under a temporary name, then renames
// it over path. A failed or interrupted write leaves any previous file intact.
func WriteFile(path string, data []byte, perm os.FileMode) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Chmod(perm); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
