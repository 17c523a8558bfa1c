package main

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	mdblocks "github.com/alnah/go-mdblocks"
	"github.com/alnah/go-mdblocks/internal/hints"
)

// PoolFactory builds the converter pool for a batch.
type PoolFactory func(size int, opts ...mdblocks.Option) Pool

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now         func() time.Time
	Stdout      io.Writer
	Stderr      io.Writer
	Environ     func() []string // MDBLOCKS_* overrides are read from here
	ColorOutput bool            // Stdout is a terminal and NO_COLOR is unset
	InContainer func() bool
	NewPool     PoolFactory
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:         time.Now,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Environ:     os.Environ,
		ColorOutput: stdoutIsTerminal() && os.Getenv("NO_COLOR") == "",
		InContainer: hints.InContainer,
		NewPool:     newPool,
	}
}

// browserEnv exposes the environment to the browser hint.
func (e *Environment) browserEnv() hints.BrowserEnv {
	vars := environMap(e.Environ())
	return hints.BrowserEnv{
		Getenv:      func(key string) string { return vars[key] },
		InContainer: e.InContainer(),
	}
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
