package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	mdblocks "github.com/alnah/go-mdblocks"
	"github.com/alnah/go-mdblocks/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches to a command and returns the process exit code.
// args includes the program name, as os.Args does.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := args[1], args[2:]
	if !isCommand(cmd) && fileutil.IsMarkdown(cmd) {
		// "mdblocks notes.md" is shorthand for "mdblocks convert notes.md".
		cmd, rest = "convert", args[1:]
	}

	var err error
	switch cmd {
	case "convert":
		err = runConvertCmd(ctx, rest, env)
	case "plan":
		err = runPlanCmd(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "mdblocks %s\n", Version)
	case "help", "-h", "--help":
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, formatError(err, env))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// isCommand reports whether name is a known command.
func isCommand(name string) bool {
	switch name {
	case "convert", "plan", "version", "help":
		return true
	}
	return false
}

// configureMaxProcs aligns GOMAXPROCS with the container CPU quota.
// Its log lines are shown only in verbose mode.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply.
func configureMaxProcs(verbose bool, w io.Writer) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
			fmt.Fprintf(w, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...any) {}))
}

// poolAdapter exposes *mdblocks.ConverterPool through the Pool interface.
type poolAdapter struct {
	pool *mdblocks.ConverterPool
}

// Compile-time interface check.
var _ Pool = (*poolAdapter)(nil)

// newPool is the production PoolFactory.
func newPool(size int, opts ...mdblocks.Option) Pool {
	return &poolAdapter{pool: mdblocks.NewConverterPool(size, opts...)}
}

func (a *poolAdapter) Acquire() CLIConverter {
	// Avoid a typed nil inside the interface.
	if conv := a.pool.Acquire(); conv != nil {
		return conv
	}
	return nil
}

func (a *poolAdapter) Release(c CLIConverter) {
	conv, ok := c.(*mdblocks.Converter)
	if !ok {
		panic(fmt.Sprintf("poolAdapter.Release: unexpected type %T", c))
	}
	a.pool.Release(conv)
}

func (a *poolAdapter) InitError() error { return a.pool.InitError() }

func (a *poolAdapter) Size() int { return a.pool.Size() }

func (a *poolAdapter) Close() error { return a.pool.Close() }
