package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pageFlags holds PDF page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// blockFlags holds defaults for cards and projects blocks.
type blockFlags struct {
	columns          int
	imageBackground  bool
	periodFormat     string
	hideDescriptions bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	output  string
	workers int
	timeout string
	css     string
	title   string
	pdf     bool
	page    pageFlags
	blocks  blockFlags
}

// planFlags holds flags for the plan command.
type planFlags struct {
	dateFormat   string
	descriptions bool
	noColor      bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

// addBlockFlags adds block default flags to a FlagSet.
func addBlockFlags(fs *flag.FlagSet, f *blockFlags) {
	fs.IntVar(&f.columns, "cols", 0, "default card columns (1-12)")
	fs.BoolVar(&f.imageBackground, "image-bg", false, "render card images as backgrounds")
	fs.StringVar(&f.periodFormat, "period-format", "", "plan month label format or preset")
	fs.BoolVar(&f.hideDescriptions, "hide-descriptions", false, "hide plan activity descriptions")
}

// newFlagSet creates a FlagSet that reports errors to the caller
// instead of printing them, and shows usage on -h.
func newFlagSet(name string, usage func(io.Writer), w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, w io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newFlagSet("convert", printConvertUsage, w)

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.css, "css", "", "stylesheet file")
	fs.StringVar(&f.title, "title", "", "document title (\"\" = first H1, then file name)")
	fs.BoolVar(&f.pdf, "pdf", false, "also write a PDF next to the HTML")

	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	addBlockFlags(fs, &f.blocks)

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parsePlanFlags parses plan command flags and returns positional args.
func parsePlanFlags(args []string, w io.Writer) (*planFlags, []string, error) {
	f := &planFlags{}
	fs := newFlagSet("plan", printPlanUsage, w)

	fs.StringVar(&f.dateFormat, "date-format", "iso", "date format or preset for activity spans")
	fs.BoolVar(&f.descriptions, "descriptions", false, "show activity descriptions")
	fs.BoolVar(&f.noColor, "no-color", false, "disable colored output")

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parse runs fs.Parse and tags syntax errors as usage errors.
// flag.ErrHelp passes through unchanged.
func parse(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUsage, err)
}
