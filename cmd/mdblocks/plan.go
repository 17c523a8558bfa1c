package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/charmbracelet/lipgloss"

	"github.com/alnah/go-mdblocks/internal/dateutil"
	"github.com/alnah/go-mdblocks/internal/projects"
)

// ErrReadPlan is returned when the plan file cannot be read.
var ErrReadPlan = errors.New("failed to read plan file")

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeBlank  = "   "
)

// Plan tree palette.
var (
	colorPhase = lipgloss.Color("#fe8019")
	colorDates = lipgloss.Color("#83a598")
	colorDim   = lipgloss.Color("#928374")
)

type paint func(string) string

func plain(s string) string { return s }

func styled(s lipgloss.Style) paint {
	return func(text string) string { return s.Render(text) }
}

// treeStyles colors the parts of a plan tree line.
type treeStyles struct {
	phase paint
	dates paint
	dim   paint
}

func newTreeStyles(color bool) treeStyles {
	if !color {
		return treeStyles{phase: plain, dates: plain, dim: plain}
	}
	return treeStyles{
		phase: styled(lipgloss.NewStyle().Foreground(colorPhase).Bold(true)),
		dates: styled(lipgloss.NewStyle().Foreground(colorDates)),
		dim:   styled(lipgloss.NewStyle().Foreground(colorDim)),
	}
}

// treeOptions controls plan tree rendering.
type treeOptions struct {
	dateFormat   string // format or preset accepted by dateutil.FormatDate
	descriptions bool
	styles       treeStyles
}

// runPlanCmd prints a plan file as a tree with its overall span.
func runPlanCmd(args []string, env *Environment) error {
	flags, positional, err := parsePlanFlags(args, env.Stdout)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: plan takes exactly one file, got %d", ErrUsage, len(positional))
	}
	if err := validateDateFormat(flags.dateFormat); err != nil {
		return fmt.Errorf("--date-format: %w", err)
	}

	path := positional[0]
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided plan file
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadPlan, err)
	}

	plan, err := projects.Decode(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	opts := treeOptions{
		dateFormat:   flags.dateFormat,
		descriptions: flags.descriptions,
		styles:       newTreeStyles(env.ColorOutput && !flags.noColor),
	}
	_, err = fmt.Fprint(env.Stdout, renderPlan(path, plan, opts))
	return err
}

// validateDateFormat accepts a preset name or a token format.
func validateDateFormat(format string) error {
	if preset, ok := dateutil.DatePresets[strings.ToLower(format)]; ok {
		format = preset
	}
	_, err := dateutil.ParseDateFormat(format)
	return err
}

// renderPlan returns the header and tree for plan.
func renderPlan(name string, plan projects.Plan, opts treeOptions) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", opts.styles.phase("Plan:"), name)
	span := "undated"
	if start, end, ok := projects.Span(plan.Activities); ok {
		span = opts.styles.dates(formatRange(start, end, opts.dateFormat))
	}
	fmt.Fprintf(&b, "%s %s %s\n\n", opts.styles.phase("Span:"), span,
		opts.styles.dim(fmt.Sprintf("(%d activities)", plan.Len())))

	b.WriteString(renderTree(plan, opts))
	return b.String()
}

// treeRow is one activity of the flattened plan.
type treeRow struct {
	depth    int
	activity projects.Activity
}

// renderTree draws the pre-order activity list with box-drawing connectors.
// Top-level activities have no connector.
func renderTree(plan projects.Plan, opts treeOptions) string {
	var rows []treeRow
	for depth, a := range plan.AllWithDepth() {
		rows = append(rows, treeRow{depth: depth, activity: a})
	}

	var b strings.Builder
	// lastAt[d] tells whether the latest row at depth d closes its sibling list.
	lastAt := make([]bool, 0, 4)
	for i, row := range rows {
		last := isLastSibling(rows, i)
		for len(lastAt) <= row.depth {
			lastAt = append(lastAt, false)
		}
		lastAt[row.depth] = last

		prefix := ancestorsPrefix(lastAt, row.depth)
		if row.depth > 0 {
			if last {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
		}

		a := row.activity
		title := a.Title
		if a.IsPhase() {
			title = opts.styles.phase(title)
		}
		b.WriteString(opts.styles.dim(prefix) + title)
		if start, end, ok := a.Span(); ok {
			b.WriteString("  " + opts.styles.dates(formatRange(start, end, opts.dateFormat)))
		}
		b.WriteByte('\n')

		if opts.descriptions && a.Description != "" {
			cont := ancestorsPrefix(lastAt, row.depth+1)
			if a.IsPhase() {
				cont += treePipe
			} else {
				cont += treeBlank
			}
			for line := range strings.SplitSeq(strings.TrimRight(a.Description, "\n"), "\n") {
				b.WriteString(opts.styles.dim(cont+line) + "\n")
			}
		}
	}
	return b.String()
}

// ancestorsPrefix draws the columns for depths 1 to depth-1: a pipe while
// the ancestor at that depth still has siblings below, blank otherwise.
func ancestorsPrefix(lastAt []bool, depth int) string {
	var b strings.Builder
	for d := 1; d < depth && d < len(lastAt); d++ {
		if lastAt[d] {
			b.WriteString(treeBlank)
		} else {
			b.WriteString(treePipe)
		}
	}
	return b.String()
}

// isLastSibling reports whether no later row shares rows[i]'s parent.
func isLastSibling(rows []treeRow, i int) bool {
	depth := rows[i].depth
	for _, next := range rows[i+1:] {
		switch {
		case next.depth < depth:
			return true
		case next.depth == depth:
			return false
		}
	}
	return true
}

// formatRange renders "start → end", or a single date when both match.
// The format was validated before rendering.
func formatRange(start, end civil.Date, format string) string {
	s, _ := dateutil.FormatDate(start, format)
	if start == end {
		return s
	}
	e, _ := dateutil.FormatDate(end, format)
	return s + " → " + e
}
