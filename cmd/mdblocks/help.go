package main

import (
	"fmt"
	"io"

	mdblocks "github.com/alnah/go-mdblocks"
	"github.com/alnah/go-mdblocks/internal/blocks"
	"github.com/alnah/go-mdblocks/internal/htmlview"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdblocks <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert markdown files with cards and projects blocks to HTML (and PDF)")
	fmt.Fprintln(w, "  plan       Print a YAML plan file as a tree")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdblocks help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdblocks convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to standalone HTML, and optionally PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output .html file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintf(w, "  -w, --workers <n>         Parallel workers (0 = auto, max %d)\n", mdblocks.MaxPoolSize)
	fmt.Fprintln(w, "      --css <path>          Stylesheet file")
	fmt.Fprintln(w, "      --title <s>           Document title (\"\" = first H1, then file name)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Blocks:")
	fmt.Fprintf(w, "      --cols <n>            Default card columns (1-%d, default: %d)\n", blocks.MaxColumns, htmlview.DefaultColumns)
	fmt.Fprintln(w, "      --image-bg            Render card images as backgrounds")
	fmt.Fprintf(w, "      --period-format <s>   Plan month labels (default: %q)\n", htmlview.DefaultPeriodFormat)
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets: iso, european, us, long, month")
	fmt.Fprintln(w, "      --hide-descriptions   Hide plan activity descriptions")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PDF:")
	fmt.Fprintln(w, "      --pdf                 Also write a PDF next to each HTML file")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF generation timeout (default: 30s)")
	fmt.Fprintf(w, "  -p, --page-size <s>       Page size: letter, a4, legal (default: %s)\n", mdblocks.PageSizeLetter)
	fmt.Fprintf(w, "      --orientation <s>     Orientation: portrait, landscape (default: %s)\n", mdblocks.OrientationPortrait)
	fmt.Fprintf(w, "      --margin <f>          Margin in inches, %.2f-%.1f (default: %.1f)\n", mdblocks.MinMargin, mdblocks.MaxMargin, mdblocks.DefaultMargin)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDBLOCKS_CONFIG, MDBLOCKS_OUTPUT_DIR, MDBLOCKS_TIMEOUT, MDBLOCKS_WORKERS")
	fmt.Fprintln(w, "  Flags win over environment, environment wins over the config file.")
}

// printPlanUsage prints usage for the plan command.
func printPlanUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdblocks plan <file.yaml> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the activities of a plan file as a tree with their date spans.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --date-format <s>     Date format or preset (default: iso)")
	fmt.Fprintln(w, "      --descriptions        Show activity descriptions")
	fmt.Fprintln(w, "      --no-color            Disable colored output")
}

// runHelp prints help for a specific command and returns the exit code.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "plan":
		printPlanUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdblocks version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mdblocks help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
