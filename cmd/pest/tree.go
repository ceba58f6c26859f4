package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/FuelLabs/pest/pkg/demo"
	"github.com/FuelLabs/pest/pkg/result"
)

var (
	treeColor    string
	treeMaxDepth int
)

var treeCmd = &cobra.Command{
	Use:   "tree [file]",
	Short: "Render the match tree of a document",
	Long: `Parse a document and print its match tree, one rule per line.

Each line shows the rule name and the byte range it matched. Rules with
no inner rules also show the matched text. Reads from stdin when the
file is "-" or absent.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTree,
}

func init() {
	treeCmd.Flags().StringVar(&treeColor, "color", "auto", "Color output: auto, always, never")
	treeCmd.Flags().IntVar(&treeMaxDepth, "max-depth", 0, "Maximum tree depth to print (0 = unlimited)")
}

func runTree(cmd *cobra.Command, args []string) error {
	text, name, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	pairs, _, err := demo.Parse(text)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}

	setupColor(treeColor)
	s := newStyles(!color.NoColor)

	out := cmd.OutOrStdout()
	for p := range pairs.All() {
		printTree(out, s, p, 0)
	}
	return nil
}

// printTree writes one line for p and recurses into its inner pairs.
func printTree(out io.Writer, s *styles, p result.Pair[demo.Rule], depth int) {
	sp := p.Span()
	line, col := sp.StartPos().LineCol()
	row := fmt.Sprintf("%s%s %s",
		strings.Repeat("  ", depth),
		s.rule.Sprint(p.Rule()),
		s.span.Sprintf("%d..%d (%d:%d)", sp.Start(), sp.End(), line, col),
	)

	inner := p.Inner()
	if _, ok := inner.Peek(); !ok {
		fmt.Fprintf(out, "%s %s\n", row, s.text.Sprint(clip(p.Text(), 60)))
		return
	}
	if treeMaxDepth > 0 && depth+1 >= treeMaxDepth {
		fmt.Fprintf(out, "%s %s\n", row, s.span.Sprint("..."))
		return
	}

	fmt.Fprintln(out, row)
	for c := range inner.All() {
		printTree(out, s, c, depth+1)
	}
}

// clip shortens s to at most maxLen bytes for single-line display.
func clip(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// styles holds the color styles used by the tree and tokens commands.
type styles struct {
	rule  *color.Color
	span  *color.Color
	text  *color.Color
	start *color.Color
	end   *color.Color
}

func newStyles(enabled bool) *styles {
	s := &styles{
		rule:  color.New(color.FgHiBlue, color.Bold),
		span:  color.New(color.FgHiBlack),
		text:  color.New(color.FgYellow),
		start: color.New(color.FgHiGreen),
		end:   color.New(color.FgHiRed),
	}

	if !enabled {
		for _, c := range []*color.Color{s.rule, s.span, s.text, s.start, s.end} {
			c.DisableColor()
		}
	}
	return s
}

// setupColor applies the --color flag to the global color state.
func setupColor(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		// Auto mode: disable colors when not writing to a terminal
		// or when NO_COLOR is set.
		if !term.IsTerminal(int(os.Stdout.Fd())) || os.Getenv("NO_COLOR") != "" {
			color.NoColor = true
		}
	}
}
