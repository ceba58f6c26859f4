package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/FuelLabs/pest/pkg/demo"
	"github.com/FuelLabs/pest/pkg/result"
)

var tokensColor string

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "List the token stream of a document",
	Long: `Parse a document and print every start and end token in order.

Each line shows the token kind, the rule, the byte offset, and the
line:column position. Reads from stdin when the file is "-" or absent.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	tokensCmd.Flags().StringVar(&tokensColor, "color", "auto", "Color output: auto, always, never")
}

func runTokens(cmd *cobra.Command, args []string) error {
	text, name, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	pairs, _, err := demo.Parse(text)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}

	setupColor(tokensColor)
	s := newStyles(!color.NoColor)

	out := cmd.OutOrStdout()
	count := 0
	for tok := range pairs.Tokens().All() {
		count++
		kind := s.start.Sprintf("%-5s", "START")
		if tok.Kind == result.TokenEnd {
			kind = s.end.Sprintf("%-5s", "END")
		}
		line, col := tok.Pos.LineCol()
		fmt.Fprintf(out, "%s %s @%d (%d:%d)\n",
			kind, s.rule.Sprint(tok.Rule), tok.Pos.Offset(), line, col)
	}
	fmt.Fprintf(out, "%d tokens\n", count)
	return nil
}
