package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FuelLabs/pest/pkg/demo"
)

var jsonCompact bool

var jsonCmd = &cobra.Command{
	Use:   "json [file]",
	Short: "Serialize the match tree of a document as JSON",
	Long: `Parse a document and print its match tree as JSON.

Each matched rule becomes an object with its byte range, its rule name,
and either the matched text or the list of inner rules. Reads from stdin
when the file is "-" or absent.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runJSON,
}

func init() {
	jsonCmd.Flags().BoolVar(&jsonCompact, "compact", false, "Emit the tree on a single line")
}

func runJSON(cmd *cobra.Command, args []string) error {
	text, name, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	pairs, _, err := demo.Parse(text)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}

	out := cmd.OutOrStdout()
	if jsonCompact {
		data, err := pairs.MarshalJSON()
		if err != nil {
			return fmt.Errorf("serializing %s: %w", name, err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintln(out, pairs.ToJSON())
	return nil
}
