package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pest",
	Short: "Pest - parse tree inspector",
	Long: `Pest parses a document with its built-in JSON grammar and renders
the resulting match tree.

Every rule the parser matched is kept as a pair of start/end tokens over
the original input, so the tree can be rendered without copying any text.
Use 'tree' for an indented view, 'json' for a serialized tree, 'tokens'
for the raw token stream, or 'explore' for an interactive browser.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(jsonCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(versionCmd)
}

// readInput returns the document to parse and a name for error messages.
// The document comes from the named file, or from stdin when the name is
// "-" or absent.
func readInput(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "stdin", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), args[0], nil
}
