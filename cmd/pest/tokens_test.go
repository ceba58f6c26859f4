package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTokensCmd creates a fresh tokens command for testing
func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:  "tokens [file]",
		Args: cobra.MaximumNArgs(1),
		RunE: runTokens,
	}
	cmd.Flags().StringVar(&tokensColor, "color", "auto", "Color output: auto, always, never")
	return cmd
}

func TestTokensCommand(t *testing.T) {
	// Execute: Run tokens command
	var stdout bytes.Buffer
	cmd := newTokensCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)
	cmd.SetIn(strings.NewReader("[true]"))
	cmd.SetArgs([]string{"--color", "never"})

	err := cmd.Execute()
	require.NoError(t, err)

	// Verify: Every start and end token in order, with a count
	want := `START value @0 (1:1)
START array @0 (1:1)
START bool @1 (1:2)
END   bool @5 (1:6)
END   array @6 (1:7)
END   value @6 (1:7)
6 tokens
`
	assert.Equal(t, want, stdout.String())
}

func TestTokensCommand_MultibytePositions(t *testing.T) {
	// Execute: Run tokens command on a document with multibyte text
	var stdout bytes.Buffer
	cmd := newTokensCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)
	cmd.SetIn(strings.NewReader(`["é", 1]`))
	cmd.SetArgs([]string{"--color", "never"})

	err := cmd.Execute()
	require.NoError(t, err)

	// Verify: Offsets count bytes, columns count runes
	output := stdout.String()
	assert.Contains(t, output, "START string @1 (1:2)")
	assert.Contains(t, output, "END   string @5 (1:5)")
	assert.Contains(t, output, "START number @7 (1:7)")
}

func TestTokensCommand_ParseError(t *testing.T) {
	// Execute: Run tokens command on a malformed document
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd := newTokensCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader("nul"))
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	// Verify: Error names the input and the position
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing stdin")
	assert.Contains(t, err.Error(), "1:1: expected value")
}
