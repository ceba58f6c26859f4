package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/FuelLabs/pest/pkg/demo"
	"github.com/FuelLabs/pest/pkg/explore"
)

var exploreCmd = &cobra.Command{
	Use:   "explore [file]",
	Short: "Interactively browse the match tree of a document",
	Long: `Parse a document and browse its match tree in an interactive TUI.

Features:
  - Collapsible tree of every matched rule with span and text
  - Rule summary pane that jumps to the next match of a rule
  - Details pane with span, location, and matched text
  - Source viewer scrolled to the selected match
  - Vi-style navigation (hjkl, Ctrl-f/b, g/G)

Reads from stdin when the file is "-" or absent.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExplore,
}

func runExplore(cmd *cobra.Command, args []string) error {
	text, name, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	pairs, src, err := demo.Parse(text)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}

	model := explore.New(pairs, src)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running explore TUI: %w", err)
	}
	return nil
}
