package explore

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/FuelLabs/pest/pkg/result"
)

// ruleSummary is one rule with its occurrence count across the whole tree.
type ruleSummary struct {
	Name  string
	Count int
}

// buildSummary counts every rule in the tree, sorted by name.
func buildSummary[R comparable](pairs result.Pairs[R]) []ruleSummary {
	counts := make(map[string]int)
	for p := range pairs.Flatten().All() {
		counts[ruleName(p.Rule())]++
	}
	rules := make([]ruleSummary, 0, len(counts))
	for name, c := range counts {
		rules = append(rules, ruleSummary{Name: name, Count: c})
	}
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].Name < rules[j].Name
	})
	return rules
}

// summaryPane is the left-side rule list with occurrence counts.
type summaryPane struct {
	rules   []ruleSummary
	cursor  int
	offset  int
	width   int
	height  int
	focused bool
}

func newSummaryPane(rules []ruleSummary) summaryPane {
	return summaryPane{rules: rules}
}

func (sp summaryPane) selectedRule() string {
	if sp.cursor < 0 || sp.cursor >= len(sp.rules) {
		return ""
	}
	return sp.rules[sp.cursor].Name
}

func (sp summaryPane) Update(msg tea.Msg) (summaryPane, tea.Cmd) {
	if !sp.focused {
		return sp, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case keyMatches(msg, defaultKeys.Up):
			if sp.cursor > 0 {
				sp.cursor--
				sp.ensureVisible()
			}
		case keyMatches(msg, defaultKeys.Down):
			if sp.cursor < len(sp.rules)-1 {
				sp.cursor++
				sp.ensureVisible()
			}
		case keyMatches(msg, defaultKeys.Home):
			sp.cursor = 0
			sp.offset = 0
		case keyMatches(msg, defaultKeys.End):
			sp.cursor = max(0, len(sp.rules)-1)
			sp.ensureVisible()
		case keyMatches(msg, defaultKeys.PageDown):
			sp.cursor = min(sp.cursor+sp.visibleRows(), max(0, len(sp.rules)-1))
			sp.ensureVisible()
		case keyMatches(msg, defaultKeys.PageUp):
			sp.cursor = max(sp.cursor-sp.visibleRows(), 0)
			sp.ensureVisible()
		}
	}

	return sp, nil
}

func (sp summaryPane) View() string {
	if sp.width <= 0 || sp.height <= 0 {
		return ""
	}

	var b strings.Builder
	visibleEnd := min(sp.offset+sp.visibleRows(), len(sp.rules))

	for i := sp.offset; i < visibleEnd; i++ {
		r := sp.rules[i]
		isCurrent := i == sp.cursor

		label := truncateString(r.Name, sp.width-10)
		line := fmt.Sprintf(" %-*s %4d", sp.width-10, label, r.Count)

		if isCurrent && sp.focused {
			line = selectedRowStyle.Width(sp.width - 2).Render(stripAnsi(line))
		}

		b.WriteString(padRight(line, sp.width-2))
		if i < visibleEnd-1 {
			b.WriteString("\n")
		}
	}

	// Fill remaining lines
	for i := visibleEnd - sp.offset; i < sp.visibleRows(); i++ {
		b.WriteString(strings.Repeat(" ", sp.width-2))
		if i < sp.visibleRows()-1 {
			b.WriteString("\n")
		}
	}

	title := titleStyle.Render(" Rules ")

	borderStyle := inactiveBorderStyle
	if sp.focused {
		borderStyle = activeBorderStyle
	}

	content := borderStyle.
		Width(sp.width - 2).
		Height(sp.height - 3).
		Render(b.String())

	return lipgloss.JoinVertical(lipgloss.Left, title, content)
}

func (sp summaryPane) visibleRows() int {
	return max(1, sp.height-4) // account for title + border
}

func (sp *summaryPane) ensureVisible() {
	if sp.cursor < sp.offset {
		sp.offset = sp.cursor
	}
	if sp.cursor >= sp.offset+sp.visibleRows() {
		sp.offset = sp.cursor - sp.visibleRows() + 1
	}
}

func (sp *summaryPane) setSize(w, h int) {
	sp.width = w
	sp.height = h
}

// Helper functions

func keyMatches(msg tea.KeyMsg, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if msg.String() == k {
			return true
		}
	}
	return false
}

func truncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, width int) string {
	visLen := lipgloss.Width(s)
	if visLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visLen)
}

// stripAnsi removes ANSI escape sequences for re-styling.
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}
