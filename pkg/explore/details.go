package explore

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// detailsPane shows the selected rule's span, position and matched text.
type detailsPane[R comparable] struct {
	node    *treeNode[R]
	width   int
	height  int
	offset  int // scroll offset for content
	focused bool
}

func newDetailsPane[R comparable]() detailsPane[R] {
	return detailsPane[R]{}
}

func (dp *detailsPane[R]) setNode(n *treeNode[R]) {
	dp.node = n
	dp.offset = 0
}

func (dp detailsPane[R]) Update(msg tea.Msg) (detailsPane[R], tea.Cmd) {
	if !dp.focused {
		return dp, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case keyMatches(msg, defaultKeys.Up):
			if dp.offset > 0 {
				dp.offset--
			}
		case keyMatches(msg, defaultKeys.Down):
			dp.offset++
		case keyMatches(msg, defaultKeys.Home):
			dp.offset = 0
		case keyMatches(msg, defaultKeys.PageDown):
			dp.offset += dp.visibleRows()
		case keyMatches(msg, defaultKeys.PageUp):
			dp.offset = max(0, dp.offset-dp.visibleRows())
		}
	}

	return dp, nil
}

func (dp detailsPane[R]) View() string {
	if dp.width <= 0 || dp.height <= 0 {
		return ""
	}

	contentWidth := dp.width - 4

	var lines []string
	if dp.node == nil {
		lines = append(lines, "  No rule selected")
	} else {
		lines = detailLines(dp.node, contentWidth)
	}

	// Apply scroll offset
	if dp.offset >= len(lines) {
		dp.offset = max(0, len(lines)-1)
	}
	visibleLines := lines
	if dp.offset < len(visibleLines) {
		visibleLines = visibleLines[dp.offset:]
	}
	if len(visibleLines) > dp.visibleRows() {
		visibleLines = visibleLines[:dp.visibleRows()]
	}

	var b strings.Builder
	for i, line := range visibleLines {
		b.WriteString(padRight(truncateString(line, contentWidth), contentWidth))
		if i < len(visibleLines)-1 {
			b.WriteString("\n")
		}
	}
	// Fill empty
	for i := len(visibleLines); i < dp.visibleRows(); i++ {
		b.WriteString(strings.Repeat(" ", contentWidth))
		if i < dp.visibleRows()-1 {
			b.WriteString("\n")
		}
	}

	title := titleStyle.Render(" Details ")

	borderStyle := inactiveBorderStyle
	if dp.focused {
		borderStyle = activeBorderStyle
	}

	content := borderStyle.
		Width(dp.width - 2).
		Height(dp.height - 3).
		Render(b.String())

	return lipgloss.JoinVertical(lipgloss.Left, title, content)
}

// detailLines renders the detail fields for one node.
func detailLines[R comparable](n *treeNode[R], maxWidth int) []string {
	var lines []string

	p := n.pair
	sp := p.Span()

	lines = append(lines, fmt.Sprintf("  %s %s",
		fieldLabelStyle.Render("Rule:"),
		fieldValueStyle.Render(ruleName(p.Rule()))))

	lines = append(lines, fmt.Sprintf("  %s %d..%d (%d bytes)",
		fieldLabelStyle.Render("Span:"),
		sp.Start(), sp.End(), sp.End()-sp.Start()))

	startLine, startCol := sp.StartPos().LineCol()
	endLine, endCol := sp.EndPos().LineCol()
	lines = append(lines, fmt.Sprintf("  %s %d:%d - %d:%d",
		fieldLabelStyle.Render("Location:"),
		startLine, startCol, endLine, endCol))

	lines = append(lines, fmt.Sprintf("  %s %d",
		fieldLabelStyle.Render("Children:"),
		len(n.children)))

	lines = append(lines, fmt.Sprintf("  %s %d",
		fieldLabelStyle.Render("Tokens:"),
		p.Tokens().Len()))

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("  %s", fieldLabelStyle.Render("Text:")))

	textWidth := maxWidth - 6
	for i, line := range strings.Split(p.Text(), "\n") {
		lines = append(lines, fmt.Sprintf("    %s",
			matchTextStyle.Render(truncateString(line, textWidth))))
		if i >= 19 {
			lines = append(lines, "    ...")
			break
		}
	}

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("  %s", fieldLabelStyle.Render("Context:")))

	// Full source lines the span touches, numbered from the start line.
	num := startLine
	for line := range sp.Lines().All() {
		lines = append(lines, fmt.Sprintf("  %s %s",
			fieldValueStyle.Render(fmt.Sprintf("%4d │", num)),
			truncateString(strings.TrimRight(line, "\r\n"), textWidth)))
		num++
		if num-startLine >= 8 {
			lines = append(lines, "    ...")
			break
		}
	}

	return lines
}

func (dp detailsPane[R]) visibleRows() int {
	return max(1, dp.height-4)
}

func (dp *detailsPane[R]) setSize(w, h int) {
	dp.width = w
	dp.height = h
}
