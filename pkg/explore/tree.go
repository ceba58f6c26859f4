package explore

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/FuelLabs/pest/pkg/result"
)

// treeNode is one matched rule in the tree with its expansion state.
type treeNode[R comparable] struct {
	pair     result.Pair[R]
	parent   *treeNode[R]
	children []*treeNode[R]
	depth    int
	expanded bool
}

// buildNodes turns a sibling iterator into tree nodes, fully expanded.
func buildNodes[R comparable](pairs result.Pairs[R], parent *treeNode[R], depth int) []*treeNode[R] {
	var nodes []*treeNode[R]
	for p := range pairs.All() {
		n := &treeNode[R]{pair: p, parent: parent, depth: depth, expanded: true}
		n.children = buildNodes(p.Inner(), n, depth+1)
		nodes = append(nodes, n)
	}
	return nodes
}

// flattenNodes lists the visible rows: every node whose ancestors are all
// expanded, in document order.
func flattenNodes[R comparable](roots []*treeNode[R]) []*treeNode[R] {
	var rows []*treeNode[R]
	var walk func(*treeNode[R])
	walk = func(n *treeNode[R]) {
		rows = append(rows, n)
		if n.expanded {
			for _, c := range n.children {
				walk(c)
			}
		}
	}
	for _, r := range roots {
		walk(r)
	}
	return rows
}

// collectNodes lists every node in document order, expansion state ignored.
func collectNodes[R comparable](roots []*treeNode[R]) []*treeNode[R] {
	var all []*treeNode[R]
	var walk func(*treeNode[R])
	walk = func(n *treeNode[R]) {
		all = append(all, n)
		for _, c := range n.children {
			walk(c)
		}
	}
	for _, r := range roots {
		walk(r)
	}
	return all
}

// treePane is the top-right pane listing the match tree.
type treePane[R comparable] struct {
	roots   []*treeNode[R]
	rows    []*treeNode[R]
	total   int
	cursor  int
	offset  int
	width   int
	height  int
	focused bool
}

func newTreePane[R comparable](pairs result.Pairs[R]) treePane[R] {
	tp := treePane[R]{roots: buildNodes(pairs, nil, 0)}
	tp.rows = flattenNodes(tp.roots)
	tp.total = len(collectNodes(tp.roots))
	return tp
}

func (tp treePane[R]) selectedNode() *treeNode[R] {
	if tp.cursor < 0 || tp.cursor >= len(tp.rows) {
		return nil
	}
	return tp.rows[tp.cursor]
}

func (tp treePane[R]) Update(msg tea.Msg) (treePane[R], tea.Cmd) {
	if !tp.focused {
		return tp, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case keyMatches(msg, defaultKeys.Up):
			if tp.cursor > 0 {
				tp.cursor--
				tp.ensureVisible()
			}
		case keyMatches(msg, defaultKeys.Down):
			if tp.cursor < len(tp.rows)-1 {
				tp.cursor++
				tp.ensureVisible()
			}
		case keyMatches(msg, defaultKeys.Home):
			tp.cursor = 0
			tp.offset = 0
		case keyMatches(msg, defaultKeys.End):
			tp.cursor = max(0, len(tp.rows)-1)
			tp.ensureVisible()
		case keyMatches(msg, defaultKeys.PageDown):
			tp.cursor = min(tp.cursor+tp.visibleRows(), max(0, len(tp.rows)-1))
			tp.ensureVisible()
		case keyMatches(msg, defaultKeys.PageUp):
			tp.cursor = max(tp.cursor-tp.visibleRows(), 0)
			tp.ensureVisible()
		case keyMatches(msg, defaultKeys.Right):
			tp.expandCurrent()
		case keyMatches(msg, defaultKeys.Left):
			tp.collapseCurrent()
		case keyMatches(msg, defaultKeys.ToggleNode):
			tp.toggleCurrent()
		case keyMatches(msg, defaultKeys.ExpandAll):
			tp.expandAll()
		}
	}

	return tp, nil
}

// expandCurrent opens the selected rule, or steps into its first child when
// it is already open.
func (tp *treePane[R]) expandCurrent() {
	n := tp.selectedNode()
	if n == nil || len(n.children) == 0 {
		return
	}
	if n.expanded {
		tp.cursor++ // first child follows its parent in document order
		tp.ensureVisible()
		return
	}
	n.expanded = true
	tp.refreshRows(n)
}

// collapseCurrent closes the selected rule, or moves to its parent when
// there is nothing to close.
func (tp *treePane[R]) collapseCurrent() {
	n := tp.selectedNode()
	if n == nil {
		return
	}
	if n.expanded && len(n.children) > 0 {
		n.expanded = false
		tp.refreshRows(n)
		return
	}
	if n.parent != nil {
		tp.refreshRows(n.parent)
	}
}

func (tp *treePane[R]) toggleCurrent() {
	n := tp.selectedNode()
	if n == nil || len(n.children) == 0 {
		return
	}
	n.expanded = !n.expanded
	tp.refreshRows(n)
}

func (tp *treePane[R]) expandAll() {
	keep := tp.selectedNode()
	for _, n := range collectNodes(tp.roots) {
		n.expanded = true
	}
	tp.refreshRows(keep)
}

// jumpToRule moves the cursor to the next node named name, searching in
// document order from just past the cursor and wrapping around. Collapsed
// ancestors are expanded so the target is visible.
func (tp *treePane[R]) jumpToRule(name string) {
	all := collectNodes(tp.roots)
	if len(all) == 0 {
		return
	}
	start := 0
	if cur := tp.selectedNode(); cur != nil {
		start = indexOfNode(all, cur) + 1
	}
	for i := 0; i < len(all); i++ {
		n := all[(start+i)%len(all)]
		if ruleName(n.pair.Rule()) != name {
			continue
		}
		for a := n.parent; a != nil; a = a.parent {
			a.expanded = true
		}
		tp.refreshRows(n)
		return
	}
}

// refreshRows rebuilds the visible rows and keeps the cursor on keep.
func (tp *treePane[R]) refreshRows(keep *treeNode[R]) {
	tp.rows = flattenNodes(tp.roots)
	if idx := indexOfNode(tp.rows, keep); idx >= 0 {
		tp.cursor = idx
	} else if tp.cursor >= len(tp.rows) {
		tp.cursor = max(0, len(tp.rows)-1)
	}
	tp.ensureVisible()
}

func (tp treePane[R]) View() string {
	if tp.width <= 0 || tp.height <= 0 {
		return ""
	}

	contentWidth := tp.width - 4 // borders
	colSpan := 12
	colRule := min(28, contentWidth/3)
	colText := contentWidth - colRule - colSpan - 3 // separators
	if colText < 8 {
		colText = 8
	}

	var b strings.Builder

	header := fmt.Sprintf(" %-*s %*s  %s", colRule, "Rule", colSpan, "Span", "Text")
	b.WriteString(headerRowStyle.Width(contentWidth).Render(truncateString(header, contentWidth)))
	b.WriteString("\n")

	b.WriteString(strings.Repeat("─", contentWidth))
	b.WriteString("\n")

	visibleEnd := min(tp.offset+tp.visibleRows(), len(tp.rows))
	for i := tp.offset; i < visibleEnd; i++ {
		n := tp.rows[i]
		isCurrent := i == tp.cursor

		arrow := " "
		if len(n.children) > 0 {
			arrow = "▸"
			if n.expanded {
				arrow = "▾"
			}
		}
		label := fmt.Sprintf("%s%s %v", strings.Repeat("  ", n.depth), arrow, n.pair.Rule())
		spanStr := fmt.Sprintf("%d..%d", n.pair.Span().Start(), n.pair.Span().End())

		line := fmt.Sprintf(" %-*s %*s  %s",
			colRule, truncateString(label, colRule),
			colSpan, spanStr,
			previewText(n.pair.Text(), colText),
		)

		if isCurrent && tp.focused {
			line = selectedRowStyle.Width(contentWidth).Render(stripAnsi(line))
		}

		b.WriteString(padRight(line, contentWidth))
		if i < visibleEnd-1 {
			b.WriteString("\n")
		}
	}

	// Fill empty rows
	for i := visibleEnd - tp.offset; i < tp.visibleRows(); i++ {
		b.WriteString(strings.Repeat(" ", contentWidth))
		if i < tp.visibleRows()-1 {
			b.WriteString("\n")
		}
	}

	title := titleStyle.Render(fmt.Sprintf(" Tree (%d rules, %d shown) ", tp.total, len(tp.rows)))

	borderStyle := inactiveBorderStyle
	if tp.focused {
		borderStyle = activeBorderStyle
	}

	content := borderStyle.
		Width(tp.width - 2).
		Height(tp.height - 3).
		Render(b.String())

	return lipgloss.JoinVertical(lipgloss.Left, title, content)
}

func (tp treePane[R]) visibleRows() int {
	return max(1, tp.height-6) // title + border + header + separator
}

func (tp *treePane[R]) ensureVisible() {
	if tp.cursor < tp.offset {
		tp.offset = tp.cursor
	}
	if tp.cursor >= tp.offset+tp.visibleRows() {
		tp.offset = tp.cursor - tp.visibleRows() + 1
	}
}

func (tp *treePane[R]) setSize(w, h int) {
	tp.width = w
	tp.height = h
}

func indexOfNode[R comparable](nodes []*treeNode[R], target *treeNode[R]) int {
	for i, n := range nodes {
		if n == target {
			return i
		}
	}
	return -1
}

// ruleName renders a rule value for display and grouping.
func ruleName[R comparable](r R) string {
	return fmt.Sprintf("%v", r)
}

// previewText collapses matched text onto a single line for a table cell.
func previewText(s string, maxLen int) string {
	return truncateString(strings.Join(strings.Fields(s), " "), maxLen)
}
