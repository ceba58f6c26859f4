// Package explore is an interactive terminal browser for a match tree:
// a collapsible rule tree, per-rule counts, and a details pane for the
// selected match.
package explore

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/FuelLabs/pest/pkg/result"
	"github.com/FuelLabs/pest/pkg/span"
)

// focusedPane tracks which pane has keyboard focus.
type focusedPane int

const (
	paneSummary focusedPane = iota
	paneTree
	paneDetails
)

// overlay tracks which modal overlay is active.
type overlay int

const (
	overlayNone overlay = iota
	overlayHelp
	overlaySource
)

// Model is the root Bubble Tea model for the explore TUI.
type Model[R comparable] struct {
	src     *span.Source
	summary summaryPane
	tree    treePane[R]
	details detailsPane[R]

	focus         focusedPane
	activeOverlay overlay
	showSummary   bool

	// Help state
	helpContent string
	helpOffset  int

	// Source viewer state
	sourceContent string
	sourceOffset  int

	width  int
	height int
}

// New creates a Model browsing the given match tree over its source.
func New[R comparable](pairs result.Pairs[R], src *span.Source) Model[R] {
	m := Model[R]{
		src:         src,
		summary:     newSummaryPane(buildSummary(pairs)),
		tree:        newTreePane(pairs),
		details:     newDetailsPane[R](),
		focus:       paneTree,
		showSummary: true,
	}

	// Set initial focus
	m.tree.focused = true

	// Select first rule
	if n := m.tree.selectedNode(); n != nil {
		m.details.setNode(n)
	}

	return m
}

func (m Model[R]) Init() tea.Cmd {
	return tea.SetWindowTitle("pest explore")
}

func (m Model[R]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		if m.activeOverlay != overlayNone {
			return m, nil
		}
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.handleMouseClick(msg.X, msg.Y)
		return m, nil

	case tea.KeyMsg:
		// Handle overlays first
		if m.activeOverlay != overlayNone {
			m.updateOverlay(msg)
			return m, nil
		}

		// Global keys (work regardless of focus)
		switch {
		case keyMatches(msg, defaultKeys.ForceQuit):
			return m, tea.Quit
		case keyMatches(msg, defaultKeys.Quit):
			return m, tea.Quit
		case keyMatches(msg, defaultKeys.ToggleHelp):
			m.activeOverlay = overlayHelp
			m.helpOffset = 0
			m.helpContent = renderHelp()
			return m, nil
		case keyMatches(msg, defaultKeys.ToggleSummary):
			m.showSummary = !m.showSummary
			return m, nil
		case keyMatches(msg, defaultKeys.FocusSummary):
			m.setFocus(paneSummary)
			return m, nil
		case keyMatches(msg, defaultKeys.FocusTree):
			m.setFocus(paneTree)
			return m, nil
		case keyMatches(msg, defaultKeys.FocusDetails):
			m.setFocus(paneDetails)
			return m, nil
		case keyMatches(msg, defaultKeys.OpenSource):
			m.openSource()
			return m, nil
		}

		// Delegate to focused pane
		switch m.focus {
		case paneSummary:
			if keyMatches(msg, defaultKeys.ToggleNode) {
				if name := m.summary.selectedRule(); name != "" {
					m.tree.jumpToRule(name)
					m.syncDetails()
				}
				return m, nil
			}
			var cmd tea.Cmd
			m.summary, cmd = m.summary.Update(msg)
			return m, cmd
		case paneTree:
			prevNode := m.tree.selectedNode()
			var cmd tea.Cmd
			m.tree, cmd = m.tree.Update(msg)
			if m.tree.selectedNode() != prevNode {
				m.syncDetails()
			}
			return m, cmd
		case paneDetails:
			var cmd tea.Cmd
			m.details, cmd = m.details.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m *Model[R]) updateOverlay(msg tea.KeyMsg) {
	switch m.activeOverlay {
	case overlayHelp:
		switch {
		case keyMatches(msg, defaultKeys.Quit),
			keyMatches(msg, defaultKeys.ForceQuit),
			keyMatches(msg, defaultKeys.ToggleHelp):
			m.activeOverlay = overlayNone
		case keyMatches(msg, defaultKeys.Down):
			m.helpOffset++
		case keyMatches(msg, defaultKeys.Up):
			if m.helpOffset > 0 {
				m.helpOffset--
			}
		case keyMatches(msg, defaultKeys.PageDown):
			m.helpOffset += m.height / 2
		case keyMatches(msg, defaultKeys.PageUp):
			m.helpOffset = max(0, m.helpOffset-m.height/2)
		}
	case overlaySource:
		switch {
		case keyMatches(msg, defaultKeys.Quit),
			keyMatches(msg, defaultKeys.ForceQuit),
			keyMatches(msg, defaultKeys.OpenSource):
			m.activeOverlay = overlayNone
		case keyMatches(msg, defaultKeys.Down):
			m.sourceOffset++
		case keyMatches(msg, defaultKeys.Up):
			if m.sourceOffset > 0 {
				m.sourceOffset--
			}
		case keyMatches(msg, defaultKeys.PageDown):
			m.sourceOffset += m.height / 2
		case keyMatches(msg, defaultKeys.PageUp):
			m.sourceOffset = max(0, m.sourceOffset-m.height/2)
		}
	}
}

func (m Model[R]) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Render overlays
	if m.activeOverlay != overlayNone {
		return m.renderOverlay()
	}

	// Status bar (bottom)
	statusBar := m.renderStatusBar()

	// Main layout
	contentHeight := m.height - 2 // status bar + padding

	var mainContent string
	if m.showSummary {
		summaryWidth := min(m.width*30/100, 40)
		dataWidth := m.width - summaryWidth

		treeHeight := contentHeight * 40 / 100
		detailsHeight := contentHeight - treeHeight

		m.summary.setSize(summaryWidth, contentHeight)
		m.tree.setSize(dataWidth, treeHeight)
		m.details.setSize(dataWidth, detailsHeight)

		summaryView := m.summary.View()
		treeView := m.tree.View()
		detailsView := m.details.View()

		dataColumn := lipgloss.JoinVertical(lipgloss.Left, treeView, detailsView)
		mainContent = lipgloss.JoinHorizontal(lipgloss.Top, summaryView, dataColumn)
	} else {
		dataWidth := m.width
		treeHeight := contentHeight * 40 / 100
		detailsHeight := contentHeight - treeHeight

		m.tree.setSize(dataWidth, treeHeight)
		m.details.setSize(dataWidth, detailsHeight)

		treeView := m.tree.View()
		detailsView := m.details.View()
		mainContent = lipgloss.JoinVertical(lipgloss.Left, treeView, detailsView)
	}

	return lipgloss.JoinVertical(lipgloss.Left, mainContent, statusBar)
}

func (m *Model[R]) renderStatusBar() string {
	left := statusBarStyle.Render(fmt.Sprintf(" %d rules | %d shown",
		m.tree.total, len(m.tree.rows)))

	right := fmt.Sprintf("%s:%s  %s:%s  %s:%s  %s:%s  %s:%s  %s:%s  %s:%s",
		helpKeyStyle.Render("j/k"), helpDescStyle.Render("nav"),
		helpKeyStyle.Render("h/l"), helpDescStyle.Render("fold"),
		helpKeyStyle.Render("s/t/d"), helpDescStyle.Render("focus"),
		helpKeyStyle.Render("o"), helpDescStyle.Render("source"),
		helpKeyStyle.Render("F7"), helpDescStyle.Render("rules"),
		helpKeyStyle.Render("?"), helpDescStyle.Render("help"),
		helpKeyStyle.Render("q"), helpDescStyle.Render("quit"),
	)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return left + strings.Repeat(" ", gap) + right
}

func (m *Model[R]) renderOverlay() string {
	overlayWidth := m.width * 80 / 100
	overlayHeight := m.height * 80 / 100

	var content string
	var title string

	switch m.activeOverlay {
	case overlayHelp:
		title = " Help (q to close) "
		content = m.renderScrollable(m.helpContent, m.helpOffset, overlayHeight-4)
	case overlaySource:
		title = " Source (q to close) "
		content = m.renderScrollable(m.sourceContent, m.sourceOffset, overlayHeight-4)
	}

	box := modalStyle.
		Width(overlayWidth - 4).
		Height(overlayHeight - 2).
		Render(content)

	titleRendered := titleStyle.Render(title)

	overlayView := lipgloss.JoinVertical(lipgloss.Left, titleRendered, box)

	// Center on screen
	hPad := (m.width - lipgloss.Width(overlayView)) / 2
	vPad := (m.height - lipgloss.Height(overlayView)) / 2

	return strings.Repeat("\n", max(0, vPad)) +
		lipgloss.NewStyle().PaddingLeft(max(0, hPad)).Render(overlayView)
}

func (m *Model[R]) renderScrollable(content string, offset, height int) string {
	lines := strings.Split(content, "\n")
	if offset >= len(lines) {
		offset = max(0, len(lines)-1)
	}
	end := min(offset+height, len(lines))
	return strings.Join(lines[offset:end], "\n")
}

func (m *Model[R]) setFocus(p focusedPane) {
	m.summary.focused = p == paneSummary
	m.tree.focused = p == paneTree
	m.details.focused = p == paneDetails
	m.focus = p
}

func (m *Model[R]) syncDetails() {
	m.details.setNode(m.tree.selectedNode())
}

// openSource fills the source overlay with the numbered input text and
// scrolls it to the selected match.
func (m *Model[R]) openSource() {
	var b strings.Builder
	whole := span.NewUnchecked(m.src, 0, m.src.Len())
	lineNo := 1
	for line := range whole.Lines().All() {
		fmt.Fprintf(&b, "%4d │ %s\n", lineNo, strings.TrimRight(line, "\r\n"))
		lineNo++
	}

	m.sourceContent = strings.TrimRight(b.String(), "\n")
	m.sourceOffset = 0
	if n := m.tree.selectedNode(); n != nil {
		line, _ := n.pair.LineCol()
		m.sourceOffset = max(0, line-1)
	}
	m.activeOverlay = overlaySource
}

func (m *Model[R]) handleMouseClick(x, y int) {
	contentHeight := m.height - 2
	treeHeight := contentHeight * 40 / 100

	summaryWidth := 0
	if m.showSummary {
		summaryWidth = min(m.width*30/100, 40)
	}

	if x < summaryWidth && y < contentHeight {
		// Clicked in summary pane
		m.setFocus(paneSummary)
		row := y - 2 // title + border top
		if row >= 0 {
			idx := row + m.summary.offset
			if idx >= 0 && idx < len(m.summary.rules) {
				m.summary.cursor = idx
				m.tree.jumpToRule(m.summary.selectedRule())
				m.syncDetails()
			}
		}
	} else if x >= summaryWidth && y < treeHeight {
		// Clicked in tree pane
		m.setFocus(paneTree)
		row := y - 4 // title + border top + header + separator
		if row >= 0 {
			idx := row + m.tree.offset
			if idx >= 0 && idx < len(m.tree.rows) {
				m.tree.cursor = idx
				m.syncDetails()
			}
		}
	} else if x >= summaryWidth && y >= treeHeight {
		// Clicked in details pane
		m.setFocus(paneDetails)
	}
}

// renderHelp generates help text.
func renderHelp() string {
	return `Pest Explore - Interactive Match Tree Browser

NAVIGATION
  j/k or Up/Down    Move cursor up/down
  h/l or Left/Right Collapse/expand the selected rule
  Ctrl+f/Ctrl+b     Page down/up
  g/G               Jump to top/bottom

FOCUS
  s                 Focus rules pane
  t                 Focus tree pane
  d                 Focus details pane
  F7                Toggle rules pane visibility

TREE
  x or Space        Toggle the selected rule open/closed
  Ctrl+r            Expand every rule
  x (rules pane)    Jump to the next match of the rule

VIEWS
  o                 Show the source, scrolled to the match
  ?                 Toggle this help screen

QUIT
  q                 Quit
  Ctrl+c            Force quit
`
}
