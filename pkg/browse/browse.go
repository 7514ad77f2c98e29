// Package browse is a terminal browser over a navigation menu, driven by
// the same controller the site uses.
package browse

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mchmarny/hrsite/pkg/menu"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).MarginBottom(1)
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	branchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	leafStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	pathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).MarginTop(1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the bubbletea model of the browser.
type Model struct {
	ctrl    *menu.Controller
	history *menu.History

	cursor   int
	status   string
	quitting bool
}

// New returns a browser over tree with every branch collapsed.
func New(tree *menu.Menu) Model {
	h := &menu.History{}
	return Model{
		ctrl:    menu.NewController(tree, menu.WithName("browse"), menu.WithRouter(h)),
		history: h,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	visible := m.ctrl.Visible()
	switch key.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		m.cursor = moveCursor(m.cursor, -1, len(visible))
	case "down", "j":
		m.cursor = moveCursor(m.cursor, 1, len(visible))
	case "esc":
		if m.ctrl.DismissIfOutside() {
			m.status = "menu closed"
		}
		if len(visible) > 0 {
			m.focus(visible[m.cursor].Key)
		}
	case "enter", " ":
		if len(visible) == 0 {
			return m, nil
		}
		item := visible[m.cursor]
		if item.Node.IsLeaf() {
			m.ctrl.Navigate(item.Node.Path)
			m.status = fmt.Sprintf("navigated to %s", m.history.Take())
		} else {
			m.ctrl.Toggle(item.Key)
			m.status = ""
		}
		m.focus(item.Key)
	}
	return m, nil
}

// focus moves the cursor to k, or to its nearest visible ancestor.
func (m *Model) focus(k menu.Key) {
	visible := m.ctrl.Visible()
	best := -1
	for i, v := range visible {
		if k.HasPrefix(v.Key) && (best < 0 || len(v.Key) > len(visible[best].Key)) {
			best = i
		}
	}
	if best < 0 {
		best = 0
	}
	m.cursor = moveCursor(best, 0, len(visible))
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.ctrl.Tree().Title))
	b.WriteString("\n")

	for i, v := range m.ctrl.Visible() {
		b.WriteString(renderLine(v, i == m.cursor))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("↑/↓ move • enter toggle/open • esc close all • q quit"))
	b.WriteString("\n")
	return b.String()
}

func renderLine(v menu.VisibleNode, selected bool) string {
	indent := strings.Repeat("  ", v.Depth)

	var line string
	if v.Node.IsBranch() {
		marker := "▸"
		if v.Expanded {
			marker = "▾"
		}
		line = branchStyle.Render(fmt.Sprintf("%s %s", marker, v.Node.Label))
	} else {
		line = leafStyle.Render("• "+v.Node.Label) + " " + pathStyle.Render(v.Node.Path)
	}

	if selected {
		return cursorStyle.Render("> ") + indent + line
	}
	return "  " + indent + line
}

// Controller exposes the menu state, for inspection after a session.
func (m Model) Controller() *menu.Controller {
	return m.ctrl
}

// Status returns the last status line.
func (m Model) Status() string {
	return m.status
}

// Cursor returns the index of the selected row of Visible.
func (m Model) Cursor() int {
	return m.cursor
}

func moveCursor(cursor, delta, count int) int {
	if count == 0 {
		return 0
	}
	next := cursor + delta
	if next < 0 {
		return 0
	}
	if next >= count {
		return count - 1
	}
	return next
}
