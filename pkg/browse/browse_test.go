package browse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/hrsite/pkg/menu"
)

func testTree() *menu.Menu {
	return menu.MustNew("Site",
		menu.Node{ID: "services", Label: "Services", Children: []menu.Node{
			{ID: "hrms", Label: "HRMS", Path: "/services/hrms"},
			{ID: "recruitment", Label: "Recruitment", Children: []menu.Node{
				{ID: "ats", Label: "Applicant Tracking", Path: "/services/applicant-tracking"},
			}},
		}},
		menu.Node{ID: "company", Label: "Company", Children: []menu.Node{
			{ID: "about", Label: "About", Path: "/about"},
		}},
		menu.Node{ID: "pricing", Label: "Pricing", Path: "/pricing"},
	)
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(k)
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keySpace = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestInitialView(t *testing.T) {
	m := New(testTree())
	assert.Nil(t, m.Init())
	assert.Len(t, m.Controller().Visible(), 3)

	view := m.View()
	assert.Contains(t, view, "Site")
	assert.Contains(t, view, "▸ Services")
	assert.NotContains(t, view, "HRMS")
}

func TestCursorClamps(t *testing.T) {
	m := New(testTree())
	m = press(t, m, keyUp)
	assert.Equal(t, 0, m.Cursor())

	m = press(t, m, keyDown, keyDown, keyDown, keyDown)
	assert.Equal(t, 2, m.Cursor())
}

func TestEnterTogglesBranch(t *testing.T) {
	m := New(testTree())
	m = press(t, m, keyEnter)

	assert.True(t, m.Controller().Expanded(menu.NewKey("services")))
	assert.Contains(t, m.View(), "▾ Services")
	assert.Contains(t, m.View(), "HRMS")
	assert.Equal(t, 0, m.Cursor())

	m = press(t, m, keySpace)
	assert.False(t, m.Controller().Expanded(menu.NewKey("services")))
}

func TestOpeningSiblingCloses(t *testing.T) {
	m := New(testTree())
	// services, then down past hrms and recruitment to company
	m = press(t, m, keyEnter, keyDown, keyDown, keyEnter, keyDown, keyDown, keyEnter)

	c := m.Controller()
	assert.True(t, c.Expanded(menu.NewKey("company")))
	assert.False(t, c.Expanded(menu.NewKey("services")))
	assert.False(t, c.Expanded(menu.NewKey("services", "recruitment")))
	assert.Equal(t, 1, m.Cursor())
}

func TestEnterLeafNavigates(t *testing.T) {
	m := New(testTree())
	m = press(t, m, keyEnter, keyDown, keyEnter)

	assert.Equal(t, "navigated to /services/hrms", m.Status())
	assert.Equal(t, 0, m.Controller().Len())
	assert.Equal(t, 0, m.Cursor())
	assert.Contains(t, m.View(), "navigated to /services/hrms")
}

func TestEscClosesAll(t *testing.T) {
	m := New(testTree())
	m = press(t, m, keyEnter, keyDown, keyDown, keyEnter, keyDown)
	require.Equal(t, 2, m.Controller().Len())

	m = press(t, m, keyEsc)
	assert.Equal(t, 0, m.Controller().Len())
	assert.Equal(t, "menu closed", m.Status())
	assert.Equal(t, 0, m.Cursor())
}

func TestQuit(t *testing.T) {
	m := New(testTree())
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, updated.View())
}

func TestIgnoresOtherMessages(t *testing.T) {
	m := New(testTree())
	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	assert.Equal(t, m.Cursor(), updated.(Model).Cursor())
}
