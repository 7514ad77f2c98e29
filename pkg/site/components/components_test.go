package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/mchmarny/hrsite/pkg/menu"
	"github.com/mchmarny/hrsite/pkg/site/forms"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func testTree() *menu.Menu {
	return menu.MustNew("Test",
		menu.Node{ID: "services", Label: "Services", Children: []menu.Node{
			{ID: "payroll", Label: "Payroll", Path: "/services/payroll"},
		}},
		menu.Node{ID: "pricing", Label: "Pricing", Path: "/pricing"},
	)
}

func testChrome() Chrome {
	tree := testTree()
	return Chrome{
		Path:        "/about",
		Desktop:     menu.NewController(tree, menu.WithName("desktop")),
		Sidebar:     menu.NewController(tree, menu.WithName("sidebar"), menu.WithSidebar()),
		CountryTop:  menu.NewController(tree, menu.WithName("country-top")),
		CountryMain: menu.NewController(tree, menu.WithName("country-main")),
		Country:     "India",
	}
}

func TestNavbarCollapsed(t *testing.T) {
	c := testChrome()
	html := render(t, Navbar(c))

	assert.Contains(t, html, `action="/menu/desktop/toggle"`)
	assert.Contains(t, html, `action="/menu/desktop/navigate"`)
	assert.Contains(t, html, `aria-expanded="false"`)
	assert.NotContains(t, html, "/services/payroll")
	assert.NotContains(t, html, "dismiss-layer")
	assert.Contains(t, html, `value="/about"`)
	assert.False(t, c.AnyNavbarOpen())
}

func TestNavbarExpanded(t *testing.T) {
	c := testChrome()
	c.Desktop.Toggle(menu.NewKey("services"))
	html := render(t, Navbar(c))

	assert.Contains(t, html, `data-expanded="true"`)
	assert.Contains(t, html, `value="/services/payroll"`)
	assert.Contains(t, html, "dismiss-layer")
	assert.True(t, c.AnyNavbarOpen())
}

func TestSidebar(t *testing.T) {
	c := testChrome()
	assert.Nil(t, Sidebar(c))

	c.Sidebar.OpenOverlay()
	html := render(t, Sidebar(c))
	assert.Contains(t, html, `id="sidebar"`)
	assert.Contains(t, html, `action="/menu/sidebar/toggle"`)

	c.Desktop.Toggle(menu.NewKey("services"))
	assert.NotContains(t, render(t, Sidebar(c)), "/services/payroll")
}

func TestLayout(t *testing.T) {
	c := testChrome()
	c.ShowPromo = true
	html := render(t, Layout(PageConfig{Title: "Hello"}, c, Message("Hi", "there")))

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>Hello</title>")
	assert.Contains(t, html, `id="promo"`)
	assert.Contains(t, html, "/static/js/menu.js")
	assert.NotContains(t, html, "data-menu-open")
}

func TestDemoFormErrors(t *testing.T) {
	html := render(t, DemoForm(forms.Demo{Name: "Asha", Size: "1-50"}, forms.Errors{"email": "bad email"}))

	assert.Contains(t, html, `value="Asha"`)
	assert.Contains(t, html, "bad email")
	assert.Contains(t, html, "has-error")
	assert.Contains(t, html, `<option value="1-50" selected>`)
}

func TestIcon(t *testing.T) {
	assert.Nil(t, Icon("", ""))
	assert.Contains(t, render(t, Icon("lucide--users size-4", "Users")), `data-icon="lucide:users"`)
	assert.Contains(t, render(t, Icon("lucide--users size-4", "Users")), `class="iconify icon size-4"`)
}
