package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/mchmarny/hrsite/pkg/menu"
)

// Sidebar renders the mobile navigation overlay. It uses the same tree as
// the desktop menu but its own controller, so the two never share state.
func Sidebar(c Chrome) g.Node {
	if !c.Sidebar.OverlayOpen() {
		return nil
	}

	return Div(
		ID("sidebar"),
		Class("sidebar"),
		g.Attr("role", "dialog"),
		g.Attr("aria-modal", "true"),

		postForm("/menu/sidebar/overlay",
			hidden("open", "false"),
			hidden("return", c.Path),
			Button(Type("submit"), Class("sidebar-backdrop"), g.Attr("aria-label", "Close menu")),
		),

		Aside(
			Class("sidebar-panel"),
			Div(
				Class("sidebar-header"),
				A(Href("/"), Logo()),
				postForm("/menu/sidebar/overlay",
					hidden("open", "false"),
					hidden("return", c.Path),
					Button(Type("submit"), Class("btn btn-ghost"), g.Attr("aria-label", "Close menu"), Icon("lucide--x", "")),
				),
			),
			Nav(
				Class("sidebar-nav"),
				g.Attr("aria-label", "Mobile"),
				menuNodes(c.Sidebar, c.Path, menu.Key{}, c.Sidebar.Tree().Items),
			),
			A(Href("/#demo"), Class("btn btn-primary sidebar-cta"), g.Text("Book a Demo")),
		),
	)
}
