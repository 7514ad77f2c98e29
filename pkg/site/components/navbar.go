package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/mchmarny/hrsite/pkg/menu"
	"github.com/mchmarny/hrsite/pkg/session"
)

// Navbar renders the two navbar rows: a top strip with contact details and
// a country selector, and the main bar with the desktop menu, a second
// country selector and the mobile sidebar trigger.
func Navbar(c Chrome) g.Node {
	return Header(
		ID("topbar"),
		Class("topbar"),
		g.Attr("data-scrolling", ""),
		g.Attr("data-at-top", "true"),

		Div(
			Class("topbar-strip"),
			Span(Class("topbar-contact"), Icon("lucide--phone", ""), g.Text("+91 80 4000 1234")),
			Span(Class("topbar-contact"), Icon("lucide--mail", ""), g.Text("sales@peoplewise.example")),
			CountrySelector(c.CountryTop, session.RegionCountryTop, c),
		),

		Div(
			Class("topbar-main"),
			A(Href("/"), Class("topbar-logo"), Logo()),

			Nav(
				ID(session.RegionDesktopNav),
				Class("desktop-nav"),
				g.Attr("data-menu-root", ""),
				g.Attr("aria-label", "Main"),
				menuNodes(c.Desktop, c.Path, menu.Key{}, c.Desktop.Tree().Items),
			),

			Div(
				Class("topbar-actions"),
				CountrySelector(c.CountryMain, session.RegionCountryMain, c),
				A(Href("/#demo"), Class("btn btn-primary"), g.Text("Book a Demo")),
				postForm("/menu/sidebar/overlay",
					hidden("open", "true"),
					hidden("return", c.Path),
					Button(
						Type("submit"),
						Class("btn btn-ghost sidebar-trigger"),
						g.Attr("aria-label", "Open menu"),
						g.Attr("aria-controls", "sidebar"),
						g.Attr("aria-expanded", boolAttr(c.Sidebar.OverlayOpen())),
						Icon("lucide--menu", ""),
					),
				),
			),
		),

		g.If(c.AnyNavbarOpen(), DismissLayer(c.Path)),
	)
}

// CountrySelector renders one country dropdown. Each selector owns its own
// controller and registers as a separate menu region.
func CountrySelector(ctrl *menu.Controller, region string, c Chrome) g.Node {
	return Div(
		ID(region),
		Class("country-selector"),
		g.Attr("data-menu-root", ""),
		Span(Class("country-current"), Icon("lucide--map-pin", ""), g.Text(c.Country)),
		menuNodes(ctrl, c.Path, menu.Key{}, ctrl.Tree().Items),
	)
}

// DismissLayer covers the page while a dropdown is open so that a click
// outside the menus closes them without JavaScript.
func DismissLayer(ret string) g.Node {
	return postForm("/menu/dismiss",
		hidden("target", "page"),
		hidden("return", ret),
		Button(
			Type("submit"),
			Class("dismiss-layer"),
			g.Attr("aria-label", "Close menus"),
		),
	)
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
