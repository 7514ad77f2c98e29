package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/mchmarny/hrsite/pkg/site/content"
)

type PageConfig struct {
	Title       string
	Description string
	OGImage     string
}

// Layout wraps page content in the document shell and the shared chrome.
func Layout(config PageConfig, chrome Chrome, body ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = content.Company + " - HR software for growing teams"
	}

	if config.Description == "" {
		config.Description = "HRMS, payroll, documents and hiring in one platform."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				g.If(config.OGImage != "", Meta(g.Attr("property", "og:image"), Content(config.OGImage))),

				Link(Rel("stylesheet"), Href("/static/styles.css")),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				g.If(chrome.AnyNavbarOpen(), g.Attr("data-menu-open", "true")),

				Navbar(chrome),
				Sidebar(chrome),
				Main(ID("content"), g.Group(body)),
				PageFooter(),
				g.If(chrome.ShowPromo, PromoModal(chrome.Path)),

				Script(Type("module"), Src("/static/js/topbar-scroll.js")),
				Script(Type("module"), Src("/static/js/menu.js")),
			),
		),
	})
}
