package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/mchmarny/hrsite/pkg/site/content"
)

func Hero(h content.Hero) g.Node {
	return Section(
		ID("hero"),
		Class("hero"),
		Div(
			Class("container hero-inner"),
			A(
				Class("hero-badge"),
				Href("/services"),
				Span(Class("hero-badge-tag"), g.Text(h.Badge)),
				g.Text(" Explore the platform"),
			),
			H1(
				Class("hero-title"),
				g.Text(h.Title),
				Br(),
				Span(Class("hero-accent"), g.Text(h.Accent)),
			),
			P(Class("hero-subtitle"), g.Text(h.Subtitle)),
			Div(
				Class("hero-actions"),
				A(Href("#demo"), Class("btn btn-primary"), Icon("lucide--calendar", ""), g.Text("Book a Demo")),
				A(Href("/services"), Class("btn btn-ghost"), Icon("lucide--arrow-right", ""), g.Text("See Services")),
			),
		),
	)
}

func StatsBar() g.Node {
	return Section(
		Class("stats container"),
		g.Group(g.Map(content.Stats, func(s content.Stat) g.Node {
			return Div(
				Class("stat"),
				P(Class("stat-value"), g.Text(s.Value)),
				P(Class("stat-label"), g.Text(s.Label)),
			)
		})),
	)
}
