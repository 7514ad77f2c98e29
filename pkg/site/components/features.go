package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/mchmarny/hrsite/pkg/site/content"
)

func Features(features []content.Feature) g.Node {
	return Section(
		ID("features"),
		Class("container section"),
		Div(
			Class("section-head"),
			IconBadge("lucide--sparkles", "primary"),
			H2(Class("section-title"), g.Text("Everything HR, one record")),
			P(Class("section-lead"), g.Text("Modules that share data instead of copying it, so nothing falls out of sync.")),
		),
		Div(
			Class("grid grid-3"),
			g.Group(g.Map(features, func(f content.Feature) g.Node {
				return Div(
					Class("card"),
					IconBadge(f.Icon, f.Color),
					H3(Class("card-title"), g.Text(f.Title)),
					P(Class("card-text"), g.Text(f.Description)),
				)
			})),
		),
	)
}

// ServiceGrid lists every service with a link to its detail page.
func ServiceGrid(services []content.Service) g.Node {
	return Section(
		ID("services"),
		Class("container section"),
		Div(
			Class("grid grid-3"),
			g.Group(g.Map(services, func(s content.Service) g.Node {
				return A(
					Href(fmt.Sprintf("/services/%s", s.Slug)),
					Class("card card-link"),
					IconBadge(s.Icon, "primary"),
					H3(Class("card-title"), g.Text(s.Title)),
					P(Class("card-tagline"), g.Text(s.Tagline)),
					P(Class("card-text"), g.Text(s.Summary)),
				)
			})),
		),
	)
}

func ServiceDetail(s content.Service) g.Node {
	return Section(
		Class("container section service-detail"),
		Div(
			Class("section-head"),
			IconBadge(s.Icon, "primary"),
			H1(Class("section-title"), g.Text(s.Title)),
			P(Class("section-lead"), g.Text(s.Tagline)),
		),
		P(Class("service-summary"), g.Text(s.Summary)),
		Ul(
			Class("check-list"),
			g.Group(g.Map(s.Features, func(f string) g.Node {
				return Li(Icon("lucide--badge-check", "Included"), g.Text(f))
			})),
		),
		A(Href("/services"), Class("btn btn-ghost"), Icon("lucide--arrow-left", ""), g.Text("All services")),
	)
}

func WhyChooseUs(reasons []content.Reason) g.Node {
	return Section(
		ID("why"),
		Class("why section"),
		Div(
			Class("container"),
			Div(
				Class("section-head"),
				H2(Class("section-title"), g.Text("Why teams choose "+content.Company)),
			),
			Div(
				Class("grid grid-2"),
				g.Group(g.Map(reasons, func(r content.Reason) g.Node {
					return Div(
						Class("why-item"),
						Icon(r.Icon, ""),
						Div(
							H3(Class("card-title"), g.Text(r.Title)),
							P(Class("card-text"), g.Text(r.Detail)),
						),
					)
				})),
			),
		),
	)
}

// ContentPage renders a simple text page.
func ContentPage(p content.Page) g.Node {
	return Section(
		Class("container section content-page"),
		H1(Class("section-title"), g.Text(p.Title)),
		P(Class("section-lead"), g.Text(p.Lead)),
		g.Group(g.Map(p.Body, func(para string) g.Node {
			return P(g.Text(para))
		})),
	)
}

// Message renders a short titled notice, used for confirmations and errors.
func Message(title, body string) g.Node {
	return Section(
		Class("container section message"),
		H1(Class("section-title"), g.Text(title)),
		P(Class("section-lead"), g.Text(body)),
		A(Href("/"), Class("btn btn-primary"), g.Text("Back to home")),
	)
}
