package components

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/mchmarny/hrsite/pkg/site/content"
)

type footerLink struct {
	Label string
	Href  string
}

type footerColumn struct {
	Title string
	Links []footerLink
}

var footerColumns = []footerColumn{
	{"Services", []footerLink{
		{"HRMS", "/services/hrms"},
		{"Payroll", "/services/payroll"},
		{"File Manager", "/services/file-manager"},
		{"Attendance", "/services/attendance"},
	}},
	{"Company", []footerLink{
		{"About", "/about"},
		{"Careers", "/careers"},
		{"Pricing", "/pricing"},
		{"Contact", "/contact"},
	}},
}

func PageFooter() g.Node {
	return Footer(
		Class("footer"),
		Div(
			Class("container footer-inner"),
			Div(
				Class("footer-brand"),
				Logo(),
				P(Class("footer-text"), g.Text("HR software for growing teams.")),
			),
			g.Group(g.Map(footerColumns, func(col footerColumn) g.Node {
				return Div(
					Class("footer-column"),
					H3(Class("footer-heading"), g.Text(col.Title)),
					Ul(g.Group(g.Map(col.Links, func(l footerLink) g.Node {
						return Li(A(Href(l.Href), g.Text(l.Label)))
					}))),
				)
			})),
		),
		P(Class("footer-copy"), g.Text(fmt.Sprintf("© %d %s. All rights reserved.", time.Now().Year(), content.Company))),
	)
}
