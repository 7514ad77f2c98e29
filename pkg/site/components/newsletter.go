package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/mchmarny/hrsite/pkg/site/forms"
)

func NewsletterSignup(s forms.Signup, errs forms.Errors) g.Node {
	return Section(
		ID("newsletter"),
		Class("newsletter"),
		Div(
			Class("container newsletter-inner"),
			H2(Class("newsletter-title"), g.Text("HR notes, once a month")),
			P(Class("newsletter-text"), g.Text("Payroll rule changes and product updates. No spam.")),
			Form(
				Method("post"),
				Action("/newsletter"),
				Class("newsletter-form"),
				g.Attr("novalidate"),
				Input(Type("email"), Name("email"), Placeholder("you@company.com"), Value(s.Email), g.Attr("aria-label", "Email")),
				Button(Type("submit"), Class("btn btn-primary"), g.Text("Subscribe")),
				fieldError("email", errs),
			),
		),
	)
}
