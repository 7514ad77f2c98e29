package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/mchmarny/hrsite/pkg/site/content"
	"github.com/mchmarny/hrsite/pkg/site/forms"
)

// DemoForm renders the demo booking form with any submitted values and
// their validation errors.
func DemoForm(d forms.Demo, errs forms.Errors) g.Node {
	return Section(
		ID("demo"),
		Class("demo section"),
		Div(
			Class("container demo-inner"),
			Div(
				Class("section-head"),
				IconBadge("lucide--calendar", "accent"),
				H2(Class("section-title"), g.Text("Book a Demo")),
				P(Class("section-lead"), g.Text("A product specialist will walk you through the modules that fit your team.")),
			),
			Form(
				Method("post"),
				Action("/demo"),
				Class("form"),
				g.Attr("novalidate"),
				field("name", "Full name", "text", d.Name, errs),
				field("email", "Work email", "email", d.Email, errs),
				field("company", "Company", "text", d.Company, errs),
				Div(
					Class("form-field"),
					Label(g.Attr("for", "size"), g.Text("Company size")),
					Select(
						ID("size"),
						Name("size"),
						Option(Value(""), g.Text("Select one")),
						g.Group(g.Map(content.CompanySizes, func(size string) g.Node {
							return Option(Value(size), g.If(size == d.Size, Selected()), g.Text(size+" employees"))
						})),
					),
					fieldError("size", errs),
				),
				Div(
					Class("form-field"),
					Label(g.Attr("for", "message"), g.Text("Anything we should know?")),
					Textarea(ID("message"), Name("message"), Rows("4"), g.Text(d.Message)),
					fieldError("message", errs),
				),
				Button(Type("submit"), Class("btn btn-primary"), g.Text("Request demo")),
			),
		),
	)
}

func field(name, label, kind, value string, errs forms.Errors) g.Node {
	class := "form-field"
	if _, ok := errs[name]; ok {
		class = "form-field has-error"
	}
	return Div(
		Class(class),
		Label(g.Attr("for", name), g.Text(label)),
		Input(ID(name), Name(name), Type(kind), Value(value)),
		fieldError(name, errs),
	)
}

func fieldError(name string, errs forms.Errors) g.Node {
	msg, ok := errs[name]
	if !ok {
		return nil
	}
	return P(Class("form-error"), g.Attr("role", "alert"), g.Text(msg))
}
