package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/mchmarny/hrsite/pkg/site/content"
)

// PromoModal renders the promotional popup. Dismissing it returns to ret.
func PromoModal(ret string) g.Node {
	return Div(
		ID("promo"),
		Class("modal"),
		g.Attr("role", "dialog"),
		g.Attr("aria-modal", "true"),
		g.Attr("aria-labelledby", "promo-title"),
		Div(
			Class("modal-panel"),
			postForm("/promo/dismiss",
				hidden("return", ret),
				Button(Type("submit"), Class("modal-close"), g.Attr("aria-label", "Close"), Icon("lucide--x", "")),
			),
			IconBadge("lucide--gift", "secondary"),
			H2(ID("promo-title"), Class("modal-title"), g.Text(content.Promo.Title)),
			P(Class("modal-text"), g.Text(content.Promo.Body)),
			postForm("/promo/dismiss",
				hidden("return", "/#demo"),
				Button(Type("submit"), Class("btn btn-primary"), g.Text(content.Promo.CTA)),
			),
		),
	)
}
