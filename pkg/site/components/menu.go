package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/mchmarny/hrsite/pkg/menu"
)

// Chrome is the per-request state the shared navigation renders from.
// The controllers are read only here; mutations happen in the action handlers.
type Chrome struct {
	// Path is the current page, used as the return target of menu actions.
	Path string

	Desktop     *menu.Controller
	Sidebar     *menu.Controller
	CountryTop  *menu.Controller
	CountryMain *menu.Controller

	// Country is the display name of the selected country.
	Country string

	// ShowPromo renders the promo modal.
	ShowPromo bool
}

// AnyNavbarOpen reports whether a navbar dropdown is drawn expanded, in
// which case the page renders a dismiss layer.
func (c Chrome) AnyNavbarOpen() bool {
	for _, ctrl := range []*menu.Controller{c.Desktop, c.CountryTop, c.CountryMain} {
		if ctrl != nil && ctrl.AnyExpanded() {
			return true
		}
	}
	return false
}

func toggleAction(name string) string   { return fmt.Sprintf("/menu/%s/toggle", name) }
func navigateAction(name string) string { return fmt.Sprintf("/menu/%s/navigate", name) }

// menuNodes renders one sibling group. Branches render as toggle buttons
// with their children nested when expanded; leaves render as navigate buttons.
func menuNodes(ctrl *menu.Controller, ret string, parent menu.Key, nodes []menu.Node) g.Node {
	items := make([]g.Node, 0, len(nodes))
	for i := range nodes {
		items = append(items, menuNode(ctrl, ret, parent.Child(nodes[i].ID), &nodes[i]))
	}
	return Ul(
		Class(fmt.Sprintf("menu-list menu-depth-%d", len(parent))),
		g.Attr("role", "menu"),
		g.Group(items),
	)
}

func menuNode(ctrl *menu.Controller, ret string, k menu.Key, n *menu.Node) g.Node {
	if n.IsLeaf() {
		return Li(
			Class("menu-item menu-leaf"),
			g.Attr("role", "none"),
			postForm(navigateAction(ctrl.Name()),
				hidden("path", n.Path),
				hidden("return", ret),
				Button(
					Type("submit"),
					Class("menu-button"),
					g.Attr("role", "menuitem"),
					Icon(n.Icon, ""),
					Span(Class("menu-label"), g.Text(n.Label)),
					g.If(n.Description != "", Span(Class("menu-description"), g.Text(n.Description))),
				),
			),
		)
	}

	expanded := ctrl.Expanded(k)
	var children g.Node
	if expanded {
		children = menuNodes(ctrl, ret, k, n.Children)
	}
	return Li(
		Class("menu-item menu-branch"),
		g.Attr("role", "none"),
		g.Attr("data-key", k.String()),
		g.If(expanded, g.Attr("data-expanded", "true")),
		postForm(toggleAction(ctrl.Name()),
			hidden("key", k.String()),
			hidden("return", ret),
			Button(
				Type("submit"),
				Class("menu-button menu-toggle"),
				g.Attr("role", "menuitem"),
				g.Attr("aria-haspopup", "true"),
				g.Attr("aria-expanded", fmt.Sprintf("%t", expanded)),
				Icon(n.Icon, ""),
				Span(Class("menu-label"), g.Text(n.Label)),
				Span(Class("menu-caret"), Icon("lucide--chevron-down", "")),
			),
		),
		children,
	)
}
