package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/mchmarny/hrsite/pkg/site/content"
)

func Logo() g.Node {
	return Span(
		Class("logo"),
		Span(Class("logo-mark"), g.Text("P")),
		Span(Class("logo-text"), g.Text(content.Company)),
	)
}

// iconName turns "lucide--users size-4" into the iconify name "lucide:users".
func iconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

func sizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

func Icon(iconClass, ariaLabel string) g.Node {
	if iconClass == "" {
		return nil
	}
	classes := "iconify icon"
	if extra := sizeClasses(iconClass); extra != "" {
		classes = fmt.Sprintf("iconify icon %s", extra)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", iconName(iconClass)),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", iconName(iconClass)),
		g.Attr("aria-hidden", "true"),
	)
}

func IconBadge(icon, color string) g.Node {
	return Span(
		Class(fmt.Sprintf("icon-badge icon-badge-%s", color)),
		Span(Class("iconify"), g.Attr("data-icon", iconName(icon))),
	)
}

// hidden renders a hidden form field.
func hidden(name, value string) g.Node {
	return Input(Type("hidden"), Name(name), Value(value))
}

// postForm renders a POST form around children.
func postForm(action string, children ...g.Node) g.Node {
	return Form(Method("post"), Action(action), g.Group(children))
}
