package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const containerClass = "mx-auto w-full max-w-7xl px-4 sm:px-6 lg:px-8"

// Container constrains content to the page width.
func Container(class string, children ...g.Node) g.Node {
	return h.Div(h.Class(joinClass(containerClass, class)), g.Group(children))
}

// SectionProps configures Section.
type SectionProps struct {
	ID    string
	Class string
	Style string
	// Attrs are passed through to the <section> element.
	Attrs []g.Node
}

// Section wraps its children in a <section> containing a Container.
func Section(p SectionProps, children ...g.Node) g.Node {
	return h.Section(
		g.If(p.ID != "", h.ID(p.ID)),
		g.If(p.Class != "", h.Class(p.Class)),
		g.If(p.Style != "", h.Style(p.Style)),
		g.Group(p.Attrs),
		Container("", children...),
	)
}

func joinClass(base, extra string) string {
	extra = strings.TrimSpace(extra)
	if extra == "" {
		return base
	}
	return base + " " + extra
}
