package nav

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"dataskools.io/landing-web/internal/landing/content"
	"dataskools.io/landing-web/internal/landing/tokens"
	"dataskools.io/landing-web/internal/landing/ui"
)

// ComingSoonLabel marks menu items that are not offered yet.
const ComingSoonLabel = "Coming soon"

const (
	megaMenuBaseClass = "absolute left-0 right-0 top-full border-b border-black/10 shadow-sm transition-opacity"
	megaMenuOpenClass = "pointer-events-auto opacity-100"
	megaMenuShutClass = "pointer-events-none opacity-0"
)

// MegaMenu projects the program groups into columns. It is always rendered;
// when closed it is hidden from pointer input and assistive technology.
func MegaMenu(groups []content.ProgramGroup, open bool) g.Node {
	state, visibility := "closed", megaMenuShutClass
	if open {
		state, visibility = "open", megaMenuOpenClass
	}
	t := tokens.Default
	return h.Div(
		h.ID("mega-menu"),
		h.Role("menu"),
		h.Aria("hidden", boolAttr(!open)),
		h.Data("menu-state", state),
		h.Class(megaMenuBaseClass+" "+visibility),
		h.Style(t.LightSurface()),
		ui.Container("",
			h.Div(
				h.Class("grid grid-cols-1 gap-10 py-8 md:grid-cols-4"),
				g.Map(groups, megaMenuColumn),
			),
		),
	)
}

func megaMenuColumn(group content.ProgramGroup) g.Node {
	t := tokens.Default
	return h.Div(
		h.Class("min-w-0"),
		h.Data("menu-column", group.Name),
		h.Div(h.Class(t.MonoLabel("text-xs uppercase opacity-70")), g.Text(group.Name)),
		h.Ul(
			h.Class("mt-3 space-y-3"),
			g.Map(group.Items, megaMenuItem),
		),
	)
}

func megaMenuItem(item content.MenuItem) g.Node {
	t := tokens.Default
	if item.Navigable() {
		return h.Li(
			h.Data("menu-item", "active"),
			h.A(
				h.Href(item.Href),
				h.Class("block"),
				h.Div(h.Class("font-medium hover:underline"), g.Text(item.Label)),
			),
		)
	}
	return h.Li(
		h.Data("menu-item", "coming-soon"),
		h.Div(
			h.Class("block select-none opacity-60"),
			h.Div(h.Class("font-medium"), g.Text(item.Label)),
			h.Div(h.Class(t.MonoLabel("text-[11px] uppercase")), g.Text(ComingSoonLabel)),
		),
	)
}

func boolAttr(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
