package nav

import (
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"dataskools.io/landing-web/internal/landing/content"
	"dataskools.io/landing-web/internal/landing/hoverintent"
	"dataskools.io/landing-web/internal/landing/tokens"
	"dataskools.io/landing-web/internal/landing/ui"
)

// External routes the call-to-action buttons navigate to.
const (
	SignInPath   = "/auth/login"
	RegisterPath = "/auth/register"
)

// TriggerLabel is the text of the mega-menu trigger.
const TriggerLabel = "Programme"

// NavbarProps configures Navbar.
type NavbarProps struct {
	Catalog *content.Catalog
	// Open renders the mega menu in its visible state.
	Open bool
	// CloseDelay is handed to the browser hover-intent script.
	CloseDelay time.Duration
}

// Navbar renders the sticky header with brand, links, menu trigger, CTAs and
// the mega menu.
func Navbar(p NavbarProps) g.Node {
	t := tokens.Default
	brand := p.Catalog.Brand()
	closeDelay := p.CloseDelay
	if closeDelay <= 0 {
		closeDelay = hoverintent.DefaultCloseDelay
	}

	return h.Header(
		h.Class("sticky top-0 z-40 border-b border-black/10 bg-[var(--bg)]/80 backdrop-blur"),
		h.Style("--bg:"+t.Bg),
		h.Data("navbar", ""),
		h.Data("section", "navbar"),
		h.Data("hover-open-delay", strconv.FormatInt(hoverintent.OpenDelay.Milliseconds(), 10)),
		h.Data("hover-close-delay", strconv.FormatInt(closeDelay.Milliseconds(), 10)),
		ui.Container("relative flex h-16 items-center justify-between",
			h.Data("hover-zone", ""),
			h.A(
				h.Href(brand.HomeHref),
				h.Class("flex items-center gap-3"),
				h.Aria("label", brand.Name+" home"),
				h.Div(
					h.Class("grid h-9 w-9 place-items-center rounded-xl"),
					h.Style("background:"+t.Text+";color:"+t.Bg+";font-weight:700"),
					g.Text(brand.Mark),
				),
				h.Span(h.Class("text-base font-semibold"), h.Style("color:"+t.Text), g.Text(brand.Name)),
			),
			h.Nav(
				h.Class("hidden items-center gap-6 text-sm md:flex"),
				h.Style("color:"+t.Text),
				h.Button(
					h.Type("button"),
					h.Class("relative"),
					h.Data("menu-trigger", ""),
					h.Aria("haspopup", "menu"),
					h.Aria("expanded", boolAttr(p.Open)),
					h.Aria("controls", "mega-menu"),
					g.Text(TriggerLabel),
				),
				g.Map(p.Catalog.NavLinks(), func(l content.Link) g.Node {
					return h.A(h.Href(l.Href), h.Class("hover:underline"), g.Text(l.Label))
				}),
			),
			h.Div(
				h.Class("hidden items-center gap-3 md:flex"),
				ui.Button(ui.ButtonProps{Variant: string(ui.VariantGhost), Navigate: SignInPath, TestID: "nav-sign-in"}, g.Text("Sign in")),
				ui.Button(ui.ButtonProps{Variant: string(ui.VariantSolid), Navigate: RegisterPath, TestID: "nav-register"}, g.Text("Jetzt bewerben")),
			),
			MegaMenu(p.Catalog.ProgramGroups(), p.Open),
		),
	)
}
