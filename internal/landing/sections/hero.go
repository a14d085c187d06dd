// Package sections renders the content blocks of the landing page from the
// content catalog. Every function is a pure projection of the catalog.
package sections

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"dataskools.io/landing-web/internal/landing/content"
	"dataskools.io/landing-web/internal/landing/nav"
	"dataskools.io/landing-web/internal/landing/tokens"
	"dataskools.io/landing-web/internal/landing/ui"
)

// MarqueeKeyframes is the animation the marquee strip loops over.
const MarqueeKeyframes = "@keyframes marquee{from{transform:translateX(0)}to{transform:translateX(-50%)}}"

// Hero renders the above-the-fold block followed by the marquee strip.
func Hero(cat *content.Catalog) g.Node {
	t := tokens.Default
	hero := cat.Hero()
	return h.Div(
		h.Style(t.LightSurface()),
		h.Data("section", "hero"),
		ui.Section(ui.SectionProps{ID: "home", Class: "py-12 sm:py-16"},
			h.Div(
				h.Class("grid items-start gap-10 lg:grid-cols-2"),
				h.Div(
					h.P(h.Class(t.MonoLabel("uppercase text-xs opacity-70")), g.Text(hero.Eyebrow)),
					h.H1(h.Class("mt-4 text-[42px] leading-[1.05] tracking-[-0.02em] sm:text-6xl"), g.Text(hero.Headline)),
					h.Div(h.Class("mt-6 max-w-xl text-lg opacity-90"), g.Raw(hero.LedeHTML)),
					h.Div(
						h.Class("mt-8 flex flex-wrap items-center gap-3"),
						ui.Button(ui.ButtonProps{Variant: string(ui.VariantOutline)}, g.Text("Explore programmes")),
						ui.Button(ui.ButtonProps{Variant: string(ui.VariantSolid), Navigate: nav.RegisterPath}, g.Text("Jetzt bewerben")),
					),
				),
				h.Div(
					h.Class("rounded-lg bg-[#121212] p-2"),
					h.Div(
						h.Class("aspect-[16/10] w-full overflow-hidden rounded-md border border-[#232323] bg-[#0D0D0D]"),
						h.Img(h.Alt(hero.ImageAlt), h.Class("h-full w-full object-cover opacity-90"), h.Src(hero.Image)),
					),
				),
			),
		),
		Marquee(cat),
	)
}

// Marquee renders the scrolling message strip. The message appears Repeat
// times, each followed by an accent square.
func Marquee(cat *content.Catalog) g.Node {
	t := tokens.Default
	m := cat.Marquee()
	items := make([]g.Node, 0, m.Repeat)
	for i := 0; i < m.Repeat; i++ {
		items = append(items, h.Span(
			h.Class("mx-8 text-5xl font-medium tracking-tight md:text-6xl"),
			h.Data("marquee-item", strconv.Itoa(i)),
			g.Text(m.Message),
			h.Span(h.Class("mx-4 inline-block h-4 w-4 rounded-sm"), h.Style("background:"+t.Accent)),
		))
	}
	return h.Div(
		h.Class("overflow-hidden border-y border-black/10"),
		h.Style(t.LightSurface()),
		h.Data("marquee", ""),
		h.Div(
			h.Class("whitespace-nowrap py-6 animate-[marquee_45s_linear_infinite] will-change-transform"),
			g.Group(items),
		),
		h.StyleEl(g.Raw(MarqueeKeyframes)),
	)
}
