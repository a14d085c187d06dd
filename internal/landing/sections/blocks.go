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

const (
	darkCardClass  = "rounded-xl border border-[#232323] bg-[#0D0D0D] p-6"
	lightCardClass = "rounded-xl border border-black/10 bg-white p-6"
	headingClass   = "mt-2 text-3xl font-semibold tracking-tight"
)

// heading renders the eyebrow label and title shared by most sections.
func heading(eyebrow, title string, dark bool) g.Node {
	label := "uppercase text-xs text-[#121212]/70"
	if dark {
		label = "uppercase text-xs opacity-70"
	}
	return h.Div(
		h.P(h.Class(tokens.Default.MonoLabel(label)), g.Text(eyebrow)),
		h.H2(h.Class(headingClass), g.Text(title)),
	)
}

func sectionKey(key string) []g.Node {
	return []g.Node{h.Data("section", key)}
}

// Benefits renders the three benefit cards on the dark surface.
func Benefits(cat *content.Catalog) g.Node {
	return h.Div(
		h.Style(tokens.Default.DarkSurface()),
		h.Data("section", "benefits"),
		ui.Section(ui.SectionProps{ID: "benefits", Class: "py-14"},
			h.Div(
				h.Class("grid gap-6 md:grid-cols-3"),
				g.Map(cat.Benefits(), func(b content.Benefit) g.Node {
					return h.Div(
						h.Class(darkCardClass),
						h.Div(h.Class("text-4xl"), h.Aria("hidden", "true"), g.Text(b.Icon)),
						h.H3(h.Class("mt-6 text-[28px] leading-9 tracking-tight"), g.Text(b.Title)),
						h.P(h.Class("mt-3 text-sm opacity-90"), g.Text(b.Text)),
					)
				}),
			),
		),
	)
}

// Programs renders one card per program. Card ids are the program ids so the
// active mega-menu items can link to them.
func Programs(cat *content.Catalog) g.Node {
	t := tokens.Default
	return ui.Section(ui.SectionProps{ID: "programs", Class: "py-16", Attrs: sectionKey("programs")},
		h.Div(
			h.Class("mb-8 flex items-end justify-between"),
			heading("Programme", "Wähle deinen Track", false),
			h.Div(
				h.Class("hidden gap-3 sm:flex"),
				ui.Button(ui.ButtonProps{Variant: string(ui.VariantOutline)}, g.Text("Curriculum anfordern")),
				ui.Button(ui.ButtonProps{Variant: string(ui.VariantSolid), Navigate: nav.RegisterPath}, g.Text("Jetzt bewerben")),
			),
		),
		h.Div(
			h.Class("grid gap-6 md:grid-cols-3"),
			g.Map(cat.Programs(), func(p content.Program) g.Node {
				return h.Article(
					h.ID(p.ID),
					h.Class("group overflow-hidden rounded-xl border border-black/10 bg-white"),
					h.Data("program", p.ID),
					h.Div(
						h.Class("aspect-[16/10] w-full overflow-hidden"),
						h.Img(
							h.Src(imageOrPlaceholder(p.Image)),
							h.Alt(""),
							h.Class("h-full w-full object-cover transition-transform duration-500 group-hover:scale-[1.03]"),
						),
					),
					h.Div(
						h.Class("p-5"),
						h.Div(h.Class(t.MonoLabel("text-[11px] uppercase opacity-60")), g.Text(p.Badge)),
						h.H3(h.Class("mt-2 text-xl font-semibold tracking-tight"), g.Text(p.Title)),
						h.P(h.Class("mt-2 text-sm opacity-90"), g.Text(p.Description)),
						h.Div(
							h.Class("mt-4 flex gap-3"),
							ui.Button(ui.ButtonProps{Variant: string(ui.VariantOutline)}, g.Text("Mehr erfahren")),
							ui.Button(ui.ButtonProps{Variant: string(ui.VariantSolid), Navigate: nav.RegisterPath}, g.Text("Jetzt bewerben")),
						),
					),
				)
			}),
		),
	)
}

// PlaceholderImage is used for programs without an image.
const PlaceholderImage = "/static/img/placeholder.svg"

func imageOrPlaceholder(src string) string {
	if src == "" {
		return PlaceholderImage
	}
	return src
}

// Process renders the numbered application steps.
func Process(cat *content.Catalog) g.Node {
	return ui.Section(ui.SectionProps{ID: "process", Class: "py-16", Attrs: sectionKey("process")},
		h.Div(h.Class("mb-8"), heading("Ablauf", "So läuft's ab", false)),
		h.Ol(
			h.Class("grid gap-6 md:grid-cols-3"),
			g.Map(cat.Steps(), func(s content.Step) g.Node {
				return h.Li(
					h.Class(lightCardClass),
					h.Data("step", strconv.Itoa(s.Number)),
					h.Div(
						h.Class("mb-3 inline-grid h-9 w-9 place-items-center rounded-full border"),
						h.Span(g.Text(strconv.Itoa(s.Number))),
					),
					h.H3(h.Class("text-lg font-semibold tracking-tight"), g.Text(s.Title)),
					h.P(h.Class("mt-2 text-sm opacity-90"), g.Text(s.Text)),
				)
			}),
		),
	)
}

// Pricing renders the plan cards on the dark surface. The badge is shown only
// when a plan carries one.
func Pricing(cat *content.Catalog) g.Node {
	t := tokens.Default
	return h.Div(
		h.Style(t.DarkSurface()),
		h.Data("section", "pricing"),
		ui.Section(ui.SectionProps{ID: "pricing", Class: "py-16"},
			h.Div(h.Class("mb-8"), heading("Preise", "Transparent & fair", true)),
			h.Div(
				h.Class("grid gap-6 md:grid-cols-3"),
				g.Map(cat.PricingPlans(), func(p content.PricingPlan) g.Node {
					return h.Div(
						h.Class(darkCardClass),
						h.Data("plan", p.Name),
						h.Div(
							h.Class("flex items-center justify-between"),
							h.H3(h.Class("text-xl font-semibold tracking-tight"), g.Text(p.Name)),
							g.If(p.Badge != "",
								h.Span(
									h.Class("rounded-sm px-2 py-1 text-xs"),
									h.Style("background:"+t.Accent+";color:"+t.Text),
									h.Data("plan-badge", ""),
									g.Text(p.Badge),
								),
							),
						),
						h.Div(h.Class("mt-3 text-2xl"), g.Text(p.Price)),
						h.Ul(
							h.Class("mt-4 space-y-2 text-sm opacity-90"),
							g.Map(p.Features, func(f string) g.Node {
								return h.Li(g.Text("• " + f))
							}),
						),
						h.Div(
							h.Class("mt-6 flex gap-3"),
							ui.Button(ui.ButtonProps{Variant: string(ui.VariantSolid), Navigate: nav.RegisterPath}, g.Text("Jetzt starten")),
							ui.Button(ui.ButtonProps{Variant: string(ui.VariantOutline)}, g.Text("Details")),
						),
					)
				}),
			),
		),
	)
}

// FAQ renders questions and their pre-sanitised answers.
func FAQ(cat *content.Catalog) g.Node {
	return ui.Section(ui.SectionProps{ID: "faq", Class: "py-16", Attrs: sectionKey("faq")},
		h.Div(h.Class("mb-8"), heading("FAQ", "Häufige Fragen", false)),
		h.Dl(
			h.Class("space-y-4"),
			g.Map(cat.FAQ(), func(f content.FAQEntry) g.Node {
				return h.Div(
					h.Class(lightCardClass),
					h.Dt(h.Class("text-lg font-semibold tracking-tight"), g.Text(f.Question)),
					// AnswerHTML went through bluemonday when the catalog was loaded.
					h.Dd(h.Class("mt-2 text-sm opacity-90"), g.Raw(f.AnswerHTML)),
				)
			}),
		),
	)
}
