package sections

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"dataskools.io/landing-web/internal/landing/content"
	"dataskools.io/landing-web/internal/landing/tokens"
	"dataskools.io/landing-web/internal/landing/ui"
)

// Footer renders the newsletter block, link columns and legal row.
//
// The newsletter form has no action and no method. Submission is cancelled
// inline and again by the page script, and no route accepts the address.
func Footer(cat *content.Catalog) g.Node {
	t := tokens.Default
	f := cat.Footer()
	return h.Footer(
		h.Style(t.DarkSurface()),
		h.Data("section", "footer"),
		ui.Section(ui.SectionProps{Class: "py-14"},
			h.Div(
				h.Class("grid gap-10 md:grid-cols-2"),
				h.Div(
					h.H3(h.Class("text-[32px] leading-[1.1] tracking-tight"), g.Text(f.Headline)),
					h.Form(
						h.Class("mt-6 flex max-w-md gap-2"),
						h.Data("newsletter-form", ""),
						g.Attr("onsubmit", "return false"),
						h.Input(
							h.Type("email"),
							h.Name("email"),
							h.Class("h-[41px] w-full rounded-[2px] border border-[#2a2a2a] bg-transparent px-3 placeholder:text-[#F1F1F1]/50"),
							h.Placeholder(f.EmailPlaceholder),
							h.AutoComplete("email"),
						),
						ui.Button(ui.ButtonProps{
							Variant: string(ui.VariantOutline),
							TestID:  "newsletter-submit",
							Attrs:   []g.Node{h.Data("newsletter-submit", "")},
						}, g.Text(f.SubmitLabel)),
					),
					h.P(h.Class("mt-3 max-w-lg text-xs opacity-60"), g.Text(f.Disclaimer)),
				),
				h.Div(
					h.Class("grid grid-cols-2 gap-8 sm:grid-cols-3"),
					g.Map(f.Columns, func(col content.LinkColumn) g.Node {
						return h.Div(
							h.Data("footer-column", col.Title),
							h.Div(h.Class(t.MonoLabel("text-xs uppercase opacity-60")), g.Text(col.Title)),
							h.Ul(
								h.Class("mt-2 space-y-2 text-sm"),
								g.Map(col.Links, func(l content.Link) g.Node {
									return h.Li(h.A(h.Href(l.Href), g.Text(l.Label)))
								}),
							),
						)
					}),
				),
			),
			h.Div(
				h.Class("mt-10 flex flex-wrap items-center justify-between gap-4 border-white/10 pt-6 text-xs opacity-70"),
				h.Style("border-top:1px solid rgba(255,255,255,0.1)"),
				h.Div(g.Text(f.Copyright)),
				h.Div(
					h.Class("flex gap-4"),
					h.Data("footer-legal", ""),
					g.Map(f.Legal, func(l content.Link) g.Node {
						return h.A(h.Href(l.Href), g.Text(l.Label))
					}),
				),
			),
		),
	)
}
