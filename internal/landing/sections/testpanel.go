package sections

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"dataskools.io/landing-web/internal/landing/content"
	"dataskools.io/landing-web/internal/landing/tokens"
	"dataskools.io/landing-web/internal/landing/ui"
)

// InvalidVariant is deliberately unknown so the panel shows the outline fallback.
const InvalidVariant = "primary"

type panelButton struct {
	testID    string
	variant   string
	label     string
	disabled  bool
	hideArrow bool
}

var panelButtons = []panelButton{
	{testID: "btn-outline", variant: string(ui.VariantOutline), label: "Outline"},
	{testID: "btn-solid", variant: string(ui.VariantSolid), label: "Solid"},
	{testID: "btn-ghost", variant: string(ui.VariantGhost), label: "Ghost"},
	{testID: "btn-invalid", variant: InvalidVariant, label: "Invalid variant → fallback"},
	{testID: "btn-disabled", variant: string(ui.VariantSolid), label: "Disabled", disabled: true},
	{testID: "btn-no-arrow", variant: string(ui.VariantOutline), label: "No Arrow", hideArrow: true},
}

// TestPanel renders the self-check block: every button variant plus counts
// derived from the catalog at render time.
func TestPanel(cat *content.Catalog) g.Node {
	buttons := make([]g.Node, 0, len(panelButtons))
	for _, b := range panelButtons {
		buttons = append(buttons, ui.Button(ui.ButtonProps{
			Variant:   b.variant,
			TestID:    b.testID,
			Disabled:  b.disabled,
			HideArrow: b.hideArrow,
		}, g.Text(b.label)))
	}

	return ui.Section(ui.SectionProps{ID: "tests", Class: "py-8", Attrs: sectionKey("tests")},
		h.Div(h.Class(tokens.Default.MonoLabel("uppercase text-xs text-[#121212]/70")), g.Text("Tests")),
		h.Div(h.Class("mt-3 grid gap-3 sm:grid-cols-2 lg:grid-cols-6"), g.Group(buttons)),
		h.Div(
			h.Class("mt-4 grid gap-1 text-xs opacity-70"),
			counter("Megamenu columns", "mega-columns", cat.GroupCount()),
			counter("Coming soon items", "coming-soon-count", cat.ComingSoonItemCount()),
			counter("Active items", "active-count", cat.ActiveItemCount()),
			counter("Programs count", "programs-count", cat.ProgramCount()),
			h.Div(
				h.Class("hidden"),
				h.Aria("hidden", "true"),
				h.Ul(
					h.Data("testid", "program-ids"),
					g.Map(cat.ProgramIDs(), func(id string) g.Node { return h.Li(g.Text(id)) }),
				),
			),
		),
	)
}

func counter(label, testID string, n int) g.Node {
	return h.Div(
		g.Text(label+": "),
		h.Span(h.Data("testid", testID), g.Text(strconv.Itoa(n))),
	)
}
