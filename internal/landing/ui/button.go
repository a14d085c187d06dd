package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Variant selects the visual treatment of a Button.
type Variant string

const (
	VariantOutline Variant = "outline"
	VariantSolid   Variant = "solid"
	VariantGhost   Variant = "ghost"
)

// ArrowGlyph is appended to buttons unless ButtonProps.HideArrow is set.
const ArrowGlyph = "↗"

const baseButtonClass = "inline-flex items-center justify-center " +
	"h-[41px] px-4 rounded-[2px] " +
	"font-mono uppercase text-[13px] " +
	"transition-transform hover:-translate-y-[1px] " +
	"focus-visible:outline focus-visible:outline-2 focus-visible:outline-offset-2 focus-visible:outline-[#121212] " +
	"disabled:opacity-50 disabled:cursor-not-allowed"

var variantClasses = map[Variant]string{
	VariantOutline: "border border-[#121212] text-[#121212] bg-transparent hover:bg-[#121212] hover:text-white",
	VariantSolid:   "bg-[#C9FE6E] text-[#121212] hover:brightness-95",
	VariantGhost:   "text-[#121212] hover:underline",
}

// Variants lists the known variants in display order.
func Variants() []Variant {
	return []Variant{VariantOutline, VariantSolid, VariantGhost}
}

// ParseVariant maps arbitrary input onto a known variant. Matching is exact;
// anything else resolves to VariantOutline.
func ParseVariant(raw string) Variant {
	v := Variant(raw)
	if _, ok := variantClasses[v]; ok {
		return v
	}
	return VariantOutline
}

// Valid reports whether v is one of the known variants.
func (v Variant) Valid() bool {
	_, ok := variantClasses[v]
	return ok
}

// ButtonClass returns the full class list for the resolved variant.
func ButtonClass(variant string, extra string) string {
	resolved := ParseVariant(variant)
	classes := baseButtonClass + " " + variantClasses[resolved]
	if extra = strings.TrimSpace(extra); extra != "" {
		classes += " " + extra
	}
	return classes
}

// ButtonProps configures Button. The zero value renders an outline button with an arrow.
type ButtonProps struct {
	// Variant is validated with ParseVariant, so any string is accepted.
	Variant   string
	Class     string
	HideArrow bool
	Disabled  bool
	TestID    string
	// Navigate is emitted as data-navigate and followed client-side.
	Navigate string
	// Attrs are passed through to the <button> element unchanged.
	Attrs []g.Node
}

// Button renders a single <button> control.
func Button(p ButtonProps, children ...g.Node) g.Node {
	resolved := ParseVariant(p.Variant)
	return h.Button(
		h.Type("button"),
		h.Class(ButtonClass(p.Variant, p.Class)),
		h.Data("variant", string(resolved)),
		g.If(p.Disabled, h.Disabled()),
		g.If(p.TestID != "", h.Data("testid", p.TestID)),
		g.If(p.Navigate != "", h.Data("navigate", p.Navigate)),
		g.Group(p.Attrs),
		g.Group(children),
		g.If(!p.HideArrow, h.Span(h.Class("ml-2 leading-none"), g.Text(ArrowGlyph))),
	)
}
