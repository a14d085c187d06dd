// Package page composes the landing page from its sections and exposes it as a
// gomponents node, a full HTML document, and a templ component.
package page

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"dataskools.io/landing-web/internal/landing/content"
	"dataskools.io/landing-web/internal/landing/hoverintent"
	"dataskools.io/landing-web/internal/landing/nav"
	"dataskools.io/landing-web/internal/landing/sections"
	"dataskools.io/landing-web/internal/landing/seo"
	"dataskools.io/landing-web/internal/landing/tokens"
)

const (
	defaultLanguage    = "de"
	defaultTitle       = "dataskools – Data Careers"
	defaultDescription = "Praxisnahe Programme für Data Analytics, Data Science und Data Engineering."
	defaultAssetPrefix = "/static"
	tailwindCDN        = "https://cdn.tailwindcss.com"
)

// Block is one keyed part of the page body.
type Block struct {
	Key  string
	Node g.Node
}

// Page is a composed landing page. It is immutable once built.
type Page struct {
	catalog     *content.Catalog
	language    string
	title       string
	description string
	assetPrefix string
	baseURL     string
	closeDelay  time.Duration
	menuOpen    bool
	tailwind    bool
}

// Option customises a Page.
type Option func(*Page)

// WithLanguage sets the document language. Empty values are ignored.
func WithLanguage(lang string) Option {
	return func(p *Page) {
		if lang = strings.TrimSpace(lang); lang != "" {
			p.language = lang
		}
	}
}

// WithTitle overrides the document title.
func WithTitle(title string) Option {
	return func(p *Page) {
		if title = strings.TrimSpace(title); title != "" {
			p.title = title
		}
	}
}

// WithMenuCloseDelay sets the close delay advertised to the hover-intent script.
func WithMenuCloseDelay(d time.Duration) Option {
	return func(p *Page) {
		if d > 0 {
			p.closeDelay = d
		}
	}
}

// WithMenuOpen renders the mega menu in its open state.
func WithMenuOpen(open bool) Option {
	return func(p *Page) {
		p.menuOpen = open
	}
}

// WithAssetPrefix sets the URL prefix of the stylesheet and script.
func WithAssetPrefix(prefix string) Option {
	return func(p *Page) {
		p.assetPrefix = strings.TrimRight(prefix, "/")
	}
}

// WithBaseURL sets the public origin used for canonical and social metadata.
// Without it the document carries no absolute URLs.
func WithBaseURL(baseURL string) Option {
	return func(p *Page) {
		p.baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	}
}

// WithTailwindCDN toggles the Tailwind CDN script in the document head.
func WithTailwindCDN(enabled bool) Option {
	return func(p *Page) {
		p.tailwind = enabled
	}
}

// New composes a page over cat.
func New(cat *content.Catalog, opts ...Option) *Page {
	p := &Page{
		catalog:     cat,
		language:    defaultLanguage,
		title:       defaultTitle,
		description: defaultDescription,
		assetPrefix: defaultAssetPrefix,
		closeDelay:  hoverintent.DefaultCloseDelay,
		tailwind:    true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Sections returns the body blocks in their fixed display order.
func (p *Page) Sections() []Block {
	cat := p.catalog
	return []Block{
		{Key: "navbar", Node: nav.Navbar(nav.NavbarProps{Catalog: cat, Open: p.menuOpen, CloseDelay: p.closeDelay})},
		{Key: "hero", Node: sections.Hero(cat)},
		{Key: "benefits", Node: sections.Benefits(cat)},
		{Key: "programs", Node: sections.Programs(cat)},
		{Key: "process", Node: sections.Process(cat)},
		{Key: "pricing", Node: sections.Pricing(cat)},
		{Key: "faq", Node: sections.FAQ(cat)},
		{Key: "tests", Node: sections.TestPanel(cat)},
		{Key: "footer", Node: sections.Footer(cat)},
	}
}

// Body renders every block inside <main>.
func (p *Page) Body() g.Node {
	blocks := p.Sections()
	nodes := make([]g.Node, 0, len(blocks))
	for _, b := range blocks {
		nodes = append(nodes, b.Node)
	}
	return h.Main(
		h.Class("min-h-screen"),
		h.Style(tokens.Default.LightSurface()),
		g.Group(nodes),
	)
}

// Document wraps Body in a complete HTML5 document.
func (p *Page) Document() g.Node {
	return c.HTML5(c.HTML5Props{
		Title:       p.title,
		Description: p.description,
		Language:    p.language,
		Head: []g.Node{
			seo.Head(p.Meta()),
			h.StyleEl(g.Raw(tokens.Default.CSSVariables())),
			g.If(p.tailwind, h.Script(h.Src(tailwindCDN))),
			h.Link(h.Rel("stylesheet"), h.Href(p.assetPrefix+"/css/landing.css")),
			h.Script(h.Src(p.assetPrefix+"/js/landing.js"), h.Defer()),
		},
		Body: []g.Node{p.Body()},
	})
}

// Meta returns the search and social metadata of the document.
func (p *Page) Meta() seo.Meta {
	cat := p.catalog
	brand := cat.Brand()
	canonical := ""
	if p.baseURL != "" {
		canonical = p.baseURL + "/"
	}

	var sameAs []string
	for _, col := range cat.Footer().Columns {
		for _, l := range col.Links {
			if strings.HasPrefix(l.Href, "https://") {
				sameAs = append(sameAs, l.Href)
			}
		}
	}

	faq := cat.FAQ()
	qa := make([]seo.QA, 0, len(faq))
	for _, e := range faq {
		qa = append(qa, seo.QA{Question: e.Question, Answer: e.Answer})
	}

	jsonld := []map[string]any{
		seo.EducationalOrganization(brand.Name, canonical, "", sameAs),
	}
	for _, prog := range cat.Programs() {
		url := ""
		if canonical != "" {
			url = canonical + "#" + prog.ID
		}
		jsonld = append(jsonld, seo.Course(prog.Title, prog.Description, url, brand.Name))
	}
	jsonld = append(jsonld, seo.FAQPage(qa))

	meta := seo.Meta{
		Description: p.description,
		OG: seo.OpenGraph{
			Title:       p.title,
			Description: p.description,
			Type:        "website",
			Locale:      strings.ReplaceAll(p.language, "-", "_"),
		},
		Twitter: seo.Twitter{Card: "summary_large_image"},
		JSONLD:  jsonld,
	}
	if canonical != "" {
		image := seo.Absolute(p.baseURL, cat.Hero().Image)
		meta.Canonical = canonical
		meta.OG.URL = canonical
		meta.OG.Image = image
		meta.Twitter.Image = image
	}
	return meta
}

// Render writes the full document to w.
func (p *Page) Render(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.Document().Render(w)
}

// Component adapts the page to templ so it can be served with templ.Handler.
func (p *Page) Component() templ.Component {
	return templ.ComponentFunc(p.Render)
}
