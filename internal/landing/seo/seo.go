// Package seo builds the search and social metadata of the landing page.
package seo

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	Locale      string
}

type Twitter struct {
	Card  string
	Image string
}

// Meta is the per-document metadata rendered into <head>.
type Meta struct {
	Description string
	Canonical   string
	OG          OpenGraph
	Twitter     Twitter
	// JSONLD holds schema.org payloads, each rendered in its own script tag.
	JSONLD []map[string]any
}

// Absolute resolves path against baseURL. Fragments and absolute URLs are
// returned as-is; an empty baseURL leaves path untouched.
func Absolute(baseURL, path string) string {
	switch {
	case path == "", baseURL == "":
		return path
	case strings.Contains(path, "://"), strings.HasPrefix(path, "#"):
		return path
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// Head renders meta, link and JSON-LD nodes. Empty fields produce no tag.
func Head(m Meta) g.Node {
	var nodes []g.Node
	if m.Canonical != "" {
		nodes = append(nodes, h.Link(h.Rel("canonical"), h.Href(m.Canonical)))
	}
	for _, p := range []struct{ key, value string }{
		{"og:type", m.OG.Type},
		{"og:title", m.OG.Title},
		{"og:description", m.OG.Description},
		{"og:url", m.OG.URL},
		{"og:image", m.OG.Image},
		{"og:locale", m.OG.Locale},
	} {
		if p.value != "" {
			nodes = append(nodes, h.Meta(g.Attr("property", p.key), h.Content(p.value)))
		}
	}
	for _, n := range []struct{ key, value string }{
		{"twitter:card", m.Twitter.Card},
		{"twitter:image", m.Twitter.Image},
	} {
		if n.value != "" {
			nodes = append(nodes, h.Meta(h.Name(n.key), h.Content(n.value)))
		}
	}
	for _, payload := range m.JSONLD {
		if payload == nil {
			continue
		}
		if js := JSON(payload); js != "" {
			nodes = append(nodes, h.Script(h.Type("application/ld+json"), g.Raw(js)))
		}
	}
	return g.Group(nodes)
}
