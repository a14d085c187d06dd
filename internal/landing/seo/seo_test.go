package seo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"dataskools.io/landing-web/internal/testutil"
)

func TestAbsolute(t *testing.T) {
	t.Parallel()

	cases := []struct {
		base, path, want string
	}{
		{"https://dataskools.example", "/static/img/hero.png", "https://dataskools.example/static/img/hero.png"},
		{"https://dataskools.example/", "img.png", "https://dataskools.example/img.png"},
		{"https://dataskools.example", "https://cdn.example/x.png", "https://cdn.example/x.png"},
		{"https://dataskools.example", "#faq", "#faq"},
		{"", "/static/x.png", "/static/x.png"},
		{"https://dataskools.example", "", ""},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Absolute(tc.base, tc.path), "%s + %s", tc.base, tc.path)
	}
}

func TestHeadOmitsEmptyFields(t *testing.T) {
	t.Parallel()

	doc := testutil.RenderNode(t, Head(Meta{
		OG:      OpenGraph{Title: "dataskools", Type: "website"},
		Twitter: Twitter{Card: "summary"},
		JSONLD:  []map[string]any{nil, EducationalOrganization("dataskools", "", "", nil)},
	}))

	require.Zero(t, doc.Find(`link[rel="canonical"]`).Length())
	require.Equal(t, 2, doc.Find(`meta[property^="og:"]`).Length())
	require.Equal(t, "dataskools", doc.Find(`meta[property="og:title"]`).AttrOr("content", ""))
	require.Equal(t, 1, doc.Find(`meta[name="twitter:card"]`).Length())
	require.Zero(t, doc.Find(`meta[name="twitter:image"]`).Length())
	require.Equal(t, 1, doc.Find(`script[type="application/ld+json"]`).Length())
}

func TestHeadRendersCanonicalAndJSONLD(t *testing.T) {
	t.Parallel()

	doc := testutil.RenderNode(t, Head(Meta{
		Canonical: "https://dataskools.example/",
		JSONLD: []map[string]any{
			FAQPage([]QA{{Question: "Wie lange?", Answer: "12 <Wochen>"}}),
		},
	}))

	require.Equal(t, "https://dataskools.example/", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc.Find("script").Text()), &payload))
	require.Equal(t, "FAQPage", payload["@type"])
	questions := payload["mainEntity"].([]any)
	require.Len(t, questions, 1)
	answer := questions[0].(map[string]any)["acceptedAnswer"].(map[string]any)
	require.Equal(t, "12 <Wochen>", answer["text"])
}

func TestJSONEscapesMarkup(t *testing.T) {
	t.Parallel()

	out := JSON(map[string]string{"text": "</script><script>"})
	require.NotContains(t, out, "</script>")
	require.Contains(t, out, `\u003c/script\u003e`)
	require.Empty(t, JSON(func() {}))
}

func TestFAQPageEmpty(t *testing.T) {
	t.Parallel()

	require.Nil(t, FAQPage(nil))
}

func TestCourse(t *testing.T) {
	t.Parallel()

	c := Course("Data Analytics", "SQL und BI", "", "dataskools")
	require.Equal(t, "Course", c["@type"])
	require.NotContains(t, c, "url")
	require.Equal(t, "dataskools", c["provider"].(map[string]any)["name"])
}
