package sections

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"dataskools.io/landing-web/internal/landing/content"
	"dataskools.io/landing-web/internal/landing/ui"
	"dataskools.io/landing-web/internal/testutil"
)

func TestHeroRendersCopyAndMarquee(t *testing.T) {
	t.Parallel()

	cat := content.MustDefault()
	doc := testutil.RenderNode(t, Hero(cat))

	require.Equal(t, 1, doc.Find("section#home").Length())
	require.Equal(t, cat.Hero().Headline, strings.TrimSpace(doc.Find("h1").Text()))
	require.Contains(t, doc.Find("section#home p").First().Text(), cat.Hero().Eyebrow)
	require.Equal(t, cat.Hero().ImageAlt, doc.Find("img").AttrOr("alt", ""))
	require.Equal(t, 1, doc.Find("[data-marquee]").Length())
}

func TestMarqueeRepeatsMessageWithAccentSquares(t *testing.T) {
	t.Parallel()

	doc := testutil.RenderNode(t, Marquee(content.MustDefault()))

	items := doc.Find("[data-marquee-item]")
	require.Equal(t, 3, items.Length())
	items.Each(func(_ int, s *goquery.Selection) {
		require.Contains(t, s.Text(), "Get ready to learn")
		require.Contains(t, s.Find("span").AttrOr("style", ""), "#C9FE6E")
	})
	require.Contains(t, doc.Find("style").Text(), "@keyframes marquee")
}

func TestBenefitsProcessAndPricing(t *testing.T) {
	t.Parallel()

	cat := content.MustDefault()

	benefits := testutil.RenderNode(t, Benefits(cat))
	require.Equal(t, 3, benefits.Find("section#benefits h3").Length())
	require.Contains(t, benefits.Find("[data-section=benefits]").AttrOr("style", ""), "background:#121212")

	process := testutil.RenderNode(t, Process(cat))
	steps := process.Find("section#process ol > li")
	require.Equal(t, 3, steps.Length())
	require.Equal(t, "1", steps.First().AttrOr("data-step", ""))
	require.Contains(t, steps.Last().Text(), "Durchstarten")

	pricing := testutil.RenderNode(t, Pricing(cat))
	plans := pricing.Find("[data-plan]")
	require.Equal(t, 3, plans.Length())
	require.Equal(t, 1, pricing.Find("[data-plan-badge]").Length(), "only the Pro plan carries a badge")
	require.Equal(t, "Beliebt", strings.TrimSpace(pricing.Find(`[data-plan="Pro"] [data-plan-badge]`).Text()))
	require.Equal(t, 3, pricing.Find(`[data-plan="Flex"] li`).Length())
}

func TestProgramsUseIDsAsAnchors(t *testing.T) {
	t.Parallel()

	cat := content.MustDefault()
	doc := testutil.RenderNode(t, Programs(cat))

	var ids []string
	doc.Find("section#programs article").Each(func(_ int, s *goquery.Selection) {
		ids = append(ids, s.AttrOr("id", ""))
	})
	require.Equal(t, cat.ProgramIDs(), ids)

	for _, group := range cat.ProgramGroups() {
		for _, item := range group.Items {
			if item.Navigable() && item.Href != "#ai-science" {
				require.Equal(t, 1, doc.Find(item.Href).Length(), "%s must resolve to a program card", item.Href)
			}
		}
	}
}

func TestProgramImageFallsBackToPlaceholder(t *testing.T) {
	t.Parallel()

	require.Equal(t, PlaceholderImage, imageOrPlaceholder(""))
	require.Equal(t, "a.png", imageOrPlaceholder("a.png"))
}

func TestFAQRendersSanitisedAnswers(t *testing.T) {
	t.Parallel()

	doc := testutil.RenderNode(t, FAQ(content.MustDefault()))

	require.Equal(t, 3, doc.Find("section#faq dt").Length())
	require.Equal(t, "Python/SQL-Grundlagen", doc.Find("section#faq dd strong").First().Text())
}

func TestFooterNewsletterFormDoesNotSubmit(t *testing.T) {
	t.Parallel()

	doc := testutil.RenderNode(t, Footer(content.MustDefault()))

	form := doc.Find("form[data-newsletter-form]")
	require.Equal(t, 1, form.Length())
	_, hasAction := form.Attr("action")
	require.False(t, hasAction)
	_, hasMethod := form.Attr("method")
	require.False(t, hasMethod)
	require.Equal(t, "return false", form.AttrOr("onsubmit", ""))
	require.Equal(t, "Your email", form.Find("input").AttrOr("placeholder", ""))
	require.Equal(t, "button", form.Find("button").AttrOr("type", ""), "the submit control must not be a submit button")

	require.Equal(t, 3, doc.Find("[data-footer-column]").Length())
	require.Equal(t, 2, doc.Find("[data-footer-legal] a").Length())
	require.Contains(t, doc.Text(), "2025 © dataskools")
}

func TestPanelButtonsAndCounts(t *testing.T) {
	t.Parallel()

	cat := content.MustDefault()
	doc := testutil.RenderNode(t, TestPanel(cat))
	panel := doc.Find("section#tests")
	require.Equal(t, 1, panel.Length())

	variant := func(id string) string {
		return panel.Find(`[data-testid="` + id + `"]`).AttrOr("data-variant", "")
	}
	require.Equal(t, "outline", variant("btn-outline"))
	require.Equal(t, "solid", variant("btn-solid"))
	require.Equal(t, "ghost", variant("btn-ghost"))
	require.Equal(t, "outline", variant("btn-invalid"))
	require.Equal(t,
		panel.Find(`[data-testid="btn-outline"]`).AttrOr("class", ""),
		panel.Find(`[data-testid="btn-invalid"]`).AttrOr("class", ""),
		"an unknown variant renders exactly like outline")

	_, disabled := panel.Find(`[data-testid="btn-disabled"]`).Attr("disabled")
	require.True(t, disabled)
	require.Zero(t, panel.Find(`[data-testid="btn-no-arrow"] span`).Length())
	require.Contains(t, panel.Find(`[data-testid="btn-outline"]`).Text(), ui.ArrowGlyph)

	count := func(id string) string {
		return strings.TrimSpace(panel.Find(`[data-testid="` + id + `"]`).Text())
	}
	require.Equal(t, "4", count("mega-columns"))
	require.Equal(t, "12", count("coming-soon-count"))
	require.Equal(t, "3", count("active-count"))
	require.Equal(t, "3", count("programs-count"))

	var ids []string
	panel.Find(`[data-testid="program-ids"] li`).Each(func(_ int, s *goquery.Selection) {
		ids = append(ids, s.Text())
	})
	require.Equal(t, []string{"analytics", "science", "engineering"}, ids)
}
