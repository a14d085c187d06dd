package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dataskools.io/landing-web/internal/landing/content"
	"dataskools.io/landing-web/internal/landing/nav"
	"dataskools.io/landing-web/internal/landing/ui"
)

// View renders the header, the menu when open, and a status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	parts := []string{m.renderHeader()}
	if m.open {
		parts = append(parts, m.renderMenu())
	}
	parts = append(parts, m.renderStatus())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader() string {
	brand := m.catalog.Brand()
	links := make([]string, 0, len(m.catalog.NavLinks())+1)
	trigger := nav.TriggerLabel + " ▾"
	if m.open {
		trigger = nav.TriggerLabel + " ▴"
	}
	links = append(links, triggerStyle.Render(trigger))
	for _, l := range m.catalog.NavLinks() {
		links = append(links, linkStyle.Render(l.Label))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center,
		markStyle.Render(brand.Mark),
		" ",
		brandStyle.Render(brand.Name),
		"   ",
		strings.Join(links, "  "),
		"   ",
		ghostStyle.Render("Sign in "+ui.ArrowGlyph),
		" ",
		solidStyle.Render("Jetzt bewerben "+ui.ArrowGlyph),
	)
	return headerStyle.Width(m.width).Render(row)
}

func (m Model) renderMenu() string {
	groups := m.catalog.ProgramGroups()
	columns := make([]string, 0, len(groups))
	for _, g := range groups {
		columns = append(columns, columnStyle.Render(renderColumn(g)))
	}
	return menuStyle.Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
}

func renderColumn(g content.ProgramGroup) string {
	lines := []string{groupStyle.Render(strings.ToUpper(g.Name)), ""}
	for _, item := range g.Items {
		if item.Navigable() {
			lines = append(lines, activeStyle.Render(item.Label))
			continue
		}
		lines = append(lines,
			comingStyle.Render(item.Label),
			comingStyle.Render("  "+strings.ToUpper(nav.ComingSoonLabel)),
		)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatus() string {
	state := "closed"
	if m.open {
		state = "open"
	}
	return statusBarStyle.Render("menu " + state + " · hover the header · tab focus · esc blur · q quit")
}
