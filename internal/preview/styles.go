package preview

import (
	"github.com/charmbracelet/lipgloss"

	"dataskools.io/landing-web/internal/landing/tokens"
)

var (
	bgColor     = lipgloss.Color(tokens.Default.Bg)
	textColor   = lipgloss.Color(tokens.Default.Text)
	accentColor = lipgloss.Color(tokens.Default.Accent)
	mutedColor  = lipgloss.Color("#8A8A8A")

	headerStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(bgColor).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(mutedColor)
	markStyle      = lipgloss.NewStyle().Foreground(bgColor).Background(textColor).Bold(true).Padding(0, 1)
	brandStyle     = lipgloss.NewStyle().Bold(true)
	linkStyle      = lipgloss.NewStyle().Foreground(textColor)
	triggerStyle   = lipgloss.NewStyle().Foreground(textColor).Underline(true)
	ghostStyle     = lipgloss.NewStyle().Foreground(textColor)
	solidStyle     = lipgloss.NewStyle().Foreground(textColor).Background(accentColor).Padding(0, 1)
	menuStyle      = lipgloss.NewStyle().Foreground(textColor).Background(bgColor).Padding(1, 2)
	columnStyle    = lipgloss.NewStyle().Width(28).MarginRight(2)
	groupStyle     = lipgloss.NewStyle().Foreground(mutedColor).Bold(true)
	activeStyle    = lipgloss.NewStyle().Foreground(textColor).Underline(true)
	comingStyle    = lipgloss.NewStyle().Foreground(mutedColor)
	statusBarStyle = lipgloss.NewStyle().Foreground(mutedColor).MarginTop(1)
)
