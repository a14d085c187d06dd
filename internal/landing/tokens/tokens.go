package tokens

import (
	"fmt"
	"strings"
)

// Tokens holds the brand design values shared by every visual component.
type Tokens struct {
	Bg        string
	Text      string
	Dark      string
	LightText string
	Accent    string
	Mono      string
}

// Default is the dataskools brand palette. It is a value: callers receive copies.
var Default = Tokens{
	Bg:        "#F1F1F1",
	Text:      "#121212",
	Dark:      "#121212",
	LightText: "#F1F1F1",
	Accent:    "#C9FE6E",
	Mono:      "font-mono",
}

// LightSurface returns the inline style for sections on the light background.
func (t Tokens) LightSurface() string {
	return fmt.Sprintf("background:%s;color:%s", t.Bg, t.Text)
}

// DarkSurface returns the inline style for sections on the dark background.
func (t Tokens) DarkSurface() string {
	return fmt.Sprintf("background:%s;color:%s", t.Dark, t.LightText)
}

// CSSVariables renders the palette as custom properties for the :root rule.
func (t Tokens) CSSVariables() string {
	vars := []string{
		"--bg:" + t.Bg,
		"--text:" + t.Text,
		"--dark:" + t.Dark,
		"--light-text:" + t.LightText,
		"--accent:" + t.Accent,
	}
	return ":root{" + strings.Join(vars, ";") + "}"
}

// MonoLabel joins the monospace marker with additional utility classes.
func (t Tokens) MonoLabel(classes string) string {
	classes = strings.TrimSpace(classes)
	if classes == "" {
		return t.Mono
	}
	return t.Mono + " " + classes
}
