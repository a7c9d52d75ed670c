package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds the color palette for the console view.
type Theme struct {
	Name       string
	Background string
	Text       string
	Faint      string
	Muted      string
	Accent     string
	Success    string
	Warning    string
	Danger     string
}

var themes = []Theme{
	{
		Name:       "dark",
		Background: "#1E1E2E",
		Text:       "#CDD6F4",
		Faint:      "#585B70",
		Muted:      "#7F849C",
		Accent:     "#89B4FA",
		Success:    "#A6E3A1",
		Warning:    "#F9E2AF",
		Danger:     "#F38BA8",
	},
	{
		Name:       "light",
		Background: "#EFF1F5",
		Text:       "#4C4F69",
		Faint:      "#9CA0B0",
		Muted:      "#6C6F85",
		Accent:     "#1E66F5",
		Success:    "#40A02B",
		Warning:    "#DF8E1D",
		Danger:     "#D20F39",
	},
}

// GetTheme returns the named theme, defaulting to the first (dark).
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the theme after the named one, wrapping.
func NextTheme(name string) Theme {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}

// Styles is the set of pre-built lipgloss styles for a theme.
type Styles struct {
	Text    lipgloss.Style
	Faint   lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style
	Title   lipgloss.Style
}

// Styles builds the style set for the theme.
func (t Theme) Styles() Styles {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Styles{
		Text:    fg(t.Text),
		Faint:   fg(t.Faint),
		Muted:   fg(t.Muted),
		Accent:  fg(t.Accent),
		Success: fg(t.Success),
		Warning: fg(t.Warning),
		Danger:  fg(t.Danger),
		Title:   fg(t.Accent).Bold(true),
	}
}
