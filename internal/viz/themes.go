package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/bonsai/internal/tree"
)

// Theme defines the color scheme for a rendered tree. Wood and leaf slices
// are indexed by a segment's style tag, so one segment keeps one color for
// its whole drawn trail.
type Theme struct {
	Name   string
	Wood   []lipgloss.Color // trunk and shoots
	Dying  []lipgloss.Color // young leaf clusters
	Dead   []lipgloss.Color // terminal leaves
	Pot    lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:   "classic",
		Wood:   []lipgloss.Color{"130", "94"},
		Dying:  []lipgloss.Color{"107", "71", "65", "108"},
		Dead:   []lipgloss.Color{"34", "40", "28", "70"},
		Pot:    lipgloss.Color("245"),
		Text:   lipgloss.Color("252"),
		Muted:  lipgloss.Color("240"),
		Accent: lipgloss.Color("86"),
	}

	ThemeSakura = Theme{
		Name:   "sakura",
		Wood:   []lipgloss.Color{"95", "52"},
		Dying:  []lipgloss.Color{"218", "217", "211", "225"},
		Dead:   []lipgloss.Color{"213", "205", "218", "212"},
		Pot:    lipgloss.Color("246"),
		Text:   lipgloss.Color("255"),
		Muted:  lipgloss.Color("243"),
		Accent: lipgloss.Color("211"),
	}

	ThemeAutumn = Theme{
		Name:   "autumn",
		Wood:   []lipgloss.Color{"94", "58"},
		Dying:  []lipgloss.Color{"172", "178", "166", "208"},
		Dead:   []lipgloss.Color{"196", "160", "202", "130"},
		Pot:    lipgloss.Color("240"),
		Text:   lipgloss.Color("223"),
		Muted:  lipgloss.Color("137"),
		Accent: lipgloss.Color("208"),
	}

	ThemeWinter = Theme{
		Name:   "winter",
		Wood:   []lipgloss.Color{"102", "59"},
		Dying:  []lipgloss.Color{"153", "152", "110", "195"},
		Dead:   []lipgloss.Color{"255", "231", "153", "195"},
		Pot:    lipgloss.Color("244"),
		Text:   lipgloss.Color("254"),
		Muted:  lipgloss.Color("242"),
		Accent: lipgloss.Color("153"),
	}

	ThemeMono = Theme{
		Name:   "mono",
		Wood:   []lipgloss.Color{"250", "245"},
		Dying:  []lipgloss.Color{"248", "246", "250", "244"},
		Dead:   []lipgloss.Color{"255", "252", "248", "250"},
		Pot:    lipgloss.Color("240"),
		Text:   lipgloss.Color("252"),
		Muted:  lipgloss.Color("240"),
		Accent: lipgloss.Color("255"),
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeSakura,
		ThemeAutumn,
		ThemeWinter,
		ThemeMono,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// NextTheme returns the theme after the given one, cycling.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeClassic
}

// ThemeNames returns the available theme names.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// KindColor maps a segment kind and style tag to the theme color for it.
func (t Theme) KindColor(k tree.Kind, style int) lipgloss.Color {
	pick := func(palette []lipgloss.Color) lipgloss.Color {
		if len(palette) == 0 {
			return t.Text
		}
		return palette[style%len(palette)]
	}
	switch k {
	case tree.Dying:
		return pick(t.Dying)
	case tree.Dead:
		return pick(t.Dead)
	default:
		return pick(t.Wood)
	}
}
