package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - current item, active dot
	Secondary lipgloss.Color // Gold/orange - gradient end, autoplay

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Card body
	FgMuted  lipgloss.Color // Footer, tags
	FgSubtle lipgloss.Color // Inactive dots

	// Backgrounds
	BgBase  lipgloss.Color
	BgPanel lipgloss.Color // Help overlay

	// Borders
	Border      lipgloss.Color // Card borders
	BorderFocus lipgloss.Color // Current card border

	// Status colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base       lipgloss.Style // Default text
	Muted      lipgloss.Style // Dimmed text
	Subtle     lipgloss.Style // Very dim text
	Title      lipgloss.Style // Bold, bright
	Card       lipgloss.Style // Item card
	CardActive lipgloss.Style // Card at the leading position
	Tag        lipgloss.Style
	Dot        lipgloss.Style
	DotActive  lipgloss.Style
	Panel      lipgloss.Style // Help overlay frame
	Success    lipgloss.Style
	Error      lipgloss.Style
	Warning    lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgBase:  lipgloss.Color("#1a1a1a"),
	BgPanel: lipgloss.Color("#222222"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)
	card := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.FgBase).
		Padding(0, 1)

	return &Styles{
		Base:       base,
		Muted:      lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:     lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:      base.Bold(true),
		Card:       card,
		CardActive: card.BorderForeground(t.BorderFocus),
		Tag:        lipgloss.NewStyle().Foreground(t.FgMuted).Italic(true),
		Dot:        lipgloss.NewStyle().Foreground(t.FgSubtle),
		DotActive:  lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Background(t.BgPanel).
			Padding(1, 2),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}

// CardStyle returns the card style for a slot. Clones are drawn exactly
// like the item they copy so the loop-around re-snap is invisible.
func CardStyle(active bool) lipgloss.Style {
	if active {
		return T().S().CardActive
	}
	return T().S().Card
}
