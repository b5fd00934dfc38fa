// Package icons holds the glyphs used in the footer and notification
// line, in a style chosen by configuration.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Playing   string
	Paused    string
	Static    string
	Dot       string
	DotActive string
	Success   string
	Failure   string
	Tag       string
}

var (
	nerdIcons = Icons{
		Playing:   "\uf04b",  // nf-fa-play
		Paused:    "\uf04c",  // nf-fa-pause
		Static:    "\uf04d",  // nf-fa-stop
		Dot:       "\uf10c",  // nf-fa-circle_o
		DotActive: "\uf111",  // nf-fa-circle
		Success:   "\uf00c",  // nf-fa-check
		Failure:   "\uf00d",  // nf-fa-times
		Tag:       "\uf02b ", // nf-fa-tag
	}

	unicodeIcons = Icons{
		Playing:   "▶",
		Paused:    "⏸",
		Static:    "■",
		Dot:       "○",
		DotActive: "●",
		Success:   "✓",
		Failure:   "✗",
		Tag:       "#",
	}

	noneIcons = Icons{
		Playing:   ">",
		Paused:    "||",
		Static:    "-",
		Dot:       ".",
		DotActive: "*",
		Success:   "+",
		Failure:   "!",
		Tag:       "#",
	}

	// current holds the active icon set
	current = unicodeIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value. Unknown styles select
// unicode.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleNone:
		current = noneIcons
	default:
		current = unicodeIcons
	}
}

// Playing marks a running autoplay.
func Playing() string {
	return current.Playing
}

// Paused marks a paused autoplay.
func Paused() string {
	return current.Paused
}

// Static marks a carousel that cannot move.
func Static() string {
	return current.Static
}

// Dot returns the position indicator for item i when current is shown.
func Dot(i, currentIndex int) string {
	if i == currentIndex {
		return current.DotActive
	}
	return current.Dot
}

// Success prefixes notifications.
func Success() string {
	return current.Success
}

// Failure prefixes errors.
func Failure() string {
	return current.Failure
}

// FormatTags joins tags, each with the tag icon in front.
func FormatTags(tags []string) string {
	out := ""
	for i, t := range tags {
		if i > 0 {
			out += " "
		}
		out += current.Tag + t
	}
	return out
}
