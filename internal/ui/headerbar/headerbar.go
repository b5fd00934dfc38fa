// Package headerbar renders the single-line header above the carousel.
package headerbar

import (
	"path/filepath"

	"github.com/llehouerou/reel/internal/ui/render"
	"github.com/llehouerou/reel/internal/ui/styles"
)

// fallbackTitle is shown for decks without a title.
const fallbackTitle = "reel"

// Render returns the header bar for the given width: the deck title as a
// gradient on the left and the deck file name on the right. The file name
// is dropped first when space runs out.
func Render(title, deckPath string, width int) string {
	if width <= 0 {
		return ""
	}
	t := styles.T()

	if title == "" {
		title = fallbackTitle
	}
	left := styles.ApplyBoldGradient(render.Truncate(title, width), t.Primary, t.Secondary)

	var right string
	if deckPath != "" {
		right = t.S().Subtle.Render(render.Truncate(filepath.Base(deckPath), width/3))
	}
	return render.Row(left, right, width)
}
