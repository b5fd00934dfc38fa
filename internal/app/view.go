package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/reel/internal/icons"
	"github.com/llehouerou/reel/internal/keymap"
	"github.com/llehouerou/reel/internal/ui/headerbar"
	"github.com/llehouerou/reel/internal/ui/layout"
	"github.com/llehouerou/reel/internal/ui/overlay"
	"github.com/llehouerou/reel/internal/ui/render"
	"github.com/llehouerou/reel/internal/ui/styles"
)

// Help panel width in columns; the panel frame adds 3 on each side.
const (
	helpMargin   = 4
	helpMaxWidth = 100
)

// View renders the application UI.
func (m Model) View() string {
	width, height := m.Size()
	if width <= 0 || height <= 0 {
		return ""
	}

	view := headerbar.Render(m.deck.Title, m.deck.Path, width)
	if body := m.carouselHeight(); body > 0 {
		if m.view != nil {
			view += "\n" + m.view.View()
		} else {
			view += "\n" + strings.Join(render.FitHeight(nil, body), "\n")
		}
	}
	view += "\n" + m.renderNotificationLine()

	if m.showHelp {
		view = overlay.Center(view, m.renderHelp(), width, height)
	}

	return enforceHeight(view, height)
}

// renderNotificationLine shows, in order of precedence, the error, the
// latest notification or the short key help.
func (m Model) renderNotificationLine() string {
	s := styles.T().S()
	width := m.Width()

	switch {
	case m.ErrorMsg != "":
		return s.Error.Render(render.TruncateAndPad(icons.Failure()+" "+m.ErrorMsg, width))
	case len(m.Notifications) > 0:
		n := m.Notifications[len(m.Notifications)-1]
		check := lipgloss.NewStyle().Foreground(styles.T().Primary).Render(icons.Success())
		rest := max(width-lipgloss.Width(check)-1, 0)
		return check + " " + s.Base.Render(render.TruncateAndPad(n.Message, rest))
	default:
		return m.help.ShortHelpView(keymap.DefaultHelpKeyMap().ShortHelp())
	}
}

// renderHelp renders the help panel listing every binding.
func (m Model) renderHelp() string {
	h := m.help
	h.ShowAll = true
	h.Width = layout.PanelWidth(m.Width(), helpMargin, helpMaxWidth)
	title := styles.T().S().Title.Render("Keys")
	return styles.T().S().Panel.Render(title + "\n\n" + h.View(keymap.DefaultHelpKeyMap()))
}

// enforceHeight pads or truncates view to exactly targetHeight lines.
func enforceHeight(view string, targetHeight int) string {
	lines := strings.Split(view, "\n")
	if len(lines) == targetHeight {
		return view
	}
	if len(lines) < targetHeight {
		for i := len(lines); i < targetHeight; i++ {
			lines = append(lines, "")
		}
	} else {
		lines = lines[:targetHeight]
	}
	return strings.Join(lines, "\n")
}
