package carouselview

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/reel/internal/icons"
	"github.com/llehouerou/reel/internal/ui"
	"github.com/llehouerou/reel/internal/ui/layout"
	"github.com/llehouerou/reel/internal/ui/render"
	"github.com/llehouerou/reel/internal/ui/styles"
)

type cardKey struct {
	index  int
	active bool
	width  int
	height int
}

// maxCachedCards bounds the card cache; it is cleared when full.
const maxCachedCards = 256

// View renders the visible part of the strip and the footer.
func (m *Model) View() string {
	w, h := m.Size()
	if w <= 0 || h <= 0 {
		return ""
	}
	if len(m.items) == 0 {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center,
			styles.T().S().Muted.Render("No items"))
	}

	lines := m.renderStrip(w, layout.StripHeight(h, ui.FooterHeight))
	if layout.ShowFooter(h, ui.FooterHeight) {
		lines = append(lines, m.renderFooter(w))
	}
	return strings.Join(lines, "\n")
}

// renderStrip lays the padded slots side by side and cuts the window
// [-offset, -offset+width) out of them. Only the slots touching the window
// are drawn.
func (m *Model) renderStrip(width, height int) []string {
	padded := m.car.Layout()
	geo := m.car.Geometry()
	stride := geo.ItemWidth + geo.Gap
	if geo.ItemWidth <= 0 || stride <= 0 {
		return render.FitHeight(nil, height)
	}

	x0 := -m.track.Offset()
	first := floorDiv(x0, stride)
	last := floorDiv(x0+width-1, stride)
	active := int(math.Round(float64(x0) / float64(stride)))

	gap := render.EmptyLine(geo.Gap)
	blank := render.FitHeight(nil, height)
	for i := range blank {
		blank[i] = render.EmptyLine(geo.ItemWidth)
	}

	rows := make([]strings.Builder, height)
	for p := first; p <= last; p++ {
		card := blank
		if p >= 0 && p < padded.PaddedLength {
			index, _ := padded.Source(p)
			card = m.card(index, p == active, geo.ItemWidth, height)
		}
		for r := range rows {
			if p > first {
				rows[r].WriteString(gap)
			}
			rows[r].WriteString(card[r])
		}
	}

	start := x0 - first*stride
	lines := make([]string, height)
	for r := range rows {
		line := ansi.Cut(rows[r].String(), start, start+width)
		if lw := ansi.StringWidth(line); lw < width {
			line += render.EmptyLine(width - lw)
		}
		lines[r] = line
	}
	return lines
}

func (m *Model) card(index int, active bool, width, height int) []string {
	key := cardKey{index: index, active: active, width: width, height: height}
	if lines, ok := m.cards[key]; ok {
		return lines
	}
	if len(m.cards) >= maxCachedCards {
		clear(m.cards)
	}
	lines := m.renderCard(index, active, width, height)
	m.cards[key] = lines
	return lines
}

// renderCard draws item index as exactly height lines of width cells.
func (m *Model) renderCard(index int, active bool, width, height int) []string {
	item := m.items[index]
	accent := lipgloss.NewStyle().Foreground(styles.Accent(index, len(m.items))).Bold(true)

	title := item.Title
	if title == "" {
		title = fmt.Sprintf("#%d", index+1)
	}

	if width < ui.MinCardWidth || height < ui.MinCardHeight {
		lines := render.FitHeight([]string{accent.Render(render.TruncateAndPad(title, width))}, height)
		for i := 1; i < len(lines); i++ {
			lines[i] = render.EmptyLine(width)
		}
		return lines
	}

	innerWidth := width - ui.CardBorder - ui.CardPadding
	innerHeight := height - ui.CardBorder

	var tagLine string
	if len(item.Tags) > 0 && innerHeight >= 4 {
		tagLine = styles.T().S().Tag.Render(render.Truncate(icons.FormatTags(item.Tags), innerWidth))
	}

	content := []string{accent.Render(render.Truncate(title, innerWidth))}
	bodyRows := innerHeight - 2
	if tagLine != "" {
		bodyRows--
	}
	if item.Body != "" && bodyRows > 0 {
		content = append(content, "")
		content = append(content, render.Wrap(item.Body, innerWidth, bodyRows)...)
	}
	if tagLine != "" {
		content = render.FitHeight(content, innerHeight-1)
		content = append(content, tagLine)
	}

	out := styles.CardStyle(active).
		Width(width - ui.CardBorder).
		Height(innerHeight).
		Render(strings.Join(content, "\n"))

	lines := render.FitHeight(strings.Split(out, "\n"), height)
	for i, line := range lines {
		if lw := ansi.StringWidth(line); lw < width {
			lines[i] = line + render.EmptyLine(width-lw)
		}
	}
	return lines
}

// renderFooter shows "k / N", position dots and the autoplay state.
func (m *Model) renderFooter(width int) string {
	s := styles.T().S()
	n := len(m.items)
	current := m.car.RealIndex()

	left := s.Muted.Render(fmt.Sprintf("%d / %d", current+1, n))
	if dots := m.renderDots(current); ansi.StringWidth(dots)+ansi.StringWidth(left)+2 <= width/2 {
		left += "  " + dots
	}

	var right string
	ap := m.car.Autoplay()
	switch {
	case m.car.Inert():
		right = s.Warning.Render(icons.Static() + " static")
	case ap.Paused():
		right = s.Muted.Render(icons.Paused() + " paused")
	case ap.Running():
		right = s.Success.Render(icons.Playing() + " every " + ap.Interval().String())
	}

	line := render.Row(left, right, width)
	if lw := ansi.StringWidth(line); lw > width {
		return ansi.Truncate(line, width, "")
	} else if lw < width {
		line += render.EmptyLine(width - lw)
	}
	return line
}

func (m *Model) renderDots(current int) string {
	s := styles.T().S()
	dots := make([]string, len(m.items))
	for i := range m.items {
		if i == current {
			dots[i] = s.DotActive.Render(icons.Dot(i, current))
		} else {
			dots[i] = s.Dot.Render(icons.Dot(i, current))
		}
	}
	return strings.Join(dots, " ")
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
