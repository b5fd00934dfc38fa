// Package layout provides pure functions for UI dimension calculations.
package layout

// ContentOpts contains the heights of the bars around the carousel.
type ContentOpts struct {
	HeaderHeight       int
	NotificationHeight int
}

// ContentHeight calculates the height left to the carousel: the window
// height minus the header and the notification line, never negative.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= opts.NotificationHeight
	return max(height, 0)
}

// StripHeight returns the height of the card strip in a carousel area of
// areaHeight rows with a footer below it. The strip keeps at least one row;
// the footer is dropped first.
func StripHeight(areaHeight, footerHeight int) int {
	return max(areaHeight-footerHeight, 1)
}

// ShowFooter reports whether a carousel area is tall enough for its footer.
func ShowFooter(areaHeight, footerHeight int) bool {
	return areaHeight > footerHeight
}

// PanelWidth calculates the content width of a centered overlay panel:
// the window width minus margin on each side, capped at maxWidth when
// maxWidth is positive.
func PanelWidth(windowWidth, margin, maxWidth int) int {
	width := max(windowWidth-2*margin, 0)
	if maxWidth > 0 {
		width = min(width, maxWidth)
	}
	return width
}
