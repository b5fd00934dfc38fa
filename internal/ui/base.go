package ui

// Base provides size bookkeeping for components. Embed it in component
// models to get the standard methods.
type Base struct {
	width, height int
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the component dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// ContentHeight returns the height left after subtracting overhead rows.
func (b Base) ContentHeight(overhead int) int {
	return max(b.height-overhead, 0)
}
