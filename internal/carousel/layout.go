package carousel

// Layout describes the padded sequence for one items-per-view value:
// [tail clones][real items][head clones].
type Layout struct {
	ItemCount    int
	CloneCount   int
	PaddedLength int
}

// Build computes the padded layout. One clone per visible slot is added on
// each side; with fewer than two items nothing can wrap, so no clones are
// built and the carousel is static.
func Build(itemCount, itemsPerView int) Layout {
	itemCount = max(itemCount, 0)
	if itemCount < 2 {
		return Layout{ItemCount: itemCount, PaddedLength: itemCount}
	}
	clones := max(itemsPerView, 1)
	return Layout{
		ItemCount:    itemCount,
		CloneCount:   clones,
		PaddedLength: itemCount + 2*clones,
	}
}

// Static reports whether the layout has no wraparound.
func (l Layout) Static() bool {
	return l.CloneCount == 0
}

// FirstReal returns the position of real index 0.
func (l Layout) FirstReal() int {
	return l.CloneCount
}

// Source returns the real item rendered at padded slot p and whether the
// slot is a clone. Slots outside the padded sequence wrap the same way
// clones do, so renderers can draw a transient out-of-range target.
func (l Layout) Source(p int) (index int, clone bool) {
	if l.ItemCount == 0 {
		return 0, false
	}
	index = mod(p-l.CloneCount, l.ItemCount)
	clone = p < l.CloneCount || p >= l.CloneCount+l.ItemCount
	return index, clone
}

// ItemWidth returns the width of one item so that itemsPerView items and
// the gaps between them fill containerWidth.
func ItemWidth(containerWidth, itemsPerView, gap int) int {
	itemsPerView = max(itemsPerView, 1)
	return max(0, (containerWidth-gap*(itemsPerView-1))/itemsPerView)
}

// PixelOffset returns the track translation that brings position to the
// leading edge of the viewport.
func PixelOffset(position, itemWidth, gap int) int {
	return -(position * (itemWidth + gap))
}

// mod is the non-negative remainder.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
