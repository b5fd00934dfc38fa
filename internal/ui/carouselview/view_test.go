package carouselview

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/reel/internal/deck"
	"github.com/llehouerou/reel/internal/ui/testutil"
)

func TestView_ShowsCurrentItem(t *testing.T) {
	d := newDriver(t, 3, 30, testOptions())

	view := testutil.StripANSI(d.m.View())
	assert.Contains(t, view, "Item 1")
	assert.NotContains(t, view, "Item 2")
	assert.Contains(t, view, "1 / 3")

	d.run(d.m.Next())

	view = testutil.StripANSI(d.m.View())
	assert.Contains(t, view, "Item 2")
	assert.NotContains(t, view, "Item 1")
	assert.Contains(t, view, "2 / 3")
}

func TestView_ExactSize(t *testing.T) {
	d := newDriver(t, 4, 37, testOptions())

	lines := strings.Split(d.m.View(), "\n")
	require.Len(t, lines, 8)
	for i, line := range lines {
		assert.Equal(t, 37, ansi.StringWidth(line), "line %d", i)
	}
}

func TestView_SeveralPerView(t *testing.T) {
	opts := testOptions()
	opts.ItemsPerView = 3
	opts.Gap = 1
	d := newDriver(t, 5, 92, opts)

	view := testutil.StripANSI(d.m.View())
	for _, title := range []string{"Item 1", "Item 2", "Item 3"} {
		assert.Contains(t, view, title)
	}
	assert.NotContains(t, view, "Item 4")
}

func TestView_CloneLooksLikeItsItem(t *testing.T) {
	d := newDriver(t, 3, 30, testOptions())

	d.run(d.m.Next())
	d.run(d.m.Next())
	d.m.Next()

	// Run the frames without reporting the end, so the strip rests on the
	// head clone of item 1 before the re-snap.
	anim := d.m.track.anim
	for {
		_, done, ok := d.m.track.advance(anim)
		require.True(t, ok)
		if done {
			break
		}
	}
	require.Equal(t, -4*30, d.m.track.Offset())

	assert.Contains(t, testutil.StripANSI(d.m.View()), "Item 1")
}

func TestView_MidAnimationShowsBothItems(t *testing.T) {
	d := newDriver(t, 3, 30, testOptions())

	d.m.Next()
	d.m.Update(frameMsg{Session: d.m.Session(), Anim: d.m.track.anim})
	d.m.Update(frameMsg{Session: d.m.Session(), Anim: d.m.track.anim})
	require.True(t, d.m.Animating())

	view := testutil.StripANSI(d.m.View())
	assert.Contains(t, view, "Item 2")
}

func TestView_TagsAndBody(t *testing.T) {
	items := []deck.Item{{Title: "Launch", Body: "We shipped the new release today.", Tags: []string{"news", "ops"}}}
	m, err := newModel(items, 40, 10, testOptions(), instantTick)
	require.NoError(t, err)

	view := testutil.StripANSI(m.View())
	assert.Contains(t, view, "Launch")
	assert.Contains(t, view, "We shipped")
	assert.Contains(t, view, "#news #ops")
}

func TestView_NarrowCardsShowTitleOnly(t *testing.T) {
	m, err := newModel(testItems(2), 5, 6, testOptions(), instantTick)
	require.NoError(t, err)

	view := testutil.StripANSI(m.View())
	assert.Contains(t, view, "Item…")
	assert.NotContains(t, view, "body")
}

func TestView_AutoplayStatus(t *testing.T) {
	opts := testOptions()
	opts.Autoplay = true
	d := newDriver(t, 3, 60, opts)

	assert.Contains(t, testutil.StripANSI(d.m.View()), "every 5s")

	d.m.Pause()
	assert.Contains(t, testutil.StripANSI(d.m.View()), "paused")
}

func TestView_Empty(t *testing.T) {
	m, err := newModel(nil, 20, 3, testOptions(), instantTick)
	require.Error(t, err)

	assert.Contains(t, testutil.StripANSI(m.View()), "No items")
	assert.Nil(t, m.Next())
}

func TestView_ZeroSize(t *testing.T) {
	m, err := newModel(testItems(2), 0, 0, testOptions(), instantTick)
	require.NoError(t, err)
	assert.Empty(t, m.View())
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{7, 3, 2},
		{6, 3, 2},
		{-1, 3, -1},
		{-3, 3, -1},
		{-4, 3, -2},
		{0, 3, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, floorDiv(tt.a, tt.b), "floorDiv(%d, %d)", tt.a, tt.b)
	}
}
