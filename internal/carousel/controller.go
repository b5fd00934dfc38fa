package carousel

import "log/slog"

// TransitionState is the controller's animation state.
type TransitionState int

const (
	Idle TransitionState = iota
	Animating
)

func (s TransitionState) String() string {
	if s == Animating {
		return "animating"
	}
	return "idle"
}

// Geometry is the pixel geometry of the current layout.
type Geometry struct {
	ItemWidth int
	Gap       int
}

// Offset returns the track translation for position.
func (g Geometry) Offset(position int) int {
	return PixelOffset(position, g.ItemWidth, g.Gap)
}

// Controller moves the track between positions. At most one animated move
// is in flight; animated requests arriving meanwhile are dropped, while
// unanimated requests cancel it.
//
// Transitions:
//
//	Idle ──GoTo(animate)──► Animating ──TransitionEnd──► Idle
//	                                      (re-snap first when landing on a clone)
type Controller struct {
	track  Track
	sink   SettleSink
	logger *slog.Logger

	layout   Layout
	geometry Geometry

	position int
	target   int
	state    TransitionState
	epoch    uint64
}

// NewController returns an idle controller resting at the first real item
// of layout. It does not touch the track.
func NewController(track Track, sink SettleSink, layout Layout, geometry Geometry, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		track:    track,
		sink:     sink,
		logger:   logger,
		layout:   layout,
		geometry: geometry,
		position: layout.FirstReal(),
		target:   layout.FirstReal(),
	}
}

// State returns the transition state.
func (c *Controller) State() TransitionState { return c.state }

// Position returns the committed position. During an animation this is
// still the position the move started from.
func (c *Controller) Position() int { return c.position }

// Target returns the position of the in-flight move, or the committed
// position when idle.
func (c *Controller) Target() int {
	if c.state == Animating {
		return c.target
	}
	return c.position
}

// Epoch returns the identity of the latest move.
func (c *Controller) Epoch() uint64 { return c.epoch }

// Layout returns the layout the controller positions against.
func (c *Controller) Layout() Layout { return c.layout }

// Geometry returns the current pixel geometry.
func (c *Controller) Geometry() Geometry { return c.geometry }

// RealIndex returns the real index of the committed position.
func (c *Controller) RealIndex() int {
	if c.layout.ItemCount == 0 {
		return 0
	}
	index, ok, err := ToRealIndex(c.position, c.layout.CloneCount, c.layout.ItemCount)
	if err != nil || !ok {
		// Committed positions are always real; recover from the mirror.
		index, _ = c.layout.Source(c.position)
	}
	return index
}

// GoTo moves the track to target. It reports whether the request was
// honored.
func (c *Controller) GoTo(target int, animate bool) bool {
	if c.layout.ItemCount == 0 {
		return false
	}
	if !animate {
		c.epoch++
		c.state = Idle
		c.snap(target)
		c.settle(target)
		return true
	}
	if c.state == Animating {
		c.logger.Debug("navigation dropped while animating",
			"target", target, "in_flight", c.target)
		return false
	}

	c.epoch++
	c.target = target
	c.state = Animating
	c.track.SetTransition(true)
	c.track.SetOffset(c.geometry.Offset(target), c.epoch)
	return true
}

// Next advances one position.
func (c *Controller) Next() bool {
	if c.layout.Static() {
		return false
	}
	return c.GoTo(c.position+1, true)
}

// Prev moves back one position.
func (c *Controller) Prev() bool {
	if c.layout.Static() {
		return false
	}
	return c.GoTo(c.position-1, true)
}

// GoToIndex animates to real index k. Indexes outside the item set are
// ignored.
func (c *Controller) GoToIndex(k int) bool {
	if c.layout.Static() {
		return false
	}
	if k < 0 || k >= c.layout.ItemCount {
		c.logger.Debug("ignoring out-of-range index", "index", k, "items", c.layout.ItemCount)
		return false
	}
	return c.GoTo(k+c.layout.CloneCount, true)
}

// TransitionEnd completes the animated move identified by epoch. Signals
// for earlier moves, repeated signals and signals while idle are ignored.
func (c *Controller) TransitionEnd(epoch uint64) {
	if c.state != Animating || epoch != c.epoch {
		c.logger.Debug("ignoring stale transition end", "epoch", epoch, "current", c.epoch)
		return
	}
	c.settle(c.target)
}

// Cancel drops any in-flight move without moving the track.
func (c *Controller) Cancel() {
	c.epoch++
	c.state = Idle
	c.target = c.position
}

// relayout switches to a new layout and geometry. The committed position
// is left untouched; callers follow with an unanimated GoTo or Reapply.
func (c *Controller) relayout(layout Layout, geometry Geometry) {
	c.layout = layout
	c.geometry = geometry
}

// Reapply re-positions the track at the committed position without
// animation and without a settle notification. An in-flight move is
// cancelled.
func (c *Controller) Reapply() {
	if c.layout.ItemCount == 0 {
		return
	}
	c.Cancel()
	c.snap(c.position)
}

// settle resolves landed to a real position, re-snapping out of clone
// territory, then commits it and notifies the sink.
func (c *Controller) settle(landed int) {
	position := landed
	zone, err := Classify(landed, c.layout.CloneCount, c.layout.ItemCount)
	switch {
	case err != nil:
		// One step past either end is a legal target; anything further
		// means the caller and the layout disagree.
		if landed < -1 || landed > c.layout.PaddedLength {
			c.logger.Error("position outside padded sequence", "error", err)
		}
		position = EquivalentRealPosition(landed, HeadClone, c.layout.CloneCount, c.layout.ItemCount)
		c.snap(position)
	case zone != Real:
		position = EquivalentRealPosition(landed, zone, c.layout.CloneCount, c.layout.ItemCount)
		c.logger.Debug("re-snapping out of clone zone", "zone", zone, "from", landed, "to", position)
		c.snap(position)
	}

	c.position = position
	c.target = position
	c.state = Idle

	index, _, _ := ToRealIndex(position, c.layout.CloneCount, c.layout.ItemCount)
	if c.sink != nil {
		c.sink.OnSettled(index)
	}
}

// snap moves the track to position with transitions disabled, flushing in
// between so the next animated move starts from here.
func (c *Controller) snap(position int) {
	c.track.SetTransition(false)
	c.track.SetOffset(c.geometry.Offset(position), c.epoch)
	c.track.Flush()
	c.track.SetTransition(true)
}
