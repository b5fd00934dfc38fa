// Package carousel implements an infinite-loop carousel engine.
//
// A finite list of items is laid out as a padded sequence with clones of the
// last items before it and clones of the first items after it. Moving past
// either end animates into clone territory and, once the move settles,
// silently re-snaps to the real item rendering the same content. The engine
// keeps at most one animated move in flight, schedules autoplay, and
// re-lays itself out when the container width crosses a breakpoint while
// keeping the same real item in view.
//
// The engine owns no rendering. Callers supply a Track to move, a Scheduler
// for timers and a SettleSink for notifications, and feed back the track's
// transition end and container resizes. All calls must come from one
// goroutine.
package carousel

import (
	"log/slog"
)

// Carousel ties the controller, autoplay and resizer of one instance.
type Carousel struct {
	opts   Options
	logger *slog.Logger

	ctrl     *Controller
	autoplay *Autoplay
	resizer  *Resizer

	width        int
	itemsPerView int

	inert     bool
	destroyed bool
}

// State is a snapshot of the engine.
type State struct {
	Position     int
	RealIndex    int
	CloneCount   int
	ItemCount    int
	ItemsPerView int
	ItemWidth    int
	Transition   TransitionState
}

// New builds a carousel over itemCount items in a container of width
// containerWidth and positions the track at opts.StartIndex without
// animation or notification.
//
// Invalid options or an empty item set yield an inert carousel together
// with a *ConfigurationError: the track is still positioned so items stay
// visible, but navigation and autoplay do nothing.
func New(itemCount, containerWidth int, track Track, sched Scheduler, sink SettleSink, opts Options) (*Carousel, error) {
	cfgErr := opts.Validate()
	opts = opts.WithDefaults()
	if cfgErr == nil && itemCount <= 0 {
		cfgErr = &ConfigurationError{Field: "item count", Value: itemCount, Reason: "carousel needs at least one item"}
	}

	c := &Carousel{
		opts:   opts,
		logger: opts.Logger,
		width:  containerWidth,
	}
	c.itemsPerView = opts.ItemsPerViewFor(containerWidth)
	layout := Build(itemCount, c.itemsPerView)
	geometry := Geometry{ItemWidth: ItemWidth(containerWidth, c.itemsPerView, opts.Gap), Gap: opts.Gap}
	c.ctrl = NewController(track, sink, layout, geometry, opts.Logger)
	c.autoplay = NewAutoplay(sched, func() { c.ctrl.Next() })
	c.resizer = NewResizer(sched, opts.ResizeDebounce, c.applyWidth)

	if cfgErr != nil {
		c.inert = true
		c.logger.Warn("carousel is inert", "error", cfgErr)
		if layout.ItemCount > 0 {
			c.ctrl.Reapply()
		}
		return c, cfgErr
	}

	if start := opts.StartIndex; start < itemCount {
		c.ctrl.position = layout.CloneCount + start
	} else {
		c.logger.Debug("start index past item set, starting at first item", "start", start, "items", itemCount)
	}
	c.ctrl.Reapply()

	if opts.Autoplay && !layout.Static() {
		c.autoplay.Start(opts.Interval)
	}
	return c, nil
}

// Next advances one item.
func (c *Carousel) Next() bool {
	if !c.navigable() {
		return false
	}
	return c.ctrl.Next()
}

// Prev goes back one item.
func (c *Carousel) Prev() bool {
	if !c.navigable() {
		return false
	}
	return c.ctrl.Prev()
}

// GoToIndex animates to real index k.
func (c *Carousel) GoToIndex(k int) bool {
	if !c.navigable() {
		return false
	}
	return c.ctrl.GoToIndex(k)
}

// TransitionEnd forwards the track's transition end for epoch.
func (c *Carousel) TransitionEnd(epoch uint64) {
	if c.destroyed {
		return
	}
	c.ctrl.TransitionEnd(epoch)
}

// Resize schedules a debounced re-layout for a new container width.
func (c *Carousel) Resize(containerWidth int) {
	if c.destroyed || c.inert {
		return
	}
	c.resizer.Resize(containerWidth)
}

// ResizeNow re-lays out immediately, cancelling any pending resize.
func (c *Carousel) ResizeNow(containerWidth int) {
	if c.destroyed || c.inert {
		return
	}
	c.resizer.Cancel()
	c.applyWidth(containerWidth)
}

// StartAutoplay starts autoplay at the configured interval.
func (c *Carousel) StartAutoplay() {
	if !c.navigable() || c.ctrl.Layout().Static() {
		return
	}
	c.autoplay.Start(c.opts.Interval)
}

// StopAutoplay stops autoplay.
func (c *Carousel) StopAutoplay() {
	c.autoplay.Stop()
}

// Pause pauses autoplay.
func (c *Carousel) Pause() {
	c.autoplay.Pause()
}

// Resume resumes autoplay with a full interval.
func (c *Carousel) Resume() {
	if c.destroyed {
		return
	}
	c.autoplay.Resume()
}

// Autoplay returns the autoplay scheduler.
func (c *Carousel) Autoplay() *Autoplay {
	return c.autoplay
}

// Destroy releases the autoplay and resize timers and invalidates any
// pending transition end. Items are left where they are.
func (c *Carousel) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	c.autoplay.Stop()
	c.resizer.Cancel()
	c.ctrl.Cancel()
}

// Destroyed reports whether Destroy was called.
func (c *Carousel) Destroyed() bool { return c.destroyed }

// Inert reports whether construction failed validation.
func (c *Carousel) Inert() bool { return c.inert }

// Options returns the options with defaults applied.
func (c *Carousel) Options() Options { return c.opts }

// Layout returns the current padded layout.
func (c *Carousel) Layout() Layout { return c.ctrl.Layout() }

// Geometry returns the current pixel geometry.
func (c *Carousel) Geometry() Geometry { return c.ctrl.Geometry() }

// RealIndex returns the real index of the committed position.
func (c *Carousel) RealIndex() int { return c.ctrl.RealIndex() }

// ItemsPerView returns the items-per-view of the current width band.
func (c *Carousel) ItemsPerView() int { return c.itemsPerView }

// State returns a snapshot of the engine.
func (c *Carousel) State() State {
	layout := c.ctrl.Layout()
	return State{
		Position:     c.ctrl.Position(),
		RealIndex:    c.ctrl.RealIndex(),
		CloneCount:   layout.CloneCount,
		ItemCount:    layout.ItemCount,
		ItemsPerView: c.itemsPerView,
		ItemWidth:    c.ctrl.Geometry().ItemWidth,
		Transition:   c.ctrl.State(),
	}
}

func (c *Carousel) navigable() bool {
	return !c.inert && !c.destroyed
}

// applyWidth recomputes geometry for width. When the width band changes,
// the layout is rebuilt and the same real index is brought back into view
// without animation; otherwise the current position is re-applied.
func (c *Carousel) applyWidth(width int) {
	c.width = width
	itemsPerView := c.opts.ItemsPerViewFor(width)
	geometry := Geometry{ItemWidth: ItemWidth(width, itemsPerView, c.opts.Gap), Gap: c.opts.Gap}

	if itemsPerView == c.itemsPerView {
		c.ctrl.relayout(c.ctrl.Layout(), geometry)
		c.ctrl.Reapply()
		return
	}

	realIndex := c.ctrl.RealIndex()
	layout := Build(c.ctrl.Layout().ItemCount, itemsPerView)
	c.logger.Debug("items per view changed",
		"from", c.itemsPerView, "to", itemsPerView, "width", width, "real_index", realIndex)
	c.itemsPerView = itemsPerView
	c.ctrl.relayout(layout, geometry)
	c.ctrl.GoTo(realIndex+layout.CloneCount, false)
}
