package carousel

import (
	"log/slog"
	"time"
)

// Defaults used when an Options field is left at its zero value.
const (
	DefaultItemsPerView       = 3
	DefaultGap                = 20
	DefaultInterval           = 5000 * time.Millisecond
	DefaultTransitionDuration = 500 * time.Millisecond
	DefaultResizeDebounce     = 100 * time.Millisecond
	DefaultNarrowBreakpoint   = 640
	DefaultMediumBreakpoint   = 1024
)

// Breakpoints split container widths into three bands. Widths below Narrow
// use the narrow items-per-view, widths below Medium the medium one, and
// everything else the wide one.
type Breakpoints struct {
	Narrow int
	Medium int
}

// Options configures a carousel. Zero values select the defaults above,
// except Gap where zero means no gap. DefaultOptions returns the documented
// defaults including the gap.
type Options struct {
	ItemsPerView       int // wide band
	ItemsPerViewMedium int // 0 inherits ItemsPerView
	ItemsPerViewNarrow int // 0 inherits the medium value
	Gap                int

	Autoplay           bool
	Interval           time.Duration
	TransitionDuration time.Duration

	Breakpoints    Breakpoints
	ResizeDebounce time.Duration

	// StartIndex is the real index shown after construction.
	StartIndex int

	Logger *slog.Logger
}

// DefaultOptions returns three items per view, a 20 pixel gap, autoplay
// off every 5s and 500ms transitions.
func DefaultOptions() Options {
	return Options{
		ItemsPerView:       DefaultItemsPerView,
		Gap:                DefaultGap,
		Interval:           DefaultInterval,
		TransitionDuration: DefaultTransitionDuration,
	}.WithDefaults()
}

// Validate reports the first option that cannot be used.
func (o Options) Validate() error {
	switch {
	case o.ItemsPerView < 0:
		return &ConfigurationError{Field: "items per view", Value: o.ItemsPerView, Reason: "must be at least 1"}
	case o.ItemsPerViewMedium < 0:
		return &ConfigurationError{Field: "medium items per view", Value: o.ItemsPerViewMedium, Reason: "must be at least 1"}
	case o.ItemsPerViewNarrow < 0:
		return &ConfigurationError{Field: "narrow items per view", Value: o.ItemsPerViewNarrow, Reason: "must be at least 1"}
	case o.Gap < 0:
		return &ConfigurationError{Field: "gap", Value: o.Gap, Reason: "must not be negative"}
	case o.StartIndex < 0:
		return &ConfigurationError{Field: "start index", Value: o.StartIndex, Reason: "must not be negative"}
	}
	return nil
}

// WithDefaults returns a copy with every zero field replaced by its default.
func (o Options) WithDefaults() Options {
	if o.ItemsPerView <= 0 {
		o.ItemsPerView = DefaultItemsPerView
	}
	if o.Gap < 0 {
		o.Gap = 0
	}
	if o.Interval <= 0 {
		o.Interval = DefaultInterval
	}
	if o.TransitionDuration < 0 {
		o.TransitionDuration = 0
	}
	if o.TransitionDuration == 0 {
		o.TransitionDuration = DefaultTransitionDuration
	}
	if o.ResizeDebounce <= 0 {
		o.ResizeDebounce = DefaultResizeDebounce
	}
	if o.Breakpoints.Narrow <= 0 {
		o.Breakpoints.Narrow = DefaultNarrowBreakpoint
	}
	if o.Breakpoints.Medium <= 0 {
		o.Breakpoints.Medium = DefaultMediumBreakpoint
	}
	if o.Breakpoints.Medium < o.Breakpoints.Narrow {
		o.Breakpoints.Medium = o.Breakpoints.Narrow
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// ItemsPerViewFor returns the items-per-view of the band containing width.
func (o Options) ItemsPerViewFor(width int) int {
	wide := max(o.ItemsPerView, 1)
	medium := o.ItemsPerViewMedium
	if medium <= 0 {
		medium = wide
	}
	narrow := o.ItemsPerViewNarrow
	if narrow <= 0 {
		narrow = medium
	}

	switch {
	case width < o.Breakpoints.Narrow:
		return narrow
	case width < o.Breakpoints.Medium:
		return medium
	default:
		return wide
	}
}
