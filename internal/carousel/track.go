package carousel

import "time"

// Track is the visual strip holding the padded sequence. The engine only
// moves it; building and styling the items is the caller's job.
type Track interface {
	// SetTransition enables or disables animated offset changes.
	SetTransition(enabled bool)
	// SetOffset translates the track. With transitions enabled the move is
	// animated and the track must report its end exactly once through
	// Carousel.TransitionEnd with the same epoch.
	SetOffset(offset int, epoch uint64)
	// Flush commits the current offset so a transition enabled afterwards
	// starts from it instead of animating the previous change.
	Flush()
}

// Timer is a pending scheduled callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the callback was still
	// pending.
	Stop() bool
}

// Scheduler runs callbacks later on the same logical thread as every other
// engine call.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SettleSink receives the real index once a navigation is fully resolved.
type SettleSink interface {
	OnSettled(realIndex int)
}

// SettleFunc adapts a function to SettleSink.
type SettleFunc func(realIndex int)

// OnSettled calls f(realIndex).
func (f SettleFunc) OnSettled(realIndex int) {
	f(realIndex)
}
