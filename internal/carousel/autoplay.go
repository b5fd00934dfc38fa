package carousel

import "time"

// Autoplay advances the carousel periodically. Ticks that land while a
// transition is animating are dropped by the controller, not queued.
type Autoplay struct {
	sched   Scheduler
	advance func()

	interval time.Duration
	timer    Timer
	gen      uint64
	running  bool
	paused   bool
}

// NewAutoplay returns a stopped scheduler calling advance on every tick.
func NewAutoplay(sched Scheduler, advance func()) *Autoplay {
	return &Autoplay{sched: sched, advance: advance}
}

// Start begins ticking every interval. Starting a running scheduler is a
// no-op.
func (a *Autoplay) Start(interval time.Duration) {
	if a.running {
		return
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	a.interval = interval
	a.running = true
	a.paused = false
	a.arm()
}

// Pause cancels the pending tick.
func (a *Autoplay) Pause() {
	if !a.running || a.paused {
		return
	}
	a.paused = true
	a.cancel()
}

// Resume re-arms a paused scheduler with the full interval.
func (a *Autoplay) Resume() {
	if !a.running || !a.paused {
		return
	}
	a.paused = false
	a.arm()
}

// Stop releases the timer. It is safe to call at any time.
func (a *Autoplay) Stop() {
	a.cancel()
	a.running = false
	a.paused = false
}

// Running reports whether Start was called without a later Stop.
func (a *Autoplay) Running() bool { return a.running }

// Paused reports whether a running scheduler is paused.
func (a *Autoplay) Paused() bool { return a.running && a.paused }

// Interval returns the tick interval.
func (a *Autoplay) Interval() time.Duration { return a.interval }

func (a *Autoplay) arm() {
	a.cancel()
	gen := a.gen
	a.timer = a.sched.AfterFunc(a.interval, func() { a.tick(gen) })
}

func (a *Autoplay) cancel() {
	a.gen++
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

func (a *Autoplay) tick(gen uint64) {
	if gen != a.gen || !a.running || a.paused {
		return
	}
	a.timer = nil
	a.advance()
	a.arm()
}
