package carousel

import (
	"sort"
	"testing"
	"time"
)

// trackCall is one SetOffset observed by fakeTrack.
type trackCall struct {
	Offset   int
	Animated bool
	Epoch    uint64
}

type fakeTrack struct {
	transition bool
	calls      []trackCall
	flushes    int
}

func (t *fakeTrack) SetTransition(enabled bool) { t.transition = enabled }

func (t *fakeTrack) SetOffset(offset int, epoch uint64) {
	t.calls = append(t.calls, trackCall{Offset: offset, Animated: t.transition, Epoch: epoch})
}

func (t *fakeTrack) Flush() { t.flushes++ }

func (t *fakeTrack) last() trackCall {
	if len(t.calls) == 0 {
		return trackCall{}
	}
	return t.calls[len(t.calls)-1]
}

// lastAnimated returns the most recent animated call.
func (t *fakeTrack) lastAnimated() (trackCall, bool) {
	for i := len(t.calls) - 1; i >= 0; i-- {
		if t.calls[i].Animated {
			return t.calls[i], true
		}
	}
	return trackCall{}, false
}

func (t *fakeTrack) reset() { t.calls = nil }

type fakeTimer struct {
	at      time.Duration
	seq     int
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// fakeScheduler is a manual clock. Callbacks run synchronously inside
// Advance, in due-time order.
type fakeScheduler struct {
	now    time.Duration
	seq    int
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.seq++
	t := &fakeTimer{at: s.now + d, seq: s.seq, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		due := s.due(target)
		if due == nil {
			break
		}
		s.now = due.at
		due.fired = true
		due.f()
	}
	s.now = target
}

func (s *fakeScheduler) due(until time.Duration) *fakeTimer {
	var pending []*fakeTimer
	for _, t := range s.timers {
		if !t.stopped && !t.fired && t.at <= until {
			pending = append(pending, t)
		}
	}
	if len(pending) == 0 {
		return nil
	}
	sort.Slice(pending, func(i, j int) bool {
		if pending[i].at != pending[j].at {
			return pending[i].at < pending[j].at
		}
		return pending[i].seq < pending[j].seq
	})
	return pending[0]
}

func (s *fakeScheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

type harness struct {
	c       *Carousel
	track   *fakeTrack
	sched   *fakeScheduler
	settled []int
}

// testBreakpoints puts widths below 500 in the narrow band, below 800 in
// the medium band and the rest in the wide band.
var testBreakpoints = Breakpoints{Narrow: 500, Medium: 800}

func newHarness(t *testing.T, items, width int, opts Options) *harness {
	t.Helper()
	h := &harness{track: &fakeTrack{}, sched: &fakeScheduler{}}
	if opts.Breakpoints == (Breakpoints{}) {
		opts.Breakpoints = testBreakpoints
	}
	if opts.Gap == 0 {
		opts.Gap = DefaultGap
	}
	c, err := New(items, width, h.track, h.sched, SettleFunc(func(i int) {
		h.settled = append(h.settled, i)
	}), opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	h.c = c
	return h
}

// end delivers the transition end of the latest animated move.
func (h *harness) end() {
	if call, ok := h.track.lastAnimated(); ok {
		h.c.TransitionEnd(call.Epoch)
	}
}

func (h *harness) next() {
	h.c.Next()
	h.end()
}

func (h *harness) prev() {
	h.c.Prev()
	h.end()
}
