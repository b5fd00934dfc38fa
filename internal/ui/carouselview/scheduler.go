package carouselview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/carousel"
)

// scheduler implements carousel.Scheduler on top of tea.Tick. Each
// callback gets an id; the tick message carries it back into Update where
// the callback runs unless it was stopped meanwhile.
type scheduler struct {
	tick    tickFunc
	session uint64
	nextID  uint64
	pending map[uint64]func()
	outbox  []tea.Cmd
}

var _ carousel.Scheduler = (*scheduler)(nil)

// tickFunc has the signature of tea.Tick.
type tickFunc func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

func newScheduler(session uint64, tick tickFunc) *scheduler {
	return &scheduler{tick: tick, session: session, pending: make(map[uint64]func())}
}

type timer struct {
	s  *scheduler
	id uint64
}

func (t timer) Stop() bool {
	_, ok := t.s.pending[t.id]
	delete(t.s.pending, t.id)
	return ok
}

func (s *scheduler) AfterFunc(d time.Duration, f func()) carousel.Timer {
	s.nextID++
	id := s.nextID
	s.pending[id] = f

	session := s.session
	s.outbox = append(s.outbox, s.tick(d, func(time.Time) tea.Msg {
		return timerMsg{Session: session, ID: id}
	}))
	return timer{s: s, id: id}
}

// fire runs callback id if it is still pending.
func (s *scheduler) fire(id uint64) bool {
	f, ok := s.pending[id]
	if !ok {
		return false
	}
	delete(s.pending, id)
	f()
	return true
}

// drain returns the tick commands queued since the last call.
func (s *scheduler) drain() []tea.Cmd {
	out := s.outbox
	s.outbox = nil
	return out
}

// stopAll forgets every pending callback.
func (s *scheduler) stopAll() {
	clear(s.pending)
	s.outbox = nil
}
