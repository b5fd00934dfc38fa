// Package carouselview draws a carousel.Carousel as a row of cards in the
// terminal. It is the engine's boundary: the card strip is its Track,
// tea.Tick drives its Scheduler, frame ticks animate offset changes and
// report their end, and settled indices come out as SettledMsg.
package carouselview

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/carousel"
	"github.com/llehouerou/reel/internal/deck"
	"github.com/llehouerou/reel/internal/ui"
)

// sessions numbers models so ticks from a replaced model are ignored.
var sessions atomic.Uint64

// Model is one carousel session over an immutable item list.
type Model struct {
	ui.Base

	items   []deck.Item
	session uint64
	track   *track
	sched   *scheduler
	car     *carousel.Carousel
	err     error

	settled []int
	cards   map[cardKey][]string
	tick    tickFunc
}

// New creates a session over items in a width x height area. A non-nil
// error is a *carousel.ConfigurationError: the model still renders, but
// navigation does nothing.
func New(items []deck.Item, width, height int, opts carousel.Options) (*Model, error) {
	return newModel(items, width, height, opts, tea.Tick)
}

func newModel(items []deck.Item, width, height int, opts carousel.Options, tick tickFunc) (*Model, error) {
	m := &Model{
		items:   items,
		session: sessions.Add(1),
		cards:   make(map[cardKey][]string),
		tick:    tick,
	}
	m.SetSize(width, height)
	m.track = newTrack(opts.WithDefaults().TransitionDuration)
	m.sched = newScheduler(m.session, m.tick)

	sink := carousel.SettleFunc(func(realIndex int) {
		m.settled = append(m.settled, realIndex)
	})
	m.car, m.err = carousel.New(len(items), width, m.track, m.sched, sink, opts)
	return m, m.err
}

// Init returns the commands queued during construction (the first
// autoplay tick).
func (m *Model) Init() tea.Cmd {
	return m.flush()
}

// Update handles the model's own frame and timer messages.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case frameMsg:
		if msg.Session != m.session {
			return nil
		}
		epoch, done, ok := m.track.advance(msg.Anim)
		if !ok {
			return nil
		}
		if done {
			m.car.TransitionEnd(epoch)
			return m.flush()
		}
		return tea.Batch(m.frameCmd(msg.Anim), m.flush())

	case timerMsg:
		if msg.Session != m.session {
			return nil
		}
		m.sched.fire(msg.ID)
		return m.flush()
	}
	return nil
}

// Next advances one item.
func (m *Model) Next() tea.Cmd {
	m.car.Next()
	return m.flush()
}

// Prev goes back one item.
func (m *Model) Prev() tea.Cmd {
	m.car.Prev()
	return m.flush()
}

// GoToIndex animates to real index k. Out-of-range indices are ignored.
func (m *Model) GoToIndex(k int) tea.Cmd {
	m.car.GoToIndex(k)
	return m.flush()
}

// First goes to the first item.
func (m *Model) First() tea.Cmd {
	return m.GoToIndex(0)
}

// Last goes to the last item.
func (m *Model) Last() tea.Cmd {
	return m.GoToIndex(len(m.items) - 1)
}

// ToggleAutoplay starts autoplay when stopped and stops it otherwise.
func (m *Model) ToggleAutoplay() tea.Cmd {
	if m.car.Autoplay().Running() {
		m.car.StopAutoplay()
	} else {
		m.car.StartAutoplay()
	}
	return m.flush()
}

// TogglePause pauses or resumes a running autoplay.
func (m *Model) TogglePause() tea.Cmd {
	ap := m.car.Autoplay()
	if !ap.Running() {
		return nil
	}
	if ap.Paused() {
		m.car.Resume()
	} else {
		m.car.Pause()
	}
	return m.flush()
}

// Pause pauses autoplay. It reports whether autoplay was ticking.
func (m *Model) Pause() bool {
	ap := m.car.Autoplay()
	if !ap.Running() || ap.Paused() {
		return false
	}
	m.car.Pause()
	return true
}

// Resume resumes a paused autoplay with a full interval.
func (m *Model) Resume() tea.Cmd {
	m.car.Resume()
	return m.flush()
}

// Resize records a new area. The first real width is applied at once,
// later ones through the engine's debounce.
func (m *Model) Resize(width, height int) tea.Cmd {
	prev := m.Width()
	m.SetSize(width, height)
	clear(m.cards)
	if prev <= 0 {
		m.car.ResizeNow(width)
	} else if width != prev {
		m.car.Resize(width)
	}
	return m.flush()
}

// Destroy stops every timer of the session.
func (m *Model) Destroy() {
	m.car.Destroy()
	m.sched.stopAll()
	m.settled = nil
}

// Session identifies this model in SettledMsg.
func (m *Model) Session() uint64 { return m.session }

// Carousel returns the engine.
func (m *Model) Carousel() *carousel.Carousel { return m.car }

// Err returns the configuration error from construction, if any.
func (m *Model) Err() error { return m.err }

// Items returns the item list.
func (m *Model) Items() []deck.Item { return m.items }

// Len returns the number of items.
func (m *Model) Len() int { return len(m.items) }

// RealIndex returns the real index at rest.
func (m *Model) RealIndex() int { return m.car.RealIndex() }

// Animating reports whether the strip is moving.
func (m *Model) Animating() bool { return m.track.Animating() }

// flush turns what the engine queued during the last call into commands:
// the first frame of a new animation, timer ticks and the settle
// notification. The engine settles at most once per call.
func (m *Model) flush() tea.Cmd {
	var cmds []tea.Cmd
	if anim, ok := m.track.takeBegun(); ok {
		cmds = append(cmds, m.frameCmd(anim))
	}
	cmds = append(cmds, m.sched.drain()...)

	for _, idx := range m.settled {
		msg := SettledMsg{Session: m.session, RealIndex: idx}
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	m.settled = nil
	return tea.Batch(cmds...)
}

func (m *Model) frameCmd(anim uint64) tea.Cmd {
	session := m.session
	return m.tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{Session: session, Anim: anim}
	})
}
