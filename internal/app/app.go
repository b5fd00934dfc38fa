// Package app is the root bubbletea model of reel: one carousel session
// over the current deck, the header and notification lines, the help
// overlay, live reload and saving the last settled item.
package app

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/reel/internal/carousel"
	"github.com/llehouerou/reel/internal/deck"
	"github.com/llehouerou/reel/internal/errmsg"
	"github.com/llehouerou/reel/internal/keymap"
	"github.com/llehouerou/reel/internal/logging"
	"github.com/llehouerou/reel/internal/state"
	"github.com/llehouerou/reel/internal/ui"
	"github.com/llehouerou/reel/internal/ui/carouselview"
	"github.com/llehouerou/reel/internal/ui/layout"
)

// Options configures a new application model.
type Options struct {
	Deck     *deck.Deck
	Carousel carousel.Options
	State    state.Interface
	Watcher  *deck.Watcher // nil disables live reload
	Logger   *slog.Logger
	Resume   bool // start at the last settled item of the deck
}

// Model is the root application model.
type Model struct {
	ui.Base

	deck     *deck.Deck
	opts     carousel.Options
	view     *carouselview.Model // nil until the terminal size is known
	start    int                 // real index the next session starts on
	stateMgr state.Interface
	watcher  *deck.Watcher
	logger   *slog.Logger

	keys     *keymap.Resolver
	helpKeys *keymap.Resolver
	help     help.Model

	showHelp      bool
	pausedForHelp bool

	Notifications      []Notification
	nextNotificationID int64
	ErrorMsg           string
}

// New creates the application model. The carousel itself is created on
// the first WindowSizeMsg.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	stateMgr := opts.State
	if stateMgr == nil {
		stateMgr = state.NewMock()
	}

	m := Model{
		deck:     opts.Deck,
		opts:     opts.Carousel,
		start:    opts.Carousel.StartIndex,
		stateMgr: stateMgr,
		watcher:  opts.Watcher,
		logger:   logger,
		keys:     keymap.NewContextResolver("global", "carousel", "autoplay"),
		helpKeys: keymap.NewContextResolver("help"),
		help:     help.New(),
	}
	m.opts.Logger = logger.With("component", "carousel")

	if opts.Resume {
		m.restorePosition()
	}
	return m
}

// restorePosition starts on the item saved for this deck, if any.
func (m *Model) restorePosition() {
	if m.deck.Path == "" {
		return
	}
	pos, err := m.stateMgr.GetPosition(m.deck.Path)
	if err != nil {
		m.logger.Warn("load saved position", "deck", m.deck.Path, "error", err)
		m.ErrorMsg = errmsg.Format(errmsg.OpStateLoad, err)
		return
	}
	if pos == nil || pos.RealIndex < 0 || pos.RealIndex >= m.deck.Len() {
		return
	}
	m.start = pos.RealIndex
	msg := fmt.Sprintf("Resumed at item %d of %d", pos.RealIndex+1, m.deck.Len())
	if !pos.UpdatedAt.IsZero() {
		msg += ", last viewed " + humanize.Time(pos.UpdatedAt)
	}
	m.addNotification(msg)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{watchDeckCmd(m.watcher)}
	for _, n := range m.Notifications {
		cmds = append(cmds, NotificationClearCmd(n.ID))
	}
	return tea.Batch(cmds...)
}

// Deck returns the deck of the current session.
func (m Model) Deck() *deck.Deck { return m.deck }

// Carousel returns the carousel session, nil before the first WindowSizeMsg.
func (m Model) Carousel() *carouselview.Model { return m.view }

// HelpVisible reports whether the help overlay is open.
func (m Model) HelpVisible() bool { return m.showHelp }

// carouselHeight is the height left to the carousel below the header and
// above the notification line.
func (m Model) carouselHeight() int {
	return layout.ContentHeight(m.Height(), layout.ContentOpts{
		HeaderHeight:       ui.HeaderHeight,
		NotificationHeight: ui.NotificationHeight,
	})
}

// startSession creates a carousel over the current deck, starting on
// real index start.
func (m *Model) startSession(start int) tea.Cmd {
	opts := m.opts
	opts.StartIndex = start
	if start >= m.deck.Len() {
		opts.StartIndex = 0
	}

	view, err := carouselview.New(m.deck.Items, m.Width(), m.carouselHeight(), opts)
	m.view = view
	if err != nil {
		m.logger.Error("carousel setup", "error", err)
		m.ErrorMsg = errmsg.Format(errmsg.OpCarouselSetup, err)
	}
	m.logger.Debug("carousel session started",
		"session", view.Session(), "items", m.deck.Len(), "start", opts.StartIndex)
	return view.Init()
}

// endSession destroys the current carousel session.
func (m *Model) endSession() {
	if m.view == nil {
		return
	}
	m.start = m.view.RealIndex()
	m.view.Destroy()
	m.view = nil
	m.showHelp = false
	m.pausedForHelp = false
}

// quit ends the session and stops watching the deck.
func (m *Model) quit() tea.Cmd {
	m.endSession()
	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			m.logger.Warn("close deck watcher", "error", err)
		}
	}
	return tea.Quit
}
