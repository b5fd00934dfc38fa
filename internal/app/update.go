package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/errmsg"
	"github.com/llehouerou/reel/internal/keymap"
	"github.com/llehouerou/reel/internal/state"
	"github.com/llehouerou/reel/internal/ui/carouselview"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case carouselview.SettledMsg:
		m.handleSettled(msg)
		return m, nil

	case DeckChangedMsg:
		m.logger.Debug("deck changed on disk", "deck", m.deck.Path)
		return m, tea.Batch(loadDeckCmd(m.deck.Path), watchDeckCmd(m.watcher))

	case DeckWatchErrorMsg:
		m.logger.Warn("deck watcher", "deck", m.deck.Path, "error", msg.Err)
		m.ErrorMsg = errmsg.Format(errmsg.OpDeckWatch, msg.Err)
		return m, watchDeckCmd(m.watcher)

	case DeckLoadedMsg:
		return m.handleDeckLoaded(msg)

	case NotificationClearMsg:
		m.clearNotification(msg.ID)
		return m, nil
	}

	// Frame and timer ticks of the carousel session.
	if m.view != nil {
		return m, m.view.Update(msg)
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.SetSize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	if m.view == nil {
		return m, m.startSession(m.start)
	}
	return m, m.view.Resize(msg.Width, m.carouselHeight())
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// ctrl+c quits from anywhere
	if msg.Type == tea.KeyCtrlC {
		return m, m.quit()
	}

	// Any key dismisses the error line
	if m.ErrorMsg != "" {
		m.ErrorMsg = ""
		return m, nil
	}

	if m.showHelp {
		if m.helpKeys.Resolve(key) == keymap.ActionCloseHelp {
			return m, m.closeHelp()
		}
		return m, nil
	}

	action := m.keys.Resolve(key)
	if action == keymap.ActionQuit {
		return m, m.quit()
	}
	if action == keymap.ActionReload {
		return m, m.reload()
	}
	if m.view == nil {
		return m, nil
	}

	switch action {
	case keymap.ActionHelp:
		m.openHelp()
		return m, nil
	case keymap.ActionNext:
		return m, m.view.Next()
	case keymap.ActionPrev:
		return m, m.view.Prev()
	case keymap.ActionFirst:
		return m, m.view.First()
	case keymap.ActionLast:
		return m, m.view.Last()
	case keymap.ActionJump:
		if idx, ok := keymap.JumpIndex(key); ok {
			return m, m.view.GoToIndex(idx)
		}
	case keymap.ActionToggleAutoplay:
		return m, m.view.ToggleAutoplay()
	case keymap.ActionTogglePause:
		return m, m.view.TogglePause()
	}
	return m, nil
}

// openHelp shows the help overlay. Autoplay holds while it is open.
func (m *Model) openHelp() {
	m.showHelp = true
	m.pausedForHelp = m.view.Pause()
}

func (m *Model) closeHelp() tea.Cmd {
	m.showHelp = false
	if !m.pausedForHelp {
		return nil
	}
	m.pausedForHelp = false
	return m.view.Resume()
}

// handleSettled records where the current session came to rest.
func (m *Model) handleSettled(msg carouselview.SettledMsg) {
	if m.view == nil || msg.Session != m.view.Session() {
		return
	}
	m.start = msg.RealIndex
	if m.deck.Path == "" || msg.RealIndex < 0 || msg.RealIndex >= m.deck.Len() {
		return
	}
	m.stateMgr.SavePosition(state.Position{
		DeckPath:  m.deck.Path,
		RealIndex: msg.RealIndex,
		ItemCount: m.deck.Len(),
		Title:     m.deck.Items[msg.RealIndex].Title,
	})
}

// reload reads the deck file again. Decks without a file have nothing to
// reload.
func (m *Model) reload() tea.Cmd {
	if m.deck.Path == "" {
		return m.addNotification("Nothing to reload")
	}
	return loadDeckCmd(m.deck.Path)
}

// handleDeckLoaded replaces the session with one over the reloaded deck.
// The current real index is kept when the new deck still has it. A deck
// that fails to load leaves the current session running.
func (m Model) handleDeckLoaded(msg DeckLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("reload deck", "deck", m.deck.Path, "error", msg.Err)
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpDeckReload, m.deck.Path, msg.Err)
		return m, nil
	}

	start := m.start
	if m.view != nil {
		start = m.view.RealIndex()
	}
	if start >= msg.Deck.Len() {
		start = 0
	}

	m.endSession()
	m.deck = msg.Deck
	m.start = start
	m.logger.Info("deck reloaded", "deck", m.deck.Path, "items", m.deck.Len())

	cmds := []tea.Cmd{m.addNotification(fmt.Sprintf("Reloaded %d items", m.deck.Len()))}
	if m.Width() > 0 {
		cmds = append(cmds, m.startSession(start))
	}
	return m, tea.Batch(cmds...)
}
