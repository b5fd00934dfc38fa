package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/deck"
)

// watchDeckCmd waits for the next change or error from the deck watcher.
// It must be issued again after each message.
func watchDeckCmd(w *deck.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case _, ok := <-w.Changes():
			if !ok {
				return nil
			}
			return DeckChangedMsg{}
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			return DeckWatchErrorMsg{Err: err}
		}
	}
}

// loadDeckCmd reads the deck file in the background.
func loadDeckCmd(path string) tea.Cmd {
	return func() tea.Msg {
		d, err := deck.Load(path)
		return DeckLoadedMsg{Deck: d, Err: err}
	}
}
