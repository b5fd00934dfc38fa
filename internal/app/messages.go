package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/deck"
)

// DeckChangedMsg is sent when the deck file changed on disk.
type DeckChangedMsg struct{}

// DeckWatchErrorMsg is sent when the deck watcher reports an error.
type DeckWatchErrorMsg struct {
	Err error
}

// DeckLoadedMsg carries the result of reloading the deck file.
type DeckLoadedMsg struct {
	Deck *deck.Deck
	Err  error
}

// Notification represents a temporary notification message.
type Notification struct {
	ID      int64
	Message string
}

// NotificationClearMsg is sent to clear a specific notification after a delay.
type NotificationClearMsg struct {
	ID int64
}

// NotificationDuration is how long notifications are displayed.
const NotificationDuration = 3 * time.Second

// NotificationClearCmd returns a command that clears the notification after a delay.
func NotificationClearCmd(id int64) tea.Cmd {
	return tea.Tick(NotificationDuration, func(time.Time) tea.Msg {
		return NotificationClearMsg{ID: id}
	})
}

// addNotification queues a notification and returns the command clearing it.
func (m *Model) addNotification(message string) tea.Cmd {
	m.nextNotificationID++
	id := m.nextNotificationID
	m.Notifications = append(m.Notifications, Notification{ID: id, Message: message})
	return NotificationClearCmd(id)
}

func (m *Model) clearNotification(id int64) {
	for i, n := range m.Notifications {
		if n.ID == id {
			m.Notifications = append(m.Notifications[:i:i], m.Notifications[i+1:]...)
			return
		}
	}
}
