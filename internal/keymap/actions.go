// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit      Action = "quit"
	ActionHelp      Action = "help"
	ActionCloseHelp Action = "close_help"
	ActionReload    Action = "reload"

	// Carousel navigation
	ActionNext  Action = "next"
	ActionPrev  Action = "prev"
	ActionFirst Action = "first"
	ActionLast  Action = "last"
	ActionJump  Action = "jump" // 1-9, the key names the item

	// Autoplay
	ActionToggleAutoplay Action = "toggle_autoplay"
	ActionTogglePause    Action = "toggle_pause"
)
