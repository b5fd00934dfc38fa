package keymap

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
)

// Binding describes a single key binding for dispatch and help.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "carousel", "autoplay", "help"
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionReload, []string{"r"}, "Reload deck", "global"},

	// Carousel
	{ActionNext, []string{"l", "right"}, "Next item", "carousel"},
	{ActionPrev, []string{"h", "left"}, "Previous item", "carousel"},
	{ActionFirst, []string{"g", "home"}, "First item", "carousel"},
	{ActionLast, []string{"G", "end"}, "Last item", "carousel"},
	{ActionJump, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, "Jump to item", "carousel"},

	// Autoplay
	{ActionToggleAutoplay, []string{"a"}, "Start/stop autoplay", "autoplay"},
	{ActionTogglePause, []string{" "}, "Pause/resume autoplay", "autoplay"},

	// Help overlay
	{ActionCloseHelp, []string{"esc", "?", "q"}, "Close help", "help"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// JumpIndex returns the zero-based item index named by a digit key.
func JumpIndex(k string) (int, bool) {
	n, err := strconv.Atoi(k)
	if err != nil || n < 1 || n > 9 {
		return 0, false
	}
	return n - 1, true
}

// displayKey returns the label shown in help for a key string.
func displayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// KeyBinding converts a binding for use with bubbles help.
func (b Binding) KeyBinding() key.Binding {
	label := displayKey(b.Keys[0])
	if b.Action == ActionJump {
		label = "1-9"
	} else if len(b.Keys) > 1 {
		label += "/" + displayKey(b.Keys[1])
	}
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(label, b.Description),
	)
}

// HelpKeyMap exposes the bindings to bubbles/help. The short view lists
// the everyday keys, the full view every context in order.
type HelpKeyMap struct {
	Short    []Action
	Contexts []string
}

// DefaultHelpKeyMap returns the help layout used by the footer and the
// help overlay.
func DefaultHelpKeyMap() HelpKeyMap {
	return HelpKeyMap{
		Short:    []Action{ActionPrev, ActionNext, ActionTogglePause, ActionHelp, ActionQuit},
		Contexts: []string{"carousel", "autoplay", "global"},
	}
}

func (h HelpKeyMap) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(h.Short))
	for _, a := range h.Short {
		for _, b := range Bindings {
			if b.Action == a {
				out = append(out, b.KeyBinding())
				break
			}
		}
	}
	return out
}

func (h HelpKeyMap) FullHelp() [][]key.Binding {
	groups := make([][]key.Binding, 0, len(h.Contexts))
	for _, ctx := range h.Contexts {
		bindings := ByContext(ctx)
		group := make([]key.Binding, 0, len(bindings))
		for _, b := range bindings {
			group = append(group, b.KeyBinding())
		}
		groups = append(groups, group)
	}
	return groups
}
