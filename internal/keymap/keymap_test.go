package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectMinLength int
	}{
		{"global context", "global", 3},
		{"carousel context", "carousel", 5},
		{"autoplay context", "autoplay", 2},
		{"help context", "help", 1},
		{"unknown context returns empty", "unknown", 0},
		{"empty context returns empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if tt.expectMinLength == 0 && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}
			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d", tt.context, len(result), tt.expectMinLength)
			}
			for _, binding := range result {
				if binding.Context != tt.context {
					t.Errorf("binding context = %q, want %q", binding.Context, tt.context)
				}
			}
		})
	}
}

func TestBindingsHaveRequiredFields(t *testing.T) {
	validContexts := map[string]bool{"global": true, "carousel": true, "autoplay": true, "help": true}

	for i, b := range Bindings {
		if b.Action == "" {
			t.Errorf("binding[%d] has empty Action", i)
		}
		if len(b.Keys) == 0 {
			t.Errorf("binding[%d] (%s) has no Keys", i, b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding[%d] (%s) has empty Description", i, b.Action)
		}
		if !validContexts[b.Context] {
			t.Errorf("binding[%d] (%s) has invalid context: %q", i, b.Action, b.Context)
		}
	}
}

func TestJumpIndex(t *testing.T) {
	tests := []struct {
		key  string
		want int
		ok   bool
	}{
		{"1", 0, true},
		{"9", 8, true},
		{"0", 0, false},
		{"10", 0, false},
		{"a", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := JumpIndex(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyBinding_HelpLabels(t *testing.T) {
	tests := []struct {
		action Action
		key    string
		desc   string
	}{
		{ActionNext, "l/right", "Next item"},
		{ActionJump, "1-9", "Jump to item"},
		{ActionTogglePause, "space", "Pause/resume autoplay"},
		{ActionHelp, "?", "Show help"},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			var found bool
			for _, b := range Bindings {
				if b.Action != tt.action {
					continue
				}
				found = true
				h := b.KeyBinding().Help()
				assert.Equal(t, tt.key, h.Key)
				assert.Equal(t, tt.desc, h.Desc)
			}
			assert.True(t, found)
		})
	}
}

func TestKeyBinding_MatchesKeyMsg(t *testing.T) {
	var next Binding
	for _, b := range Bindings {
		if b.Action == ActionNext {
			next = b
		}
	}

	kb := next.KeyBinding()
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRight}, kb))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}}, kb))
	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyLeft}, kb))
}

func TestHelpKeyMap(t *testing.T) {
	h := DefaultHelpKeyMap()

	short := h.ShortHelp()
	assert.Len(t, short, len(h.Short))

	full := h.FullHelp()
	assert.Len(t, full, len(h.Contexts))
	assert.Len(t, full[0], len(ByContext("carousel")))
}
