package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/reel/internal/carousel"
	"github.com/llehouerou/reel/internal/deck"
	"github.com/llehouerou/reel/internal/state"
	"github.com/llehouerou/reel/internal/ui/carouselview"
	"github.com/llehouerou/reel/internal/ui/testutil"
)

const testDeckPath = "/decks/intro.yaml"

func testDeck(titles ...string) *deck.Deck {
	d := deck.FromStrings(titles...)
	d.Title = "Intro"
	d.Path = testDeckPath
	return d
}

func testCarouselOptions() carousel.Options {
	return carousel.Options{ItemsPerView: 1, TransitionDuration: 100 * time.Millisecond}
}

func newTestModel(t *testing.T, opts Options) (Model, *state.Mock) {
	t.Helper()
	mock := state.NewMock()
	if opts.Deck == nil {
		opts.Deck = testDeck("A", "B", "C", "D")
	}
	if opts.Carousel.ItemsPerView == 0 {
		opts.Carousel = testCarouselOptions()
	}
	if opts.State == nil {
		opts.State = mock
	}
	return New(opts), mock
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	result, ok := next.(Model)
	require.True(t, ok, "Update should return Model")
	return result, cmd
}

func sized(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 14})
	require.NotNil(t, m.Carousel())
	return m
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = update(t, m, testutil.KeyMsg(k))
	}
	return m, cmd
}

func TestUpdate_WindowSizeStartsSession(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	assert.Nil(t, m.Carousel(), "no session before the size is known")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 14})

	require.NotNil(t, m.Carousel())
	assert.Equal(t, 60, m.Carousel().Width())
	assert.Equal(t, 12, m.Carousel().Height())
	assert.Equal(t, 60, m.Carousel().Carousel().Geometry().ItemWidth)

	session := m.Carousel().Session()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})
	assert.Equal(t, session, m.Carousel().Session(), "resizing keeps the session")
	assert.Equal(t, 18, m.Carousel().Height())
}

func TestUpdate_KeysBeforeSizeAreIgnored(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, cmd := press(t, m, "l")

	assert.Nil(t, cmd)
	assert.Nil(t, m.Carousel())
}

func TestUpdate_NavigationKeys(t *testing.T) {
	for _, k := range []string{"l", "right", "h", "left", "G", "end", "3"} {
		t.Run(k, func(t *testing.T) {
			m, _ := newTestModel(t, Options{})
			m = sized(t, m)

			m, cmd := press(t, m, k)

			assert.NotNil(t, cmd)
			assert.True(t, m.Carousel().Animating())
		})
	}
}

func TestUpdate_JumpPastDeckIsIgnored(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = sized(t, m)

	m, _ = press(t, m, "9")

	assert.False(t, m.Carousel().Animating())
	assert.Equal(t, 0, m.Carousel().RealIndex())
}

func TestUpdate_SettledSavesPosition(t *testing.T) {
	m, mock := newTestModel(t, Options{})
	m = sized(t, m)

	m, _ = update(t, m, carouselview.SettledMsg{Session: m.Carousel().Session(), RealIndex: 2})

	assert.Equal(t, 1, mock.Saves())
	pos, err := mock.GetPosition(testDeckPath)
	require.NoError(t, err)
	require.NotNil(t, pos)
	assert.Equal(t, 2, pos.RealIndex)
	assert.Equal(t, 4, pos.ItemCount)
	assert.Equal(t, "C", pos.Title)
}

func TestUpdate_SettledFromOldSessionIsIgnored(t *testing.T) {
	m, mock := newTestModel(t, Options{})
	m = sized(t, m)

	m, _ = update(t, m, carouselview.SettledMsg{Session: m.Carousel().Session() + 100, RealIndex: 2})

	assert.Equal(t, 0, mock.Saves())
}

func TestUpdate_SettledWithoutDeckFileIsNotSaved(t *testing.T) {
	m, mock := newTestModel(t, Options{Deck: deck.FromStrings("a", "b")})
	m = sized(t, m)

	m, _ = update(t, m, carouselview.SettledMsg{Session: m.Carousel().Session(), RealIndex: 1})

	assert.Equal(t, 0, mock.Saves())
}

func TestNew_Resume(t *testing.T) {
	mock := state.NewMock()
	mock.SetPosition(state.Position{
		DeckPath:  testDeckPath,
		RealIndex: 2,
		ItemCount: 4,
		UpdatedAt: time.Now().Add(-3 * time.Minute),
	})

	m, _ := newTestModel(t, Options{State: mock, Resume: true})

	require.Len(t, m.Notifications, 1)
	assert.Contains(t, m.Notifications[0].Message, "Resumed at item 3 of 4")
	assert.Contains(t, m.Notifications[0].Message, "3 minutes ago")

	m = sized(t, m)
	assert.Equal(t, 2, m.Carousel().RealIndex())
}

func TestNew_ResumeIgnoresStalePositions(t *testing.T) {
	mock := state.NewMock()
	mock.SetPosition(state.Position{DeckPath: testDeckPath, RealIndex: 7, ItemCount: 8})

	m, _ := newTestModel(t, Options{State: mock, Resume: true})
	m = sized(t, m)

	assert.Empty(t, m.Notifications)
	assert.Equal(t, 0, m.Carousel().RealIndex())
}

func TestNew_ResumeDisabled(t *testing.T) {
	mock := state.NewMock()
	mock.SetPosition(state.Position{DeckPath: testDeckPath, RealIndex: 2, ItemCount: 4})

	m, _ := newTestModel(t, Options{State: mock})
	m = sized(t, m)

	assert.Equal(t, 0, m.Carousel().RealIndex())
}

func TestNew_ResumeError(t *testing.T) {
	mock := state.NewMock()
	mock.SetGetError(errors.New("database is locked"))

	m, _ := newTestModel(t, Options{State: mock, Resume: true})

	assert.Equal(t, "Failed to load saved position: database is locked", m.ErrorMsg)
}

func TestNew_InvalidCarouselOptions(t *testing.T) {
	opts := testCarouselOptions()
	opts.Gap = -1
	m, _ := newTestModel(t, Options{Carousel: opts})

	m = sized(t, m)

	assert.Contains(t, m.ErrorMsg, "Failed to set up carousel")
	assert.True(t, m.Carousel().Carousel().Inert())
}

func TestUpdate_HelpPausesAutoplay(t *testing.T) {
	opts := testCarouselOptions()
	opts.Autoplay = true
	m, _ := newTestModel(t, Options{Carousel: opts})
	m = sized(t, m)
	ap := m.Carousel().Carousel().Autoplay()
	require.True(t, ap.Running())

	m, _ = press(t, m, "?")
	assert.True(t, m.HelpVisible())
	assert.True(t, ap.Paused())

	view := testutil.StripANSI(m.View())
	assert.Contains(t, view, "Keys")
	assert.Contains(t, view, "Next item")

	// keys of the main view do nothing while help is open
	m, _ = press(t, m, "l")
	assert.False(t, m.Carousel().Animating())

	m, cmd := press(t, m, "q")
	assert.False(t, m.HelpVisible(), "q closes help instead of quitting")
	assert.NotNil(t, cmd)
	assert.False(t, ap.Paused())
}

func TestUpdate_HelpKeepsUserPause(t *testing.T) {
	opts := testCarouselOptions()
	opts.Autoplay = true
	m, _ := newTestModel(t, Options{Carousel: opts})
	m = sized(t, m)
	ap := m.Carousel().Carousel().Autoplay()

	m, _ = press(t, m, " ")
	require.True(t, ap.Paused())

	m, _ = press(t, m, "?", "esc")

	assert.False(t, m.HelpVisible())
	assert.True(t, ap.Paused(), "autoplay paused by the user stays paused")
}

func TestUpdate_Quit(t *testing.T) {
	tests := []struct {
		name string
		keys []string
	}{
		{"q", []string{"q"}},
		{"ctrl+c", []string{"ctrl+c"}},
		{"ctrl+c in help", []string{"?", "ctrl+c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, Options{})
			m = sized(t, m)

			m, cmd := press(t, m, tt.keys...)

			require.NotNil(t, cmd)
			_, ok := cmd().(tea.QuitMsg)
			assert.True(t, ok)
			assert.Nil(t, m.Carousel(), "session destroyed")
		})
	}
}

func TestUpdate_AutoplayKeys(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = sized(t, m)
	ap := m.Carousel().Carousel().Autoplay()

	m, _ = press(t, m, " ")
	assert.False(t, ap.Running(), "pause does nothing while autoplay is stopped")

	m, _ = press(t, m, "a")
	assert.True(t, ap.Running())

	m, _ = press(t, m, " ")
	assert.True(t, ap.Paused())

	_, _ = press(t, m, "a")
	assert.False(t, ap.Running())
}

func TestUpdate_DeckLoadedKeepsIndex(t *testing.T) {
	opts := testCarouselOptions()
	opts.StartIndex = 2
	m, _ := newTestModel(t, Options{Carousel: opts})
	m = sized(t, m)
	old := m.Carousel()
	require.Equal(t, 2, old.RealIndex())

	m, cmd := update(t, m, DeckLoadedMsg{Deck: testDeck("A", "B", "C", "D", "E")})

	assert.NotNil(t, cmd)
	require.NotNil(t, m.Carousel())
	assert.NotEqual(t, old.Session(), m.Carousel().Session())
	assert.True(t, old.Carousel().Destroyed())
	assert.Equal(t, 2, m.Carousel().RealIndex())
	assert.Equal(t, 5, m.Deck().Len())
	require.Len(t, m.Notifications, 1)
	assert.Equal(t, "Reloaded 5 items", m.Notifications[0].Message)
}

func TestUpdate_DeckLoadedShrunkStartsOver(t *testing.T) {
	opts := testCarouselOptions()
	opts.StartIndex = 3
	m, _ := newTestModel(t, Options{Carousel: opts})
	m = sized(t, m)

	m, _ = update(t, m, DeckLoadedMsg{Deck: testDeck("A", "B")})

	assert.Equal(t, 0, m.Carousel().RealIndex())
}

func TestUpdate_DeckLoadErrorKeepsSession(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = sized(t, m)
	session := m.Carousel().Session()

	m, _ = update(t, m, DeckLoadedMsg{Err: deck.ErrNoItems})

	assert.Equal(t, session, m.Carousel().Session())
	assert.Equal(t, "Failed to reload deck '/decks/intro.yaml': deck has no items", m.ErrorMsg)
	assert.Contains(t, testutil.StripANSI(m.View()), "Failed to reload deck")

	// the next key only dismisses the error
	m, _ = press(t, m, "l")
	assert.Empty(t, m.ErrorMsg)
	assert.False(t, m.Carousel().Animating())
}

func TestUpdate_ReloadKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - title: One\n  - title: Two\n"), 0o600))
	d, err := deck.Load(path)
	require.NoError(t, err)

	m, _ := newTestModel(t, Options{Deck: d})
	m = sized(t, m)

	require.NoError(t, os.WriteFile(path, []byte("items:\n  - title: One\n  - title: Two\n  - title: Three\n"), 0o600))
	_, cmd := press(t, m, "r")
	require.NotNil(t, cmd)

	msg, ok := cmd().(DeckLoadedMsg)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	assert.Equal(t, 3, msg.Deck.Len())
}

func TestUpdate_ReloadWithoutFile(t *testing.T) {
	m, _ := newTestModel(t, Options{Deck: deck.FromStrings("a")})
	m = sized(t, m)

	m, _ = press(t, m, "r")

	require.Len(t, m.Notifications, 1)
	assert.Equal(t, "Nothing to reload", m.Notifications[0].Message)
}

func TestUpdate_DeckChangedReloads(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	_, cmd := update(t, m, DeckChangedMsg{})

	assert.NotNil(t, cmd)
}

func TestUpdate_NotificationClear(t *testing.T) {
	m, _ := newTestModel(t, Options{Deck: deck.FromStrings("a")})
	m = sized(t, m)
	m, _ = press(t, m, "r")
	m, _ = press(t, m, "r")
	require.Len(t, m.Notifications, 2)

	m, _ = update(t, m, NotificationClearMsg{ID: m.Notifications[0].ID})

	require.Len(t, m.Notifications, 1)
	assert.Equal(t, int64(2), m.Notifications[0].ID)
}

func TestView(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	assert.Empty(t, m.View())

	m = sized(t, m)
	view := m.View()
	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 14)

	plain := testutil.StripANSI(view)
	assert.Contains(t, testutil.StripANSI(lines[0]), "Intro")
	assert.Contains(t, testutil.StripANSI(lines[0]), "intro.yaml")
	assert.Contains(t, plain, "1 / 4")
	assert.Contains(t, testutil.StripANSI(lines[13]), "Next item")
}
