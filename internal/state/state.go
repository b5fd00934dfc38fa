package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "reel"
	dbFileName   = "reel.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db    *sql.DB
	saver *saver
}

func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens the state database at path, creating it if needed.
func OpenPath(dbPath string) (*Manager, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	if dbPath == ":memory:" {
		// each connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return newManager(db), nil
}

func newManager(db *sql.DB) *Manager {
	m := &Manager{db: db}
	m.saver = newSaver(saveDebounce, func(positions []Position) error {
		return savePositions(m.db, positions)
	})
	return m
}

func (m *Manager) Close() error {
	// Flush pending positions
	_ = m.saver.flush()
	return m.db.Close()
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

// SavePosition records where a deck was left. Writes are debounced; the
// latest position per deck wins.
func (m *Manager) SavePosition(pos Position) {
	if pos.UpdatedAt.IsZero() {
		pos.UpdatedAt = time.Now()
	}
	m.saver.add(pos)
}

func (m *Manager) GetPosition(deckPath string) (*Position, error) {
	return getPosition(m.db, deckPath)
}

func (m *Manager) ForgetPosition(deckPath string) error {
	m.saver.drop(deckPath)
	return deletePosition(m.db, deckPath)
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

// saver batches positions and writes them once no new position arrived
// for the debounce delay.
type saver struct {
	delay time.Duration
	write func([]Position) error

	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]Position
	order   []string
}

func newSaver(delay time.Duration, write func([]Position) error) *saver {
	return &saver{delay: delay, write: write, pending: make(map[string]Position)}
}

func (s *saver) add(pos Position) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pending[pos.DeckPath]; !ok {
		s.order = append(s.order, pos.DeckPath)
	}
	s.pending[pos.DeckPath] = pos

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() {
		_ = s.flush()
	})
}

func (s *saver) drop(deckPath string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pending[deckPath]; !ok {
		return
	}
	delete(s.pending, deckPath)
	for i, p := range s.order {
		if p == deckPath {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *saver) flush() error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	batch := make([]Position, 0, len(s.order))
	for _, p := range s.order {
		batch = append(batch, s.pending[p])
	}
	s.pending = make(map[string]Position)
	s.order = nil
	s.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}
	return s.write(batch)
}
