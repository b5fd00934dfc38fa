package state

import (
	"database/sql"
)

// Mock is a test double for Manager. Saves are applied immediately.
type Mock struct {
	positions map[string]Position
	saves     int
	getErr    error
	closed    bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{positions: make(map[string]Position)}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) SavePosition(pos Position) {
	m.saves++
	m.positions[pos.DeckPath] = pos
}

func (m *Mock) GetPosition(deckPath string) (*Position, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	pos, ok := m.positions[deckPath]
	if !ok {
		return nil, nil //nolint:nilnil // mirrors Manager
	}
	return &pos, nil
}

func (m *Mock) ForgetPosition(deckPath string) error {
	delete(m.positions, deckPath)
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetPosition(pos Position) { m.positions[pos.DeckPath] = pos }

func (m *Mock) SetGetError(err error) { m.getErr = err }

func (m *Mock) Saves() int { return m.saves }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
