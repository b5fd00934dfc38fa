package state

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/reel/internal/db"
)

// Position is the last settled real index of a deck.
type Position struct {
	DeckPath  string
	RealIndex int
	ItemCount int
	Title     string
	UpdatedAt time.Time
}

func getPosition(db *sql.DB, deckPath string) (*Position, error) {
	row := db.QueryRow(`
		SELECT deck_path, real_index, item_count, title, updated_at
		FROM deck_positions WHERE deck_path = ?
	`, deckPath)

	var pos Position
	var title sql.NullString
	var updatedAt sql.NullInt64

	err := row.Scan(&pos.DeckPath, &pos.RealIndex, &pos.ItemCount, &title, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // a deck never opened before has no position
	}
	if err != nil {
		return nil, err
	}

	pos.Title = dbutil.NullStringValue(title)
	pos.UpdatedAt = dbutil.NullUnixTime(updatedAt)

	return &pos, nil
}

func savePositions(db *sql.DB, positions []Position) error {
	return dbutil.WithTx(db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO deck_positions (deck_path, real_index, item_count, title, updated_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(deck_path) DO UPDATE SET
				real_index = excluded.real_index,
				item_count = excluded.item_count,
				title = excluded.title,
				updated_at = excluded.updated_at
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, p := range positions {
			if _, err := stmt.Exec(p.DeckPath, p.RealIndex, p.ItemCount,
				dbutil.ToNullString(p.Title), p.UpdatedAt.Unix()); err != nil {
				return err
			}
		}
		return nil
	})
}

func deletePosition(db *sql.DB, deckPath string) error {
	_, err := db.Exec(`DELETE FROM deck_positions WHERE deck_path = ?`, deckPath)
	return err
}
