package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Store keeps the few records the command core writes: side flips and joined Twitch channels.
type Store struct {
	db *sql.DB
}

func NewStore(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("sqlite: empty db path")
	}

	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("sqlite: creating dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}

	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func migrate(db *sql.DB) error {
	const sideFlipsTable = `
CREATE TABLE IF NOT EXISTS side_flips (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	platform TEXT NOT NULL,
	user_id TEXT NOT NULL,
	username TEXT,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_side_flips_user ON side_flips(platform, user_id);`

	if _, err := db.Exec(sideFlipsTable); err != nil {
		return fmt.Errorf("sqlite: migrate side_flips: %w", err)
	}

	const twitchChannelsTable = `
CREATE TABLE IF NOT EXISTS twitch_channels (
	login TEXT PRIMARY KEY,
	broadcaster_id TEXT,
	display_name TEXT,
	connected INTEGER NOT NULL DEFAULT 0,
	updated_at TIMESTAMP NOT NULL
);`

	if _, err := db.Exec(twitchChannelsTable); err != nil {
		return fmt.Errorf("sqlite: migrate twitch_channels: %w", err)
	}

	return nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
