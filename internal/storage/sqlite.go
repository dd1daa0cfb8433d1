// Package storage provides SQLite-based persistence for save records.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/chronoshift/internal/save"
)

// Store manages the SQLite database connection for save persistence.
// Every Write appends a row; Read returns the newest row of a slot, so the
// older rows form a history that can be browsed.
type Store struct {
	db *sql.DB
}

// SaveEntry describes one stored save without its payload.
type SaveEntry struct {
	ID            int64
	SaveID        string
	Slot          string
	Game          string
	TimelineIndex int
	CreatedAt     time.Time
}

// SlotStats contains aggregated information about a slot.
type SlotStats struct {
	Slot      string
	Game      string
	Count     int
	LastSaved time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS saves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			save_id TEXT NOT NULL UNIQUE,
			slot TEXT NOT NULL,
			game TEXT NOT NULL DEFAULT '',
			timeline_index INTEGER NOT NULL DEFAULT 0,
			payload BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_saves_slot ON saves(slot, id DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Write stores a new record for slot. It implements save.Backend.
func (s *Store) Write(slot string, data []byte) error {
	// Index columns are informational; the payload stays authoritative.
	var game string
	var index int
	if rec, err := save.Decode(data); err == nil {
		game = rec.Game
		index = rec.TimelineIndex
	}

	_, err := s.db.Exec(
		"INSERT INTO saves (save_id, slot, game, timeline_index, payload) VALUES (?, ?, ?, ?, ?)",
		uuid.NewString(), slot, game, index, data,
	)
	if err != nil {
		return fmt.Errorf("%w: storage: cannot insert save: %w", save.ErrIO, err)
	}
	return nil
}

// Read returns the newest record for slot. It implements save.Backend.
func (s *Store) Read(slot string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(
		"SELECT payload FROM saves WHERE slot = ? ORDER BY id DESC LIMIT 1",
		slot,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: slot %q", save.ErrNotFound, slot)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: storage: cannot read save: %w", save.ErrCorruptData, err)
	}
	return data, nil
}

// History retrieves the newest saves of a slot, newest first.
func (s *Store) History(slot string, limit int) ([]SaveEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, save_id, slot, game, timeline_index, created_at
		 FROM saves
		 WHERE slot = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		slot, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saves: %w", err)
	}
	defer rows.Close()

	var entries []SaveEntry
	for rows.Next() {
		var e SaveEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SaveID, &e.Slot, &e.Game, &e.TimelineIndex, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Slots retrieves statistics for every slot that has saves, ordered by slot.
func (s *Store) Slots() ([]SlotStats, error) {
	rows, err := s.db.Query(
		`SELECT slot, MAX(game), COUNT(*), MAX(created_at)
		 FROM saves
		 GROUP BY slot
		 ORDER BY slot`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get slots: %w", err)
	}
	defer rows.Close()

	var out []SlotStats
	for rows.Next() {
		var st SlotStats
		var lastSaved any
		if err := rows.Scan(&st.Slot, &st.Game, &st.Count, &lastSaved); err != nil {
			return nil, fmt.Errorf("storage: cannot scan slot row: %w", err)
		}
		st.LastSaved = parseTime(lastSaved)
		out = append(out, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

// Clear deletes all saves of the given slot.
func (s *Store) Clear(slot string) error {
	_, err := s.db.Exec("DELETE FROM saves WHERE slot = ?", slot)
	if err != nil {
		return fmt.Errorf("storage: cannot clear saves: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes returned by the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

var _ save.Backend = (*Store)(nil)
