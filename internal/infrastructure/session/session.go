// Package session persists viewer snapshots in SQLite.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tesso57/storybar/internal/domain/session"
	_ "modernc.org/sqlite"
)

// ErrInvalidSnapshot is returned when a snapshot misses required fields.
var ErrInvalidSnapshot = errors.New("invalid session snapshot")

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	feed_url   TEXT PRIMARY KEY,
	story_idx  INTEGER NOT NULL,
	story_guid TEXT NOT NULL DEFAULT '',
	styling    BLOB,
	saved_at   INTEGER NOT NULL
);`

// Store reads and writes snapshots keyed by feed URL.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path.
func Open(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("session path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate session db: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts or replaces the snapshot for its feed.
func (s *Store) Save(ctx context.Context, snap session.Snapshot) error {
	if strings.TrimSpace(snap.FeedURL) == "" || snap.Index < 0 {
		return ErrInvalidSnapshot
	}
	savedAt := snap.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (feed_url, story_idx, story_guid, styling, saved_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(feed_url) DO UPDATE SET
			story_idx = excluded.story_idx,
			story_guid = excluded.story_guid,
			styling = excluded.styling,
			saved_at = excluded.saved_at`,
		snap.FeedURL, snap.Index, snap.StoryGUID, snap.Styling, savedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Load returns the snapshot for feedURL. The boolean is false when none
// was saved.
func (s *Store) Load(ctx context.Context, feedURL string) (session.Snapshot, bool, error) {
	var (
		snap    session.Snapshot
		savedAt int64
	)
	row := s.db.QueryRowContext(ctx, `
		SELECT feed_url, story_idx, story_guid, styling, saved_at
		FROM sessions WHERE feed_url = ?`, feedURL)
	err := row.Scan(&snap.FeedURL, &snap.Index, &snap.StoryGUID, &snap.Styling, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return session.Snapshot{}, false, nil
	}
	if err != nil {
		return session.Snapshot{}, false, fmt.Errorf("failed to load session: %w", err)
	}
	snap.SavedAt = time.Unix(0, savedAt)
	return snap, true, nil
}

// Latest returns the most recently saved snapshot of any feed.
func (s *Store) Latest(ctx context.Context) (session.Snapshot, bool, error) {
	var feedURL string
	err := s.db.QueryRowContext(ctx, `SELECT feed_url FROM sessions ORDER BY saved_at DESC LIMIT 1`).Scan(&feedURL)
	if errors.Is(err, sql.ErrNoRows) {
		return session.Snapshot{}, false, nil
	}
	if err != nil {
		return session.Snapshot{}, false, fmt.Errorf("failed to load latest session: %w", err)
	}
	return s.Load(ctx, feedURL)
}

// Delete removes the snapshot for feedURL.
func (s *Store) Delete(ctx context.Context, feedURL string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE feed_url = ?`, feedURL); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
