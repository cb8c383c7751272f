// Package history provides SQLite storage for past download outcomes.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/UKR-PROJECTS/instaloader-gui/internal/model"
)

// DefaultFileName is the history database file kept next to the downloads dir
const DefaultFileName = "history.db"

// Entry is one recorded item outcome
type Entry struct {
	ID           int64
	SessionID    string
	URL          string
	Title        string
	Status       model.ItemStatus
	FolderPath   string
	ErrorMessage string
	CreatedAt    time.Time
}

// Store wraps the SQLite connection holding download history
type Store struct {
	conn *sql.DB
}

// Open opens or creates the history database at the given path
func Open(path string) (*Store, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	store := &Store{conn: conn}
	if err := store.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate history db: %w", err)
	}
	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS downloads (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		url TEXT NOT NULL,
		title TEXT DEFAULT '',
		status TEXT NOT NULL,
		folder_path TEXT DEFAULT '',
		error_message TEXT DEFAULT '',
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_downloads_session ON downloads(session_id);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// RecordCompleted stores a successful item outcome
func (s *Store) RecordCompleted(sessionID, url string, result *model.Result) error {
	_, err := s.conn.Exec(
		"INSERT INTO downloads (session_id, url, title, status, folder_path, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		sessionID, url, result.Title, model.StatusCompleted.String(), result.FolderPath, time.Now().UTC())
	return err
}

// RecordError stores a failed item outcome
func (s *Store) RecordError(sessionID, url, message string) error {
	_, err := s.conn.Exec(
		"INSERT INTO downloads (session_id, url, status, error_message, created_at) VALUES (?, ?, ?, ?, ?)",
		sessionID, url, model.StatusError.String(), message, time.Now().UTC())
	return err
}

// Recent returns the newest entries, most recent first
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.conn.Query(
		"SELECT id, session_id, url, title, status, folder_path, error_message, created_at FROM downloads ORDER BY id DESC LIMIT ?",
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var status string
		if err := rows.Scan(&e.ID, &e.SessionID, &e.URL, &e.Title, &status, &e.FolderPath, &e.ErrorMessage, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Status = model.ItemStatus(status)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CountBySession returns how many outcomes were recorded for a session
func (s *Store) CountBySession(sessionID string) (int, error) {
	var count int
	err := s.conn.QueryRow("SELECT COUNT(*) FROM downloads WHERE session_id = ?", sessionID).Scan(&count)
	return count, err
}
