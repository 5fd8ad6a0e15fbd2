// Package store holds the server-side persistence helpers: a sqlite-backed
// search history and a redis result cache. Both are optional; the CLI and the
// finders never touch them.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SearchRecord is one remembered query.
type SearchRecord struct {
	ID         int64     `json:"id"`
	Start      string    `json:"start"`
	End        string    `json:"end"`
	NumPaths   int       `json:"numPaths"`
	Moves      int       `json:"moves"`
	DurationMs float64   `json:"durationMs"`
	CreatedAt  time.Time `json:"createdAt"`
}

// History records every search served, so the frontend can show recent
// queries.
type History struct {
	db *sql.DB
}

const createHistoryTable = `
CREATE TABLE IF NOT EXISTS searches (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	start TEXT NOT NULL,
	end TEXT NOT NULL,
	num_paths INTEGER NOT NULL,
	moves INTEGER NOT NULL,
	duration_ms REAL NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// OpenHistory opens (creating if needed) the history database at path.
func OpenHistory(path string) (*History, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(createHistoryTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history table: %w", err)
	}
	return &History{db: db}, nil
}

// Record stores one completed search.
func (h *History) Record(start, end string, numPaths, moves int, durationMs float64) error {
	_, err := h.db.Exec(
		`INSERT INTO searches (start, end, num_paths, moves, duration_ms) VALUES (?, ?, ?, ?, ?)`,
		start, end, numPaths, moves, durationMs,
	)
	if err != nil {
		return fmt.Errorf("record search: %w", err)
	}
	return nil
}

// Recent returns up to limit searches, newest first.
func (h *History) Recent(limit int) ([]SearchRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := h.db.Query(
		`SELECT id, start, end, num_paths, moves, duration_ms, created_at
		 FROM searches ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var records []SearchRecord
	for rows.Next() {
		var r SearchRecord
		if err := rows.Scan(&r.ID, &r.Start, &r.End, &r.NumPaths, &r.Moves, &r.DurationMs, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (h *History) Close() error {
	return h.db.Close()
}
