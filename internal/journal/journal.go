// Package journal provides an SQLite-backed log of document saves. It
// powers the admin dashboard statistics and is strictly additive: losing a
// journal entry never affects the persisted documents.
package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS saves (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	section  TEXT NOT NULL,
	checksum TEXT NOT NULL DEFAULT '',
	saved_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_saves_section ON saves(section);
`

// DB wraps a sql.DB with journal operations.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database and applies the schema.
func Open(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("journal: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("journal: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("journal: apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Record appends one save entry for section. Timestamps are stored as
// RFC3339 UTC strings so aggregate queries stay sortable and scannable.
func (db *DB) Record(section, checksum string) error {
	_, err := db.conn.Exec(
		`INSERT INTO saves (section, checksum, saved_at) VALUES (?, ?, ?)`,
		section, checksum, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("journal: record %s: %w", section, err)
	}
	return nil
}

// SectionStat summarizes the save history of one section.
type SectionStat struct {
	Section   string    `json:"section"`
	Saves     int       `json:"saves"`
	LastSaved time.Time `json:"last_saved"`
}

// Stats is the dashboard summary.
type Stats struct {
	TotalSaves int           `json:"total_saves"`
	Sections   []SectionStat `json:"sections"`
}

// Stats returns the total save count and a per-section breakdown ordered
// by most recently saved.
func (db *DB) Stats() (*Stats, error) {
	out := &Stats{Sections: []SectionStat{}}

	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM saves`).Scan(&out.TotalSaves); err != nil {
		return nil, fmt.Errorf("journal: total saves: %w", err)
	}

	rows, err := db.conn.Query(`
		SELECT section, COUNT(*), MAX(saved_at)
		FROM saves
		GROUP BY section
		ORDER BY MAX(saved_at) DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("journal: section stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			s    SectionStat
			last string
		)
		if err := rows.Scan(&s.Section, &s.Saves, &last); err != nil {
			return nil, fmt.Errorf("journal: scan stat: %w", err)
		}
		if t, perr := time.Parse(time.RFC3339Nano, last); perr == nil {
			s.LastSaved = t
		}
		out.Sections = append(out.Sections, s)
	}
	return out, rows.Err()
}

// LastChecksum returns the checksum of the most recent save for section,
// or empty string when the section was never saved.
func (db *DB) LastChecksum(section string) (string, error) {
	var cs string
	err := db.conn.QueryRow(
		`SELECT checksum FROM saves WHERE section = ? ORDER BY id DESC LIMIT 1`,
		section).Scan(&cs)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", nil
	case err != nil:
		return "", fmt.Errorf("journal: last checksum %s: %w", section, err)
	}
	return cs, nil
}
