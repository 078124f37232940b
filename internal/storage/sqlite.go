// Package storage persists finished rounds in a SQLite database using the
// pure-Go modernc.org/sqlite driver.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/rom100main/pac-minator/internal/config"
)

// DBFileName is the database file created in the config directory.
const DBFileName = "scores.db"

// ErrNegativeScore is returned when saving a score below zero.
var ErrNegativeScore = errors.New("storage: score must be non-negative")

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// Record is one finished round.
type Record struct {
	ID        int64
	Name      string
	Score     int
	Level     int
	Won       bool
	CreatedAt time.Time
}

// DefaultPath returns <config dir>/scores.db, honoring PACMAN_CONFIG_DIR.
func DefaultPath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot resolve config directory: %w", err)
	}
	return filepath.Join(dir, DBFileName), nil
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			won INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);
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

// SaveScore records a finished round and returns its ID.
func (s *Store) SaveScore(rec Record) (int64, error) {
	if rec.Score < 0 {
		return 0, ErrNegativeScore
	}
	result, err := s.db.Exec(
		"INSERT INTO scores (name, score, level, won) VALUES (?, ?, ?, ?)",
		strings.TrimSpace(rec.Name), rec.Score, rec.Level, rec.Won,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores returns up to limit rounds, best first. Equal scores keep
// insertion order.
func (s *Store) TopScores(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, name, score, level, won, created_at
		 FROM scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanRecords(rows)
}

// Leaderboard returns each player's best round, best first. Names are
// compared ignoring case and surrounding space.
func (s *Store) Leaderboard(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, name, score, level, won, created_at
		 FROM scores AS s
		 WHERE s.id = (
		     SELECT b.id FROM scores AS b
		     WHERE lower(b.name) = lower(s.name)
		     ORDER BY b.score DESC, b.id ASC
		     LIMIT 1
		 )
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	return scanRecords(rows)
}

// HighScore returns the best round. ok is false when nothing is stored.
func (s *Store) HighScore() (Record, bool, error) {
	top, err := s.TopScores(1)
	if err != nil {
		return Record{}, false, err
	}
	if len(top) == 0 {
		return Record{}, false, nil
	}
	return top[0], true, nil
}

func scanRecords(rows *sql.Rows) ([]Record, error) {
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Name, &r.Score, &r.Level, &r.Won, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// parseTime accepts either driver representation of a DATETIME column.
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
