// Package storage provides SQLite-based persistence for progress and run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/galactic-defender/internal/progress"
)

// DefaultPath is where the database lives unless --db says otherwise.
const DefaultPath = "~/.defender/defender.db"

const hiScoreKey = "hiscore"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished run.
type RunRecord struct {
	ID         int64
	Score      int
	Wave       int
	Coins      int
	Difficulty string
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandHome(dbPath)
	if err != nil {
		return nil, err
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

// ExpandHome expands a leading ~ to the home directory.
func ExpandHome(p string) (string, error) {
	if p == "" || p[0] != '~' {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS upgrades (
			name TEXT PRIMARY KEY,
			level INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			wave INTEGER NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			difficulty TEXT NOT NULL DEFAULT 'normal',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
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

// LoadMeta reads the hi-score and upgrade levels.
// Returns progress.ErrNoData when nothing was saved yet.
func (s *Store) LoadMeta() (progress.MetaState, error) {
	m := progress.NewMetaState()

	var hi int
	err := s.db.QueryRow("SELECT value FROM meta WHERE key = ?", hiScoreKey).Scan(&hi)
	found := err == nil
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return m, fmt.Errorf("storage: cannot query hi-score: %w", err)
	}
	m.HiScore = hi

	rows, err := s.db.Query("SELECT name, level FROM upgrades")
	if err != nil {
		return m, fmt.Errorf("storage: cannot query upgrades: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var level int
		if err := rows.Scan(&name, &level); err != nil {
			return m, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		m.Upgrades[name] = level
		found = true
	}
	if err := rows.Err(); err != nil {
		return m, fmt.Errorf("storage: row iteration error: %w", err)
	}

	if !found {
		return m, progress.ErrNoData
	}
	return m, nil
}

// SaveMeta replaces the stored record in a single transaction.
func (s *Store) SaveMeta(m progress.MetaState) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(
		"INSERT INTO meta (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		hiScoreKey, m.HiScore,
	); err != nil {
		return fmt.Errorf("storage: cannot save hi-score: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM upgrades"); err != nil {
		return fmt.Errorf("storage: cannot clear upgrades: %w", err)
	}
	for name, level := range m.Upgrades {
		if _, err := tx.Exec("INSERT INTO upgrades (name, level) VALUES (?, ?)", name, level); err != nil {
			return fmt.Errorf("storage: cannot save upgrade %s: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// ResetMeta deletes the hi-score and all upgrades. Run history is kept.
func (s *Store) ResetMeta() error {
	if _, err := s.db.Exec("DELETE FROM meta; DELETE FROM upgrades;"); err != nil {
		return fmt.Errorf("storage: cannot reset progress: %w", err)
	}
	return nil
}

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	difficulty := r.Difficulty
	if difficulty == "" {
		difficulty = "normal"
	}
	result, err := s.db.Exec(
		"INSERT INTO runs (score, wave, coins, difficulty) VALUES (?, ?, ?, ?)",
		r.Score, r.Wave, r.Coins, difficulty,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the best N runs, highest score first.
// Ties are broken by the earlier run.
func (s *Store) TopRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, score, wave, coins, difficulty, created_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentRuns retrieves the last N runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, score, wave, coins, difficulty, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Score, &r.Wave, &r.Coins, &r.Difficulty, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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

// BestScore returns the highest recorded run score, 0 if there are none.
func (s *Store) BestScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// RunCount returns the number of recorded runs.
func (s *Store) RunCount() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}

// ClearRuns deletes the whole run history.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Ensure Store implements progress.Store.
var _ progress.Store = (*Store)(nil)
