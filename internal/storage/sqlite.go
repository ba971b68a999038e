// Package storage provides SQLite-based persistence for golf sessions.
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
)

// ErrNotFound is returned by SessionByID when no row matches.
var ErrNotFound = errors.New("storage: session not found")

// Store manages the SQLite database connection for session persistence.
type Store struct {
	db *sql.DB
}

// SessionRecord is one played session: a run from reset to quit or restart.
type SessionRecord struct {
	ID        int64
	Mode      string // "golf" or "golf_range"
	Seed      int64
	Score     int     // Furthest distance in tiles
	Shots     int
	Bounces   int
	Distance  float64 // Total path length in world units
	MaxSpeed  float64
	Obstacles int
	Duration  int // Duration in seconds
	CreatedAt time.Time
}

// ModeStats contains aggregated statistics for a mode.
type ModeStats struct {
	Mode         string
	Sessions     int
	BestScore    int
	TotalShots   int
	TotalBounces int
	AvgDistance  float64
	LastPlayed   time.Time
}

const sessionColumns = `id, mode, seed, score, shots, bounces, distance, max_speed, obstacles, duration_secs, created_at`

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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			shots INTEGER NOT NULL DEFAULT 0,
			bounces INTEGER NOT NULL DEFAULT 0,
			distance REAL NOT NULL DEFAULT 0,
			max_speed REAL NOT NULL DEFAULT 0,
			obstacles INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_mode ON sessions(mode);
		CREATE INDEX IF NOT EXISTS idx_sessions_top ON sessions(mode, score DESC);
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

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(r SessionRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions
		 (mode, seed, score, shots, bounces, distance, max_speed, obstacles, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Mode, r.Seed, r.Score, r.Shots, r.Bounces, r.Distance, r.MaxSpeed, r.Obstacles, r.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopSessions retrieves the best N sessions for the given mode.
// Results are ordered by score descending, fewer shots first on ties.
func (s *Store) TopSessions(mode string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 WHERE mode = ?
		 ORDER BY score DESC, shots ASC, id ASC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	return scanSessions(rows)
}

// RecentSessions retrieves the most recent sessions across all modes.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent sessions: %w", err)
	}
	return scanSessions(rows)
}

// BestScore returns the highest score for the given mode.
// Returns 0 if no sessions exist.
func (s *Store) BestScore(mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM sessions WHERE mode = ?",
		mode,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// BestDistance returns the longest total path travelled in one session of
// the given mode. Returns 0 if no sessions exist.
func (s *Store) BestDistance(mode string) (float64, error) {
	var dist sql.NullFloat64
	err := s.db.QueryRow(
		"SELECT MAX(distance) FROM sessions WHERE mode = ?",
		mode,
	).Scan(&dist)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best distance: %w", err)
	}

	if !dist.Valid {
		return 0, nil
	}

	return dist.Float64, nil
}

// ClearSessions deletes all sessions for the given mode.
func (s *Store) ClearSessions(mode string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// GetModeStats retrieves aggregated statistics for a specific mode.
func (s *Store) GetModeStats(mode string) (*ModeStats, error) {
	stats := &ModeStats{Mode: mode}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(SUM(shots), 0),
		        COALESCE(SUM(bounces), 0), COALESCE(AVG(distance), 0), MAX(created_at)
		 FROM sessions WHERE mode = ?`,
		mode,
	).Scan(&stats.Sessions, &stats.BestScore, &stats.TotalShots, &stats.TotalBounces, &stats.AvgDistance, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// scanSessions reads every row of a sessions query and closes rows.
func scanSessions(rows *sql.Rows) ([]SessionRecord, error) {
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var r SessionRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Mode,
			&r.Seed,
			&r.Score,
			&r.Shots,
			&r.Bounces,
			&r.Distance,
			&r.MaxSpeed,
			&r.Obstacles,
			&r.Duration,
			&createdAt,
		); err != nil {
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

// parseTime handles the datetime as either time.Time or string.
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

// SessionByID retrieves one session.
func (s *Store) SessionByID(id int64) (SessionRecord, error) {
	rows, err := s.db.Query(`SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id)
	if err != nil {
		return SessionRecord{}, fmt.Errorf("storage: cannot query session: %w", err)
	}
	records, err := scanSessions(rows)
	if err != nil {
		return SessionRecord{}, err
	}
	if len(records) == 0 {
		return SessionRecord{}, ErrNotFound
	}
	return records[0], nil
}
