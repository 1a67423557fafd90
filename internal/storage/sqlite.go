// Package storage provides SQLite-based persistence for finished runs.
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

// Store manages the SQLite database connection for the run log.
type Store struct {
	db *sql.DB
}

// RunRecord is a finished run as stored in the run log.
type RunRecord struct {
	ID           int64
	RunID        string
	Player       string
	Level        int
	Tier         string
	Seed         string
	Status       string // "won" or "lost"
	Picks        int
	Matches      int
	ToolsUsed    int
	Score        int
	DurationSecs int
	CreatedAt    time.Time
}

// RunStats contains aggregated statistics for a level, or for all levels.
type RunStats struct {
	Level      int // 0 means all levels
	Runs       int
	Wins       int
	Losses     int
	BestScore  int
	AvgPicks   float64
	LastPlayed time.Time
}

// WinRate returns the fraction of runs that were won.
func (s RunStats) WinRate() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Runs)
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL DEFAULT '',
			level INTEGER NOT NULL,
			tier TEXT NOT NULL,
			seed TEXT NOT NULL,
			status TEXT NOT NULL,
			picks INTEGER NOT NULL DEFAULT 0,
			matches INTEGER NOT NULL DEFAULT 0,
			tools_used INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level ON runs(level);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(level, status, score DESC);
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

// SaveRun records a finished run and returns its row ID. Saving a run ID
// again replaces the outcome, so a lost run that was undone and later won
// keeps a single row with the final result.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	if r.RunID == "" {
		return 0, errors.New("storage: run id is required")
	}
	_, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, player, level, tier, seed, status, picks, matches, tools_used, score, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(run_id) DO UPDATE SET
		   status = excluded.status,
		   picks = excluded.picks,
		   matches = excluded.matches,
		   tools_used = excluded.tools_used,
		   score = excluded.score,
		   duration_secs = excluded.duration_secs`,
		r.RunID, r.Player, r.Level, r.Tier, r.Seed, r.Status,
		r.Picks, r.Matches, r.ToolsUsed, r.Score, r.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	var id int64
	if err := s.db.QueryRow(`SELECT id FROM runs WHERE run_id = ?`, r.RunID).Scan(&id); err != nil {
		return 0, fmt.Errorf("storage: cannot get saved ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, run_id, player, level, tier, seed, status, picks, matches,
	tools_used, score, duration_secs, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (RunRecord, error) {
	var r RunRecord
	var createdAt any
	err := row.Scan(
		&r.ID, &r.RunID, &r.Player, &r.Level, &r.Tier, &r.Seed, &r.Status,
		&r.Picks, &r.Matches, &r.ToolsUsed, &r.Score, &r.DurationSecs, &createdAt,
	)
	if err != nil {
		return RunRecord{}, err
	}
	r.CreatedAt = parseTimestamp(createdAt)
	return r, nil
}

// RunByID retrieves a run by its run ID. Returns nil if it doesn't exist.
func (s *Store) RunByID(runID string) (*RunRecord, error) {
	r, err := scanRun(s.db.QueryRow(
		`SELECT `+runColumns+` FROM runs WHERE run_id = ?`,
		runID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// BestRuns retrieves the highest scoring won runs for a level.
// Ties go to the run with fewer picks, then the earlier one.
func (s *Store) BestRuns(level, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs
		 WHERE level = ? AND status = 'won'
		 ORDER BY score DESC, picks ASC, id ASC
		 LIMIT ?`,
		level, limit,
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
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Stats retrieves aggregated statistics for a level. Level 0 covers all runs.
func (s *Store) Stats(level int) (*RunStats, error) {
	stats := &RunStats{Level: level}

	where := ""
	args := []any{}
	if level > 0 {
		where = "WHERE level = ?"
		args = append(args, level)
	}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN status = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN status = 'lost' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(picks), 0),
		        MAX(created_at)
		 FROM runs `+where,
		args...,
	).Scan(&stats.Runs, &stats.Wins, &stats.Losses, &stats.BestScore, &stats.AvgPicks, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	stats.LastPlayed = parseTimestamp(lastPlayed)

	return stats, nil
}

// Levels returns the distinct levels that have recorded runs, ascending.
func (s *Store) Levels() ([]int, error) {
	rows, err := s.db.Query(`SELECT DISTINCT level FROM runs ORDER BY level`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	var levels []int
	for rows.Next() {
		var l int
		if err := rows.Scan(&l); err != nil {
			return nil, fmt.Errorf("storage: cannot scan level: %w", err)
		}
		levels = append(levels, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return levels, nil
}

// ClearRuns deletes every recorded run.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTimestamp handles both time.Time and the SQLite text format.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
