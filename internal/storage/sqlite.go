// Package storage provides SQLite-based persistence for run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Gameplay never depends on this store; every write is best-effort.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for history persistence.
type Store struct {
	db *sql.DB
}

// Run records one completed prestige cycle.
type Run struct {
	ID        int64
	Tokens    int     // Prestige tokens gained
	Salary    float64 // Salary converted at reset
	KPI       int     // KPI reached
	BossWins  int     // Inspections passed during the run
	Clicks    int     // Manual clicks during the run
	CreatedAt time.Time
}

// BossResult records one resolved inspection.
type BossResult struct {
	ID        int64
	Goal      float64
	Progress  float64
	Won       bool
	Amount    float64 // Reward granted or penalty charged
	CreatedAt time.Time
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
			tokens INTEGER NOT NULL,
			salary REAL NOT NULL,
			kpi INTEGER NOT NULL,
			boss_wins INTEGER NOT NULL DEFAULT 0,
			clicks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);

		CREATE TABLE IF NOT EXISTS boss_results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			goal REAL NOT NULL,
			progress REAL NOT NULL,
			won INTEGER NOT NULL,
			amount REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_boss_results_created ON boss_results(created_at DESC);
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

// RecordRun inserts a completed prestige run.
// Returns the ID of the inserted record.
func (s *Store) RecordRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (tokens, salary, kpi, boss_wins, clicks) VALUES (?, ?, ?, ?, ?)",
		r.Tokens, r.Salary, r.KPI, r.BossWins, r.Clicks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecordBoss inserts a resolved inspection outcome.
func (s *Store) RecordBoss(r BossResult) (int64, error) {
	won := 0
	if r.Won {
		won = 1
	}
	result, err := s.db.Exec(
		"INSERT INTO boss_results (goal, progress, won, amount) VALUES (?, ?, ?, ?)",
		r.Goal, r.Progress, won, r.Amount,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record boss result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent prestige runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, tokens, salary, kpi, boss_wins, clicks, created_at
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Tokens, &r.Salary, &r.KPI, &r.BossWins, &r.Clicks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// RecentBossResults retrieves the most recent inspection outcomes, newest first.
func (s *Store) RecentBossResults(limit int) ([]BossResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, goal, progress, won, amount, created_at
		 FROM boss_results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query boss results: %w", err)
	}
	defer rows.Close()

	var entries []BossResult
	for rows.Next() {
		var r BossResult
		var won int
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Goal, &r.Progress, &won, &r.Amount, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Won = won == 1
		r.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Totals contains aggregated lifetime statistics.
type Totals struct {
	Runs         int
	TokensEarned int
	BestTokens   int
	BossAttempts int
	BossWon      int
}

// GetTotals retrieves aggregated statistics across all history.
func (s *Store) GetTotals() (*Totals, error) {
	t := &Totals{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(tokens), 0), COALESCE(MAX(tokens), 0) FROM runs`,
	).Scan(&t.Runs, &t.TokensEarned, &t.BestTokens)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run totals: %w", err)
	}

	err = s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0) FROM boss_results`,
	).Scan(&t.BossAttempts, &t.BossWon)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get boss totals: %w", err)
	}

	return t, nil
}

// parseTimestamp handles both time.Time and string datetime values from the driver.
func parseTimestamp(v any) time.Time {
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
