// Package storage keeps the session scoreboard in an in-memory SQLite
// database. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Nothing survives the process.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Store manages the session database connection.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Run is a single finished run recorded during this session.
type Run struct {
	ID        string
	GameID    string
	Score     int
	Level     int
	MaxCombo  int
	Survival  time.Duration
	Reason    string
	Seed      int64
	CreatedAt time.Time
}

// Open creates a fresh in-memory session database.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			max_combo INTEGER NOT NULL DEFAULT 0,
			survival_ms INTEGER NOT NULL DEFAULT 0,
			reason TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection and discards the session.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its generated ID.
func (s *Store) SaveRun(gameID string, seed int64, stats core.RunStats) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO runs (id, game_id, score, level, max_combo, survival_ms, reason, seed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, gameID, stats.Score, stats.Level, stats.MaxCombo,
		stats.Survival.Milliseconds(), stats.Reason, seed, s.now().UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return id, nil
}

// TopRuns returns the best runs for gameID, highest score first. Ties keep
// insertion order. An empty gameID selects every game.
func (s *Store) TopRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, level, max_combo, survival_ms, reason, seed, created_at
		 FROM runs
		 WHERE ? = '' OR game_id = ?
		 ORDER BY score DESC, seq ASC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var survivalMS, createdMS int64
		if err := rows.Scan(&r.ID, &r.GameID, &r.Score, &r.Level, &r.MaxCombo,
			&survivalMS, &r.Reason, &r.Seed, &createdMS); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Survival = time.Duration(survivalMS) * time.Millisecond
		r.CreatedAt = time.UnixMilli(createdMS)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestScore returns the highest score for gameID this session, or 0.
func (s *Store) BestScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// RunCount returns how many runs of gameID finished this session.
func (s *Store) RunCount(gameID string) (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs WHERE game_id = ?", gameID).Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}
