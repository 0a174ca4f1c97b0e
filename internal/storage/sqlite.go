// Package storage keeps finished games in SQLite through the pure-Go
// modernc.org/sqlite driver, so no CGO toolchain is needed.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// DefaultPath is where scores are kept unless --db says otherwise.
const DefaultPath = "~/.columns/scores.db"

// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

// migrations are applied in order; PRAGMA user_version counts the applied ones.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		player TEXT NOT NULL DEFAULT '',
		score INTEGER NOT NULL,
		cleared INTEGER NOT NULL DEFAULT 0,
		max_chain INTEGER NOT NULL DEFAULT 0,
		ticks INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);`,
}

// Store is the score database.
type Store struct {
	db *sql.DB
}

// Result is a finished game as reported by a front end.
type Result struct {
	GameID   string
	Player   string // empty for local play, the SSH user when served
	Score    int
	Cleared  int // jewels removed
	MaxChain int // longest chain reaction
	Ticks    int // simulation ticks played
}

// ScoreEntry is a stored Result.
type ScoreEntry struct {
	Result
	ID        int64
	CreatedAt time.Time
}

// GameStats aggregates every stored result of one rule set.
type GameStats struct {
	GameID       string
	GamesCount   int
	HighScore    int
	AvgScore     float64
	TotalCleared int64
	BestChain    int
	LastPlayed   time.Time
}

// Open opens or creates the database at path, creating parent directories
// and bringing the schema up to date. A leading ~ is the home directory.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", filepath.Dir(path), err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return s, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate applies the migrations newer than the database's user_version.
func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return err
	}
	for v := version; v < len(migrations); v++ {
		if _, err := s.db.Exec(migrations[v]); err != nil {
			return fmt.Errorf("version %d: %w", v+1, err)
		}
		if _, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", v+1)); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveResult records a finished game and returns its id.
func (s *Store) SaveResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO scores (game_id, player, score, cleared, max_chain, ticks) VALUES (?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Player, r.Score, r.Cleared, r.MaxChain, r.Ticks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores returns the best limit results of a rule set, highest first.
// Ties keep insertion order. A non-positive limit means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, game_id, player, score, cleared, max_chain, ticks, created_at
		 FROM scores WHERE game_id = ?
		 ORDER BY score DESC, id ASC LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var out []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var created any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Player, &e.Score, &e.Cleared, &e.MaxChain, &e.Ticks, &created); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(created)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// HighScore returns the best score of a rule set, 0 when none is stored.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE game_id = ?", gameID).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(best.Int64), nil
}

// ClearScores deletes every result of a rule set and returns how many
// were removed.
func (s *Store) ClearScores(gameID string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return res.RowsAffected()
}

// statsColumns aggregates the rows of one game_id group.
const statsColumns = `COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
	COALESCE(SUM(cleared), 0), COALESCE(MAX(max_chain), 0), MAX(created_at)`

type scanner interface {
	Scan(dest ...any) error
}

func scanStats(row scanner, gs *GameStats, prefix ...any) error {
	var last any
	dest := append(prefix, &gs.GamesCount, &gs.HighScore, &gs.AvgScore, &gs.TotalCleared, &gs.BestChain, &last)
	if err := row.Scan(dest...); err != nil {
		return err
	}
	gs.LastPlayed = parseTime(last)
	return nil
}

// GameStats aggregates the results of one rule set. A rule set without
// results yields zero stats.
func (s *Store) GameStats(gameID string) (*GameStats, error) {
	gs := &GameStats{GameID: gameID}
	row := s.db.QueryRow("SELECT "+statsColumns+" FROM scores WHERE game_id = ?", gameID)
	if err := scanStats(row, gs); err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	return gs, nil
}

// AllGamesStats aggregates every rule set that has results, keyed by id.
func (s *Store) AllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query("SELECT game_id, " + statsColumns + " FROM scores GROUP BY game_id")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	out := make(map[string]*GameStats)
	for rows.Next() {
		gs := &GameStats{}
		if err := scanStats(rows, gs, &gs.GameID); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		out[gs.GameID] = gs
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// parseTime accepts the time.Time or string the driver returns for DATETIME.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
