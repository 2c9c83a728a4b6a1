// Package sqlite provides a SQLite-backed match statistics store.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"archsdinos/internal/ports"
)

//go:embed schema.sql
var schema string

// PlayerStats aggregates the recorded matches of one player.
type PlayerStats struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	Games       int    `json:"games"`
	Wins        int    `json:"wins"`
	TotalPoints int    `json:"total_points"`
}

// Store persists finished matches in SQLite.
type Store struct {
	sqlDB *sql.DB
}

var _ ports.StatisticsPort = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// Open opens a SQLite statistics store and applies its schema. ":memory:"
// opens a private in-memory database.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := ":memory:"
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if path == ":memory:" {
		// every pooled connection would get its own empty database
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// RecordMatch stores one finished match. Recording the same match twice is
// a no-op. Failures are wrapped in ports.ErrPersistence.
func (s *Store) RecordMatch(ctx context.Context, rec ports.MatchRecord) error {
	if err := s.recordMatch(ctx, rec); err != nil {
		return fmt.Errorf("%w: %w", ports.ErrPersistence, err)
	}
	return nil
}

func (s *Store) recordMatch(ctx context.Context, rec ports.MatchRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(rec.MatchID) == "" {
		return fmt.Errorf("match id is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO matches (match_id, reason, winner_id, turns, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.MatchID, rec.Reason, rec.WinnerID, rec.Turns, toMillis(rec.Started), toMillis(rec.Ended),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("insert match: %w", err)
	}

	for _, sc := range rec.Scores {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO match_players (match_id, user_id, username, points, rank, is_bot)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			rec.MatchID, sc.UserID, sc.Username, sc.Points, sc.Rank, sc.IsBot,
		)
		if err != nil {
			return fmt.Errorf("insert score for %s: %w", sc.UserID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

const statsQuery = `
SELECT mp.user_id,
       MAX(mp.username),
       COUNT(*),
       SUM(CASE WHEN m.winner_id = mp.user_id THEN 1 ELSE 0 END),
       SUM(mp.points)
  FROM match_players mp
  JOIN matches m ON m.match_id = mp.match_id`

// PlayerTotals returns the aggregated statistics of one user.
func (s *Store) PlayerTotals(ctx context.Context, userID string) (PlayerStats, error) {
	row := s.sqlDB.QueryRowContext(ctx, statsQuery+` WHERE mp.user_id = ? GROUP BY mp.user_id`, userID)
	var st PlayerStats
	err := row.Scan(&st.UserID, &st.Username, &st.Games, &st.Wins, &st.TotalPoints)
	if errors.Is(err, sql.ErrNoRows) {
		return PlayerStats{UserID: userID}, nil
	}
	if err != nil {
		return PlayerStats{}, fmt.Errorf("query player totals: %w", err)
	}
	return st, nil
}

// TopPlayers returns human players ordered by total points.
func (s *Store) TopPlayers(ctx context.Context, limit int) ([]PlayerStats, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		statsQuery+` WHERE mp.is_bot = 0 GROUP BY mp.user_id ORDER BY SUM(mp.points) DESC, mp.user_id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query top players: %w", err)
	}
	defer rows.Close()

	var out []PlayerStats
	for rows.Next() {
		var st PlayerStats
		if err := rows.Scan(&st.UserID, &st.Username, &st.Games, &st.Wins, &st.TotalPoints); err != nil {
			return nil, fmt.Errorf("scan top players: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}
