// Package highscores persists finished matches in a SQLite table ranked by
// lowest cumulative score.
package highscores

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/signalnine/double12/engine"
	"github.com/signalnine/double12/highscores/migrations"
	_ "modernc.org/sqlite"
)

// MaxEntries is how many rows survive each Add.
const MaxEntries = 50

const rankOrder = `player_score ASC, placement ASC, ts DESC, id DESC`

// Entry is one recorded match from a single seat's point of view.
type Entry struct {
	TS           time.Time
	PlayerName   string
	PlayerScore  int
	Placement    int // 1-based rank at match end
	PlayerCount  int
	RoundsTotal  int
	AIDifficulty string
	Ruleset      string
	WinnerName   string
	WinnerScore  int
}

// EntryFromMatch builds the entry for seat from a finished match.
func EntryFromMatch(st engine.Snapshot, seat int, difficulty, ruleset string, ts time.Time) (Entry, error) {
	if !st.MatchOver() {
		return Entry{}, fmt.Errorf("match is not over")
	}
	if seat < 0 || seat >= st.NumPlayers() {
		return Entry{}, fmt.Errorf("seat %d out of range", seat)
	}
	rank := st.Ranking()
	placement := 99
	for i, s := range rank {
		if s.Player == seat {
			placement = i + 1
			break
		}
	}
	player := st.Player(seat)
	winner := st.Player(rank[0].Player)
	return Entry{
		TS:           ts,
		PlayerName:   player.Name(),
		PlayerScore:  player.Score(),
		Placement:    placement,
		PlayerCount:  st.NumPlayers(),
		RoundsTotal:  st.RoundsTotal(),
		AIDifficulty: difficulty,
		Ruleset:      ruleset,
		WinnerName:   winner.Name(),
		WinnerScore:  winner.Score(),
	}, nil
}

func (e Entry) normalized() Entry {
	if e.TS.IsZero() {
		e.TS = time.Now()
	}
	e.TS = e.TS.UTC()
	if strings.TrimSpace(e.PlayerName) == "" {
		e.PlayerName = "Player"
	}
	if e.Placement <= 0 {
		e.Placement = 99
	}
	if e.AIDifficulty == "" {
		e.AIDifficulty = "normal"
	}
	if e.Ruleset == "" {
		e.Ruleset = "standard"
	}
	return e
}

// Store persists high scores in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite high-score store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(context.Background(), sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
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

// Add records an entry, drops everything ranked past MaxEntries and returns
// the surviving table.
func (s *Store) Add(ctx context.Context, entry Entry) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	entry = entry.normalized()

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin add: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO high_scores (
		   ts, player_name, player_score, placement, player_count, rounds_total,
		   ai_difficulty, ruleset, winner_name, winner_score
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.TS.UnixMilli(),
		entry.PlayerName,
		entry.PlayerScore,
		entry.Placement,
		entry.PlayerCount,
		entry.RoundsTotal,
		entry.AIDifficulty,
		entry.Ruleset,
		entry.WinnerName,
		entry.WinnerScore,
	); err != nil {
		return nil, fmt.Errorf("insert high score: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM high_scores
		  WHERE id NOT IN (SELECT id FROM high_scores ORDER BY `+rankOrder+` LIMIT ?)`,
		MaxEntries,
	); err != nil {
		return nil, fmt.Errorf("trim high scores: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit add: %w", err)
	}
	return s.Top(ctx, MaxEntries)
}

// Top returns up to limit entries, best first.
func (s *Store) Top(ctx context.Context, limit int) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT ts, player_name, player_score, placement, player_count, rounds_total,
		        ai_difficulty, ruleset, winner_name, winner_score
		   FROM high_scores
		  ORDER BY `+rankOrder+`
		  LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list high scores: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0, limit)
	for rows.Next() {
		var e Entry
		var ts int64
		if err := rows.Scan(
			&ts,
			&e.PlayerName,
			&e.PlayerScore,
			&e.Placement,
			&e.PlayerCount,
			&e.RoundsTotal,
			&e.AIDifficulty,
			&e.Ruleset,
			&e.WinnerName,
			&e.WinnerScore,
		); err != nil {
			return nil, fmt.Errorf("scan high score: %w", err)
		}
		e.TS = time.UnixMilli(ts).UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate high scores: %w", err)
	}
	return entries, nil
}

// Clear removes every entry.
func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM high_scores`); err != nil {
		return fmt.Errorf("clear high scores: %w", err)
	}
	return nil
}
