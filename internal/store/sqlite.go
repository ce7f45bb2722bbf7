// internal/store/sqlite.go
//
// SQLite implementation of the Store interface.
// Responsibilities:
//   - One row per run, one row per finished game, keyed by (run_id, idx).
//   - Schema scripts embedded from sql/*.sql, each applied once.
//   - Summaries and the leaderboard are computed in SQL.

package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

//go:embed sql/*.sql
var migrations embed.FS

// SQLite is a Store backed by a SQLite file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) the database at path and brings
// its schema up to date.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	if err := migrate(db, migrations); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

// DB exposes the handle for ad-hoc queries.
func (s *SQLite) DB() *sql.DB { return s.db }

func (s *SQLite) Close() error { return s.db.Close() }

// openDB opens the outcome database at path. Workers never write (the
// runner records after they finish), but a second solver process may share
// the file, so WAL and a busy timeout keep concurrent runs from failing.
func openDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: create %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	// outcomes reference runs; enforce it on this connection too
	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: enable foreign keys: %w", err)
	}
	return db, nil
}

// migrate brings the runs/outcomes schema up to date. Each embedded script
// runs once, in name order, in the same transaction that records it.
func migrate(db *sql.DB, scripts fs.FS) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY)`); err != nil {
		return fmt.Errorf("store: migration ledger: %w", err)
	}

	names, err := fs.Glob(scripts, "sql/*.sql")
	if err != nil {
		return fmt.Errorf("store: list schema scripts: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		applied, err := schemaApplied(db, name)
		if err != nil {
			return err
		}
		if applied {
			continue
		}
		body, err := fs.ReadFile(scripts, name)
		if err != nil {
			return fmt.Errorf("store: read %s: %w", name, err)
		}
		if err := applySchema(db, name, string(body)); err != nil {
			return err
		}
		log.Info().Str("schema", name).Msg("outcome schema updated")
	}
	return nil
}

func schemaApplied(db *sql.DB, name string) (bool, error) {
	var one int
	err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name = ?`, name).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("store: check %s: %w", name, err)
	}
	return true, nil
}

func applySchema(db *sql.DB, name, body string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("store: begin %s: %w", name, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(body); err != nil {
		return fmt.Errorf("store: apply %s: %w", name, err)
	}
	if _, err := tx.Exec(`INSERT INTO _migrations (name) VALUES (?)`, name); err != nil {
		return fmt.Errorf("store: record %s: %w", name, err)
	}
	return tx.Commit()
}

func (s *SQLite) BeginRun(ctx context.Context, r Run) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO runs (id, strategy, corpus, max_rounds, started_at)
        VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.Strategy, r.Corpus, r.MaxRounds, r.StartedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("store: insert run %s: %w", r.ID, err)
	}
	return nil
}

// SaveOutcome inserts one game result. UNIQUE(run_id, idx) makes a repeat a no-op.
func (s *SQLite) SaveOutcome(ctx context.Context, runID string, idx int, out game.Outcome) error {
	var known int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM runs WHERE id=?`, runID).Scan(&known); err != nil {
		return fmt.Errorf("store: lookup run: %w", err)
	}
	if known == 0 {
		return fmt.Errorf("store: %w: %s", ErrUnknownRun, runID)
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO outcomes (run_id, idx, answer, rounds, solved, guesses)
        VALUES (?, ?, ?, ?, ?, ?)`,
		runID, idx, out.Answer, out.Rounds, out.Solved, strings.Join(out.Guesses, " "),
	)
	if err != nil {
		return fmt.Errorf("store: insert outcome %d: %w", idx, err)
	}
	return nil
}

const summarySelect = `
        SELECT r.id, r.strategy, COUNT(o.idx), COALESCE(SUM(o.solved), 0),
               AVG(CASE WHEN o.solved = 1 THEN o.rounds END) AS avg_rounds
        FROM runs r LEFT JOIN outcomes o ON o.run_id = r.id`

func (s *SQLite) Summary(ctx context.Context, runID string) (RunSummary, error) {
	row := s.db.QueryRowContext(ctx, summarySelect+` WHERE r.id=? GROUP BY r.id`, runID)
	rs, err := scanSummary(row)
	if errors.Is(err, sql.ErrNoRows) {
		return RunSummary{}, fmt.Errorf("store: %w: %s", ErrUnknownRun, runID)
	}
	return rs, err
}

// Leaderboard orders by average rounds ASC, then start time ASC. Default limit is 20.
func (s *SQLite) Leaderboard(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, summarySelect+`
        GROUP BY r.id
        HAVING COALESCE(SUM(o.solved), 0) > 0
        ORDER BY avg_rounds ASC, r.started_at ASC
        LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RunSummary, 0, limit)
	for rows.Next() {
		rs, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rs)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSummary(row scanner) (RunSummary, error) {
	var (
		rs  RunSummary
		avg sql.NullFloat64
	)
	if err := row.Scan(&rs.RunID, &rs.Strategy, &rs.Games, &rs.Solved, &avg); err != nil {
		return RunSummary{}, err
	}
	if avg.Valid {
		rs.AvgRounds = avg.Float64
	}
	return rs, nil
}
