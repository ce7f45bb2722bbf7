// internal/store/store.go
//
// Persistence for solver runs and per-game outcomes.
//
// A run is one CLI invocation: one strategy over one dictionary, playing many
// answers. Each finished game is stored as an outcome keyed by (run, index).
// Implementations:
//   - memory.go: map-backed, lost on exit.
//   - sqlite.go: SQLite-backed with embedded migrations.

package store

import (
	"context"
	"errors"
	"time"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

// Run describes one batch of games.
type Run struct {
	ID        string    // uuid
	Strategy  string    // solver registry name
	Corpus    string    // dictionary fingerprint
	MaxRounds int       // round budget per game
	StartedAt time.Time // UTC
}

// RunSummary aggregates the outcomes stored for a run. AvgRounds only counts
// solved games and is 0 when nothing was solved.
type RunSummary struct {
	RunID     string
	Strategy  string
	Games     int
	Solved    int
	AvgRounds float64
}

// Store defines the persistence interface for runs and outcomes.
type Store interface {
	// BeginRun registers a run before any of its outcomes are saved.
	BeginRun(ctx context.Context, r Run) error

	// SaveOutcome records game idx of a run. Saving the same idx twice keeps the first.
	SaveOutcome(ctx context.Context, runID string, idx int, out game.Outcome) error

	// Summary aggregates one run.
	Summary(ctx context.Context, runID string) (RunSummary, error)

	// Leaderboard lists runs with at least one solved game, best average first.
	Leaderboard(ctx context.Context, limit int) ([]RunSummary, error)

	Close() error
}

var ErrUnknownRun = errors.New("unknown run")
