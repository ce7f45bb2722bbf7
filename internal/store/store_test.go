package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

func tempSQLite(t *testing.T) Store {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "data", "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func implementations(t *testing.T) map[string]Store {
	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": tempSQLite(t),
	}
}

func TestRunRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, s := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			run := Run{ID: "run-1", Strategy: "enumerate", Corpus: "abc", MaxRounds: 6, StartedAt: time.Now()}
			require.NoError(t, s.BeginRun(ctx, run))

			outs := []game.Outcome{
				{Answer: "right", Guesses: []string{"tares", "right"}, Rounds: 2, Solved: true},
				{Answer: "wrong", Guesses: []string{"tares", "wrung", "wrong", "wring"}, Rounds: 4, Solved: true},
				{Answer: "fight", Guesses: []string{"a", "b", "c", "d", "e", "f"}, Rounds: 6, Solved: false},
			}
			for i, o := range outs {
				require.NoError(t, s.SaveOutcome(ctx, run.ID, i, o))
			}
			// duplicate index is ignored
			require.NoError(t, s.SaveOutcome(ctx, run.ID, 0, game.Outcome{Answer: "xxxxx", Rounds: 1, Solved: true}))

			sum, err := s.Summary(ctx, run.ID)
			require.NoError(t, err)
			assert.Equal(t, RunSummary{RunID: "run-1", Strategy: "enumerate", Games: 3, Solved: 2, AvgRounds: 3}, sum)
		})
	}
}

func TestUnknownRun(t *testing.T) {
	ctx := context.Background()
	for name, s := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Summary(ctx, "nope")
			assert.ErrorIs(t, err, ErrUnknownRun)
			err = s.SaveOutcome(ctx, "nope", 0, game.Outcome{Answer: "right"})
			assert.ErrorIs(t, err, ErrUnknownRun)
		})
	}
}

func TestLeaderboard(t *testing.T) {
	ctx := context.Background()
	for name, s := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
			for i, rounds := range []int{4, 2, 3} {
				id := []string{"slow", "fast", "mid"}[i]
				require.NoError(t, s.BeginRun(ctx, Run{ID: id, Strategy: id, MaxRounds: 6, StartedAt: base.Add(time.Duration(i) * time.Minute)}))
				require.NoError(t, s.SaveOutcome(ctx, id, 0, game.Outcome{Answer: "right", Rounds: rounds, Solved: true}))
			}
			require.NoError(t, s.BeginRun(ctx, Run{ID: "lost", Strategy: "lost", MaxRounds: 6, StartedAt: base}))
			require.NoError(t, s.SaveOutcome(ctx, "lost", 0, game.Outcome{Answer: "right", Rounds: 6}))

			lb, err := s.Leaderboard(ctx, 2)
			require.NoError(t, err)
			require.Len(t, lb, 2)
			assert.Equal(t, "fast", lb[0].RunID)
			assert.Equal(t, "mid", lb[1].RunID)
		})
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	s := tempSQLite(t).(*SQLite)
	require.NoError(t, migrate(s.DB(), migrations))

	var n int
	require.NoError(t, s.DB().QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&n))
	assert.Equal(t, 1, n)

	applied, err := schemaApplied(s.DB(), "sql/001_outcomes.sql")
	require.NoError(t, err)
	assert.True(t, applied)
	applied, err = schemaApplied(s.DB(), "sql/999_later.sql")
	require.NoError(t, err)
	assert.False(t, applied)

	var fk int
	require.NoError(t, s.DB().QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
}
