// internal/runner/runner.go
//
// Plays many independent games with one strategy.
// Responsibilities:
//   - Build a fresh selector per game; the corpus is the only shared state.
//   - Fan games out over a bounded errgroup.
//   - Hand every outcome, in answer order, to an optional Recorder.
//   - Aggregate a Summary (histogram, average over solved games).

package runner

import (
	"context"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Config selects the strategy and the limits of a run.
type Config struct {
	Strategy  string
	Options   solver.Options
	MaxRounds int // per game; 0 = game.DefaultMaxRounds
	MaxGames  int // 0 = every answer
	Workers   int // 0 = runtime.NumCPU()
}

// Recorder receives finished games. store.Store satisfies it.
type Recorder interface {
	SaveOutcome(ctx context.Context, runID string, idx int, out game.Outcome) error
}

// Runner plays answers against one corpus.
type Runner struct {
	Corpus   *words.Corpus
	Config   Config
	Log      zerolog.Logger
	RunID    string
	Recorder Recorder           // optional
	OnDone   func(game.Outcome) // optional; called from worker goroutines
}

// Run plays every answer (up to MaxGames) and returns the aggregate.
// The first error (unknown strategy, a guess outside the dictionary, a
// recorder failure) stops scheduling further games and is returned.
func (r *Runner) Run(ctx context.Context, answers []string) (Summary, error) {
	cfg := r.Config
	if cfg.MaxGames > 0 && cfg.MaxGames < len(answers) {
		answers = answers[:cfg.MaxGames]
	}
	if cfg.MaxRounds <= 0 {
		cfg.MaxRounds = game.DefaultMaxRounds
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Options.Opening == "" {
		cfg.Options.Opening = solver.Opening(r.Corpus)
	}
	// fail fast on a bad strategy or opening before spawning anything
	if _, err := solver.New(cfg.Strategy, r.Corpus, cfg.Options); err != nil {
		return Summary{}, err
	}

	results := make([]game.Outcome, len(answers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i, answer := range answers {
		i, answer := i, answer
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			sel, err := solver.New(cfg.Strategy, r.Corpus, cfg.Options)
			if err != nil {
				return err
			}
			out, err := game.Play(r.Corpus, answer, sel, cfg.MaxRounds)
			if err != nil {
				return fmt.Errorf("runner: game %d: %w", i, err)
			}
			results[i] = out
			if r.OnDone != nil {
				r.OnDone(out)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	var sum Summary
	for i, out := range results {
		if out.Solved {
			r.Log.Info().Str("answer", out.Answer).Int("rounds", out.Rounds).Msg("guessed")
		} else {
			r.Log.Warn().Str("answer", out.Answer).Int("budget", cfg.MaxRounds).Msg("failed to guess")
		}
		if r.Recorder != nil {
			if err := r.Recorder.SaveOutcome(ctx, r.RunID, i, out); err != nil {
				return sum, err
			}
		}
		sum.Add(out)
	}
	return sum, nil
}
