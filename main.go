package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/robalobadob/wordle/apps/solver/internal/daily"
	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/runner"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func main() {
	_ = godotenv.Load()

	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg)

	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("solver exited")
	}
}

func setupLogging(cfg config) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.Color {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func run(ctx context.Context, cfg config, stdout io.Writer) error {
	corpus, answers, err := words.Load(ctx, cfg.Source)
	if err != nil {
		return fmt.Errorf("load word lists: %w", err)
	}
	log.Info().
		Int("words", corpus.Len()).
		Int("answers", len(answers)).
		Str("fingerprint", corpus.Fingerprint()).
		Msg("dictionary loaded")

	if cfg.Daily {
		answer := daily.Answer(time.Now(), cfg.DailySalt, answers)
		if answer == "" {
			return errors.New("no answers to pick today's word from")
		}
		log.Info().Str("date", daily.DateKey(time.Now())).Msg("playing the answer of the day")
		answers = []string{answer}
	}

	// resolved once here so every game shares it
	opts := cfg.Options
	if !cfg.OpeningSet && !corpus.Contains(opts.Opening) {
		opts.Opening = ""
	}
	if opts.Opening == "" {
		opts.Opening = solver.Opening(corpus)
		log.Info().Str("opening", opts.Opening).Msg("computed opening word")
	}

	st, err := openStore(cfg.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	rec := store.Run{
		ID:        uuid.NewString(),
		Strategy:  cfg.Strategy,
		Corpus:    corpus.Fingerprint(),
		MaxRounds: cfg.MaxRounds,
		StartedAt: time.Now().UTC(),
	}
	if err := st.BeginRun(ctx, rec); err != nil {
		return err
	}

	games := len(answers)
	if cfg.MaxGames > 0 && cfg.MaxGames < games {
		games = cfg.MaxGames
	}
	var bar *progressbar.ProgressBar
	if cfg.Progress {
		bar = progressbar.Default(int64(games), cfg.Strategy)
	}

	r := &runner.Runner{
		Corpus: corpus,
		Config: runner.Config{
			Strategy:  cfg.Strategy,
			Options:   opts,
			MaxRounds: cfg.MaxRounds,
			MaxGames:  cfg.MaxGames,
			Workers:   cfg.Workers,
		},
		Log:      log.With().Str("run", rec.ID).Str("strategy", cfg.Strategy).Logger(),
		RunID:    rec.ID,
		Recorder: st,
		OnDone: func(out game.Outcome) {
			if bar != nil {
				_ = bar.Add(1)
			}
			if cfg.Show {
				showGame(stdout, out, cfg.Color)
			}
		},
	}

	start := time.Now()
	sum, err := r.Run(ctx, answers)
	if err != nil {
		return err
	}
	if bar != nil {
		_ = bar.Finish()
	}
	log.Info().
		Int("games", sum.Games).
		Int("failed", sum.Failed).
		Float64("average", sum.Average()).
		Dur("elapsed", time.Since(start)).
		Msg("run finished")

	if err := sum.Render(stdout, cfg.Color); err != nil {
		return err
	}
	if cfg.Board > 0 {
		return printLeaderboard(ctx, stdout, st, cfg.Board)
	}
	return nil
}

// showGame prints one finished game. OnDone runs on worker goroutines, so the
// whole game goes out in a single write.
func showGame(w io.Writer, out game.Outcome, colored bool) {
	line := out.Answer + ":"
	for _, g := range out.Guesses {
		line += " " + runner.RenderMask(g, game.Compute(out.Answer, g), colored)
	}
	if !out.Solved {
		line += " (failed)"
	}
	fmt.Fprintln(w, line)
}

func printLeaderboard(ctx context.Context, w io.Writer, st store.Store, n int) error {
	rows, err := st.Leaderboard(ctx, n)
	if err != nil {
		return fmt.Errorf("leaderboard: %w", err)
	}
	for i, r := range rows {
		fmt.Fprintf(w, "%2d. %-10s %.4f (%d/%d solved) %s\n", i+1, r.Strategy, r.AvgRounds, r.Solved, r.Games, r.RunID)
	}
	return nil
}
