package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// config is everything main needs. Flags win over environment variables,
// which in turn may come from a .env file.
type config struct {
	Source     words.Source
	Strategy   string
	Options    solver.Options
	OpeningSet bool // opening came from a flag or env, never swapped out
	MaxGames   int
	MaxRounds  int
	Workers    int
	Daily      bool
	DailySalt  string
	DBPath     string
	Progress   bool
	Color      bool
	Show       bool
	Board      int
	LogLevel   string
}

func parseConfig(args []string, stderr io.Writer) (config, error) {
	def := solver.DefaultOptions()
	var c config

	fs := flag.NewFlagSet("solver", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.Source.DictionaryFile, "dict", getEnv("WORDS_DICTIONARY_FILE", ""), "dictionary file, one \"word freq\" pair per line (default: embedded)")
	fs.StringVar(&c.Source.DictionaryTable, "dict-bq", getEnv("WORDS_DICTIONARY_BQ", ""), "BigQuery table project.dataset.table with word/freq columns")
	fs.StringVar(&c.Source.AnswersFile, "answers", getEnv("WORDS_ANSWERS_FILE", ""), "whitespace-separated answers (default: embedded)")
	fs.StringVar(&c.Strategy, "strategy", getEnv("SOLVER_STRATEGY", "enumerate"), "one of "+strings.Join(solver.Names(), ", "))
	fs.StringVar(&c.Options.Opening, "opening", getEnv("SOLVER_OPENING", def.Opening), "first guess; empty computes it from the dictionary")
	fs.IntVar(&c.Options.Cutoff, "cutoff", getEnvInt("SOLVER_CUTOFF", def.Cutoff), "cutoff strategy: pools smaller than this take the most frequent word")
	fs.Float64Var(&c.Options.Exponent, "exponent", getEnvFloat("SOLVER_EXPONENT", def.Exponent), "popular strategy: weight = freq^exponent")
	fs.Float64Var(&c.Options.Blend, "blend", getEnvFloat("SOLVER_BLEND", def.Blend), "sigmoid strategy: 0 = raw frequency, 1 = pure sigmoid")
	fs.Float64Var(&c.Options.Steepness, "steepness", getEnvFloat("SOLVER_STEEPNESS", def.Steepness), "sigmoid strategy: steepness")
	fs.Float64Var(&c.Options.Midpoint, "midpoint", getEnvFloat("SOLVER_MIDPOINT", 0), "sigmoid strategy: midpoint in ln(1+freq); 0 = mean")
	fs.IntVar(&c.MaxGames, "games", getEnvInt("MAX_GAMES", 0), "stop after this many games (0 = all answers)")
	fs.IntVar(&c.MaxRounds, "rounds", getEnvInt("MAX_ROUNDS", 32), "round budget per game")
	fs.IntVar(&c.Workers, "workers", getEnvInt("WORKERS", runtime.NumCPU()), "games played in parallel")
	fs.BoolVar(&c.Daily, "daily", getEnvBool("DAILY", false), "play only today's answer")
	fs.StringVar(&c.DailySalt, "daily-salt", getEnv("DAILY_SALT", "wordle"), "salt for picking today's answer")
	fs.StringVar(&c.DBPath, "db", getEnv("DB_PATH", ""), "SQLite file for outcomes (empty = in memory)")
	fs.BoolVar(&c.Progress, "progress", getEnvBool("PROGRESS", false), "show a progress bar")
	fs.BoolVar(&c.Color, "color", getEnvBool("COLOR", false), "colored, human-friendly output")
	fs.BoolVar(&c.Show, "show", false, "print every game's guesses")
	fs.IntVar(&c.Board, "leaderboard", 0, "print the best N stored runs")
	c.LogLevel = getEnv("LOG_LEVEL", "info")

	if err := fs.Parse(args); err != nil {
		return c, err
	}
	c.OpeningSet = os.Getenv("SOLVER_OPENING") != ""
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "opening" {
			c.OpeningSet = true
		}
	})
	if c.MaxRounds <= 0 {
		return c, fmt.Errorf("-rounds must be positive, got %d", c.MaxRounds)
	}
	if c.MaxGames < 0 {
		return c, fmt.Errorf("-games must not be negative, got %d", c.MaxGames)
	}
	return c, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(k)); err == nil {
		return v
	}
	return def
}

func getEnvFloat(k string, def float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(k), 64); err == nil {
		return v
	}
	return def
}

func getEnvBool(k string, def bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(k)); err == nil {
		return v
	}
	return def
}
