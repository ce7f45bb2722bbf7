// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Correctness: per-letter result of a guess (correct/misplaced/incorrect).
//   - Mask: the five-letter feedback pattern for one guess.
//   - Record: one (guess, mask) pair of a game's history.
//   - Game: state for a single in-progress or finished game.
//   - Outcome: what a finished game reports to its caller.

package game

import "errors"

const (
	// WordLen is the fixed number of letters in every word.
	WordLen = 5

	// NumMasks is the number of distinct masks (3^WordLen).
	NumMasks = 243

	// DefaultMaxRounds bounds a solver-driven game.
	DefaultMaxRounds = 32
)

// Correctness represents the evaluation result for a single letter in a guess.
// The numeric values double as base-3 digits in Mask.Index.
type Correctness uint8

const (
	Correct   Correctness = iota // green
	Misplaced                    // yellow
	Incorrect                    // grey
)

// Mask is the per-position feedback for one guess.
type Mask [WordLen]Correctness

// Record is a guess together with the mask it received.
type Record struct {
	Word string
	Mask Mask
}

// Dictionary is the membership check a game validates guesses against.
type Dictionary interface {
	Contains(word string) bool
}

// Guesser picks the next word given everything seen so far in one game.
// Implementations are used by a single game and need not be concurrency-safe.
type Guesser interface {
	Guess(history []Record) string
}

// Game holds the state of a single Wordle game session.
type Game struct {
	ID       string   // Unique game identifier (random hex string).
	Answer   string   // The solution word (always lowercase).
	Rows     int      // Maximum number of guesses allowed.
	Cols     int      // Number of letters per word.
	History  []Record // Guesses made so far with their masks, oldest first.
	Finished bool     // True once the game is over (won or lost).
	Won      bool     // True if the game was finished with a win.
}

// Outcome summarises a finished game.
// Solved is false when the round budget ran out; Rounds is then the budget.
type Outcome struct {
	Answer  string
	Guesses []string
	Rounds  int
	Solved  bool
}

var (
	ErrGameFinished    = errors.New("game finished")
	ErrInvalidGuess    = errors.New("invalid guess")
	ErrNotInDictionary = errors.New("not in word list")
)
