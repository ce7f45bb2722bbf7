// internal/game/engine.go
//
// Core game engine for a single Wordle session.
// Responsibilities:
//   - Create new games with a configurable round budget (N x 5).
//   - Validate and apply guesses (length, alphabetic, dictionary membership).
//   - Score guesses using the classic two-pass Wordle algorithm.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Compute is the hot path of every solver; it does not allocate.
//   - randomID() is a compact hex identifier for correlating logs and stored outcomes.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// New constructs a new game instance for answer with the given round budget.
// A non-positive rows value selects DefaultMaxRounds.
func New(answer string, rows int) *Game {
	if rows <= 0 {
		rows = DefaultMaxRounds
	}
	return &Game{
		ID:      randomID(),
		Answer:  strings.ToLower(answer),
		Rows:    rows,
		Cols:    WordLen,
		History: []Record{},
	}
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns: the mask, the new state string ("playing"/"won"/"lost"), or an error.
//
// Validation rules:
//   - Game must not be finished.
//   - Guess must be exactly g.Cols letters and alphabetic a–z.
//   - Guess must be present in dict.
//
// State transitions:
//   - If all tiles are Correct → Finished = true, Won = true.
//   - Else if the number of guesses reaches g.Rows → Finished = true (loss).
func (g *Game) ApplyGuess(guess string, dict Dictionary) (Mask, string, error) {
	if g.Finished {
		return Mask{}, g.state(), ErrGameFinished
	}
	if len(guess) != g.Cols || !isAlpha(guess) {
		return Mask{}, g.state(), fmt.Errorf("%w: %q", ErrInvalidGuess, guess)
	}
	if !dict.Contains(guess) {
		return Mask{}, g.state(), fmt.Errorf("%w: %q", ErrNotInDictionary, guess)
	}

	mask := Compute(g.Answer, guess)
	g.History = append(g.History, Record{Word: guess, Mask: mask})

	if mask.Solved() {
		g.Finished, g.Won = true, true
	} else if len(g.History) >= g.Rows {
		g.Finished = true
	}
	return mask, g.state(), nil
}

// State reports a coarse string representation of the current game state.
func (g *Game) State() string { return g.state() }

func (g *Game) state() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// Compute implements the standard Wordle two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count remaining (non-correct) secret letters by letter index.
//
// Pass 2:
//   - Left to right, for each non-correct guess letter: if there is remaining
//     count for that letter, mark Misplaced and decrement; otherwise Incorrect.
//
// Exact matches are consumed before any Misplaced mark is handed out, so a
// repeated guess letter only turns yellow while unmatched copies remain.
// Both words must be exactly WordLen bytes; anything else panics.
func Compute(secret, guess string) Mask {
	if len(secret) != WordLen || len(guess) != WordLen {
		panic(fmt.Sprintf("game: compute(%q, %q): words must be %d letters", secret, guess, WordLen))
	}
	var res Mask
	var counts [26]uint8

	for i := 0; i < WordLen; i++ {
		if secret[i] == guess[i] {
			res[i] = Correct
		} else {
			res[i] = Incorrect
			if j := idx(secret[i]); j < 26 {
				counts[j]++
			}
		}
	}

	for i := 0; i < WordLen; i++ {
		if res[i] == Correct {
			continue
		}
		if j := idx(guess[i]); j < 26 && counts[j] > 0 {
			res[i] = Misplaced
			counts[j]--
		}
	}
	return res
}

// idx maps a lowercase ASCII letter to 0..25; other bytes land outside that range.
func idx(b byte) int { return int(b - 'a') }

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
