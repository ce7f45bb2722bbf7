package game

import "fmt"

// Play drives guesser against answer for at most maxRounds rounds.
//
// A solved game reports the 1-based round of the winning guess. Running out
// of rounds is not an error: the Outcome comes back with Solved == false.
// A guess outside dict is a broken guesser and is returned as an error
// wrapping ErrNotInDictionary.
func Play(dict Dictionary, answer string, guesser Guesser, maxRounds int) (Outcome, error) {
	g := New(answer, maxRounds)
	out := Outcome{Answer: g.Answer}

	for !g.Finished {
		guess := guesser.Guess(g.History)
		if _, _, err := g.ApplyGuess(guess, dict); err != nil {
			return out, fmt.Errorf("round %d of %q: %w", len(g.History)+1, g.Answer, err)
		}
		out.Guesses = append(out.Guesses, guess)
	}

	out.Rounds = len(g.History)
	out.Solved = g.Won
	return out, nil
}
