// internal/solver/selector.go
//
// The entropy-maximisation skeleton every strategy shares.
//
// A Selector owns one game's Pool. On each call it folds any new history
// records into the pool, then asks its ranker for the best word among the
// remaining candidates. Scoring is restricted to the pool, never the whole
// corpus: a candidate that cannot be the secret is never guessed.
//
// Variants differ only in:
//   - how the pool is weighted (Weigher),
//   - how a round is ranked (ranker),
//   - whether small pools short-circuit (cutoff).

package solver

import (
	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// ranker returns the best-scoring word of a non-empty pool.
type ranker interface {
	best(pool *Pool) string
}

// Selector implements game.Guesser for a single game.
type Selector struct {
	name    string
	opening string
	cutoff  int
	pool    *Pool
	rank    ranker
	applied int
}

var _ game.Guesser = (*Selector)(nil)

func newSelector(name string, c *words.Corpus, o Options, w Weigher, r ranker) *Selector {
	return &Selector{
		name:    name,
		opening: o.Opening,
		pool:    NewPool(c, w),
		rank:    r,
	}
}

// Name is the registry name of the strategy.
func (s *Selector) Name() string { return s.name }

// Pool exposes the candidate pool, mainly for tests and diagnostics.
func (s *Selector) Pool() *Pool { return s.pool }

// Guess returns the opening word on an empty history; otherwise it narrows
// the pool by the records it has not seen yet and returns the best candidate.
func (s *Selector) Guess(history []game.Record) string {
	if len(history) < s.applied {
		panic(InvariantViolation{Reason: "history shrank between guesses"})
	}
	for _, rec := range history[s.applied:] {
		s.pool.Apply(rec)
	}
	s.applied = len(history)

	if len(history) == 0 {
		return s.opening
	}
	if s.pool.Len() == 0 {
		panic(InvariantViolation{Reason: "candidate pool is empty; the secret was filtered out"})
	}
	if s.pool.Total() == 0 {
		// every survivor has zero weight, so entropy has nothing to rank
		return firstWord(s.pool.Items())
	}
	if s.pool.Len() < s.cutoff {
		return mostFrequent(s.pool.Items())
	}
	return s.rank.best(s.pool)
}

// mostFrequent returns the highest-frequency item, smallest word on ties.
func mostFrequent(items []Item) string {
	var p pick
	for _, it := range items {
		p.offer(it.Word, float64(it.Freq))
	}
	return p.word
}

// firstWord returns the lexicographically smallest word of items.
func firstWord(items []Item) string {
	var p pick
	for _, it := range items {
		p.offer(it.Word, 0)
	}
	return p.word
}

// bucketRanker scores each candidate with one pass over the pool into a
// fixed 243-slot array.
type bucketRanker struct{}

func (bucketRanker) best(pool *Pool) string {
	items, total := pool.Items(), pool.Total()
	var p pick
	for _, cand := range items {
		b, self := Bucketize(cand.Word, items)
		p.offer(cand.Word, goodness(cand.Word, &b, self, total))
	}
	return p.word
}

// naiveRanker recomputes every bucket from scratch: for each possible mask
// it re-filters the pool and sums whatever survives.
type naiveRanker struct {
	masks []game.Mask
}

func (r *naiveRanker) best(pool *Pool) string {
	items, total := pool.Items(), pool.Total()
	var p pick
	for _, cand := range items {
		var b Buckets
		for _, m := range r.masks {
			rec := game.Record{Word: cand.Word, Mask: m}
			var in float64
			for _, it := range items {
				if rec.Matches(it.Word) {
					in += it.Weight
				}
			}
			b[m.Index()] = in
		}
		p.offer(cand.Word, goodness(cand.Word, &b, cand.Weight, total))
	}
	return p.word
}
