// internal/solver/strategy.go
//
// Strategy registry. Every strategy is the same Selector skeleton with a
// different weighting/ranking/cutoff policy:
//
//   naive     raw weights, buckets recomputed mask by mask
//   enumerate raw weights, one pass into a 243-slot array
//   precalc   raw weights, pairwise mask table built once per game
//   cutoff    enumerate, but small pools return the most frequent word
//   popular   enumerate over freq^Exponent
//   sigmoid   enumerate over a logistic squash of log-frequency
//
// With Options.Neutral() every strategy picks the same word as enumerate.

package solver

import (
	"fmt"
	"sort"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

type factory func(c *words.Corpus, o Options) *Selector

var strategies = map[string]factory{
	"naive":     NewNaive,
	"enumerate": NewEnumerate,
	"precalc":   NewPrecalc,
	"cutoff":    NewCutoff,
	"popular":   NewPopular,
	"sigmoid":   NewSigmoid,
}

// Names lists the registered strategies, sorted.
func Names() []string {
	out := make([]string, 0, len(strategies))
	for n := range strategies {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// New builds the named strategy for one game. An empty o.Opening is resolved
// with Opening, which scores the whole corpus when it lacks DefaultOpening;
// callers running many games should resolve it once up front.
func New(name string, c *words.Corpus, o Options) (*Selector, error) {
	f, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	if o.Opening == "" {
		o.Opening = Opening(c)
	}
	if !c.Contains(o.Opening) {
		return nil, fmt.Errorf("%w: %q", ErrBadOpening, o.Opening)
	}
	return f(c, o), nil
}

// Opening returns DefaultOpening when c has it, otherwise the best first
// guess for c under raw weights.
func Opening(c *words.Corpus) string {
	if c.Contains(DefaultOpening) {
		return DefaultOpening
	}
	pool := NewPool(c, Raw{})
	switch {
	case pool.Len() == 0:
		return ""
	case pool.Total() == 0:
		return firstWord(pool.Items())
	}
	return bucketRanker{}.best(pool)
}

// NewNaive rebuilds every bucket by re-filtering the pool once per mask.
func NewNaive(c *words.Corpus, o Options) *Selector {
	return newSelector("naive", c, o, Raw{}, &naiveRanker{masks: game.AllMasks()})
}

// NewEnumerate fills all 243 buckets in a single pass per candidate.
func NewEnumerate(c *words.Corpus, o Options) *Selector {
	return newSelector("enumerate", c, o, Raw{}, bucketRanker{})
}

// NewPrecalc answers every round from a pairwise mask table built on the
// first scored round.
func NewPrecalc(c *words.Corpus, o Options) *Selector {
	return newSelector("precalc", c, o, Raw{}, &tableRanker{})
}

// NewCutoff plays the most frequent candidate once the pool has fewer than
// o.Cutoff words.
func NewCutoff(c *words.Corpus, o Options) *Selector {
	s := newSelector("cutoff", c, o, Raw{}, bucketRanker{})
	s.cutoff = o.Cutoff
	return s
}

// NewPopular weighs words by freq^o.Exponent. A non-positive exponent
// falls back to 1.
func NewPopular(c *words.Corpus, o Options) *Selector {
	exp := o.Exponent
	if exp <= 0 {
		exp = 1
	}
	return newSelector("popular", c, o, Power{Exp: exp}, bucketRanker{})
}

// NewSigmoid weighs words with the logistic blend configured by o.
func NewSigmoid(c *words.Corpus, o Options) *Selector {
	return newSelector("sigmoid", c, o, NewLogistic(c, o), bucketRanker{})
}
