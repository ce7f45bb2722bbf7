package solver

import (
	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Pool is the set of words still consistent with a game's history.
// It only ever shrinks.
type Pool struct {
	items []Item
	total float64
}

// NewPool weighs every corpus word with w. The corpus is only read.
func NewPool(c *words.Corpus, w Weigher) *Pool {
	entries := c.Entries()
	items := make([]Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Word: e.Word, Freq: e.Freq, Weight: w.Weight(e.Freq)}
	}
	return &Pool{items: items, total: sumWeights(items)}
}

// Apply drops, in place, every item that rec rules out.
func (p *Pool) Apply(rec game.Record) {
	kept := p.items[:0]
	for _, it := range p.items {
		if rec.Matches(it.Word) {
			kept = append(kept, it)
		}
	}
	// clear the tail so dropped strings can be collected
	for i := len(kept); i < len(p.items); i++ {
		p.items[i] = Item{}
	}
	p.items = kept
	p.total = sumWeights(kept)
}

// Items is the current pool in corpus order. Callers must not modify it.
func (p *Pool) Items() []Item { return p.items }

// Len is the number of remaining candidates.
func (p *Pool) Len() int { return len(p.items) }

// Total is the summed weight of the pool.
func (p *Pool) Total() float64 { return p.total }

// Contains reports whether word is still a candidate.
func (p *Pool) Contains(word string) bool {
	for _, it := range p.items {
		if it.Word == word {
			return true
		}
	}
	return false
}

// Filter returns a fresh slice holding the items of pool that rec allows.
// It yields the same items, in the same order, as Pool.Apply.
func Filter(pool []Item, rec game.Record) []Item {
	out := make([]Item, 0, len(pool))
	for _, it := range pool {
		if rec.Matches(it.Word) {
			out = append(out, it)
		}
	}
	return out
}

func sumWeights(items []Item) float64 {
	var t float64
	for _, it := range items {
		t += it.Weight
	}
	return t
}
