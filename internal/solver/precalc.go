package solver

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

// maxTableRows bounds the precomputed table (rows² bytes).
const maxTableRows = 4096

// tableRanker precomputes the mask index of every (guess, secret) pair the
// first time it scores, then answers later rounds from the table. Pools only
// shrink, so every later pool is a subset of the table's rows; a bitset marks
// which rows are still alive.
type tableRanker struct {
	rows  []Item
	row   map[string]int
	masks []uint8 // masks[g*len(rows)+s] = Compute(rows[s], rows[g]).Index()
	alive *bitset.BitSet
}

func (r *tableRanker) best(pool *Pool) string {
	items := pool.Items()
	if r.rows == nil {
		if len(items) > maxTableRows {
			return bucketRanker{}.best(pool)
		}
		r.build(items)
	}

	r.alive.ClearAll()
	for _, it := range items {
		i, ok := r.row[it.Word]
		if !ok {
			panic(InvariantViolation{Reason: "pool regrew: " + it.Word + " is not in the precomputed table"})
		}
		r.alive.Set(uint(i))
	}

	n, total := len(r.rows), pool.Total()
	var p pick
	for g, ok := r.alive.NextSet(0); ok; g, ok = r.alive.NextSet(g + 1) {
		var b Buckets
		line := r.masks[int(g)*n : int(g+1)*n]
		for s, ok := r.alive.NextSet(0); ok; s, ok = r.alive.NextSet(s + 1) {
			b[line[s]] += r.rows[s].Weight
		}
		cand := r.rows[g]
		p.offer(cand.Word, goodness(cand.Word, &b, cand.Weight, total))
	}
	return p.word
}

func (r *tableRanker) build(items []Item) {
	n := len(items)
	r.rows = append([]Item(nil), items...)
	r.row = make(map[string]int, n)
	for i, it := range r.rows {
		r.row[it.Word] = i
	}
	r.masks = make([]uint8, n*n)
	for g := range r.rows {
		for s := range r.rows {
			r.masks[g*n+s] = uint8(game.Compute(r.rows[s].Word, r.rows[g].Word).Index())
		}
	}
	r.alive = bitset.New(uint(n))
}
