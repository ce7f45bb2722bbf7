// internal/solver/score.go
//
// Frequency-weighted entropy scoring.
//
// For a candidate guess g and pool P with total weight T:
//   - every secret s in P lands in the bucket Compute(s, g).Index()
//   - H(g) = -Σ p·log2(p) over non-empty buckets, p = bucket/T
//   - goodness(g) = (weight(g)/T) · H(g)
//
// Goodness only ranks candidates; its absolute value means nothing.

package solver

import (
	"fmt"
	"math"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

// Buckets is pool weight per mask index.
type Buckets [game.NumMasks]float64

// Bucketize spreads pool over the masks guess would produce and also
// returns guess's own weight (0 when guess is not in pool).
func Bucketize(guess string, pool []Item) (b Buckets, self float64) {
	for _, it := range pool {
		b[game.Compute(it.Word, guess).Index()] += it.Weight
		if it.Word == guess {
			self = it.Weight
		}
	}
	return b, self
}

// Entropy is the Shannon entropy, in bits, of the partition b of total.
// Empty buckets are skipped. Sums run in index order so equal buckets give
// bit-identical results whichever way they were filled.
func Entropy(b *Buckets, total float64) float64 {
	var acc float64
	for _, w := range b {
		if w == 0 {
			continue
		}
		p := w / total
		acc += p * math.Log2(p)
	}
	return -acc
}

// Goodness scores guess against pool.
func Goodness(guess string, pool []Item) float64 {
	total := sumWeights(pool)
	b, self := Bucketize(guess, pool)
	return goodness(guess, &b, self, total)
}

// goodness combines a filled bucket array with the self-selection
// probability, checking the invariants first.
func goodness(guess string, b *Buckets, self, total float64) float64 {
	if total <= 0 {
		panic(InvariantViolation{Reason: fmt.Sprintf("scoring %q against a pool with no weight", guess)})
	}
	checkBuckets(guess, b, total)
	return self / total * Entropy(b, total)
}

// checkBuckets asserts the buckets add back up to the pool total. Integral
// weights must match exactly; transformed weights may differ by rounding.
func checkBuckets(guess string, b *Buckets, total float64) {
	var sum float64
	for _, w := range b {
		sum += w
	}
	if math.Abs(sum-total) > 1e-9*total {
		panic(InvariantViolation{Reason: fmt.Sprintf("buckets for %q sum to %v, pool total is %v", guess, sum, total)})
	}
}

// pick tracks the best candidate seen so far. Ties go to the
// lexicographically smallest word.
type pick struct {
	word  string
	score float64
	set   bool
}

func (p *pick) offer(word string, score float64) {
	if !p.set || score > p.score || (score == p.score && word < p.word) {
		p.word, p.score, p.set = word, score, true
	}
}
