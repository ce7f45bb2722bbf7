package solver

import (
	"math"

	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Weigher maps a raw frequency to the weight used for probabilities.
type Weigher interface {
	Weight(freq uint64) float64
}

// Raw uses the frequency unchanged.
type Raw struct{}

// Weight returns freq as a float.
func (Raw) Weight(freq uint64) float64 { return float64(freq) }

// Power raises the frequency to Exp; Exp > 1 favours common words.
type Power struct{ Exp float64 }

// Weight returns freq^Exp.
func (p Power) Weight(freq uint64) float64 {
	return math.Pow(float64(freq), p.Exp)
}

// Logistic squashes log-frequency through a sigmoid so very common and very
// rare words end up closer together, then blends with the raw frequency.
type Logistic struct {
	Blend     float64
	Steepness float64
	Midpoint  float64
	Scale     float64 // usually the corpus' largest frequency
}

// Weight blends freq with Scale·σ(Steepness·(ln(1+freq) − Midpoint)).
// A zero Blend returns freq exactly.
func (l Logistic) Weight(freq uint64) float64 {
	f := float64(freq)
	if l.Blend == 0 {
		return f
	}
	s := 1 / (1 + math.Exp(-l.Steepness*(math.Log1p(f)-l.Midpoint)))
	return (1-l.Blend)*f + l.Blend*l.Scale*s
}

// NewLogistic fills in the corpus-dependent parts of the sigmoid policy.
func NewLogistic(c *words.Corpus, o Options) Logistic {
	mid := o.Midpoint
	if mid == 0 && c.Len() > 0 {
		mid = math.Log1p(float64(c.Total()) / float64(c.Len()))
	}
	scale := float64(c.MaxFreq())
	if scale == 0 {
		scale = 1
	}
	return Logistic{Blend: o.Blend, Steepness: o.Steepness, Midpoint: mid, Scale: scale}
}
