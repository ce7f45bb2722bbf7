package solver

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func embedded(t *testing.T) *words.Corpus {
	t.Helper()
	c, err := words.Embedded()
	require.NoError(t, err)
	return c
}

func corpusOf(t *testing.T, entries ...words.Entry) *words.Corpus {
	t.Helper()
	c, err := words.NewCorpus(entries)
	require.NoError(t, err)
	return c
}

func TestEntropy(t *testing.T) {
	var b Buckets
	b[0] = 10
	assert.Equal(t, 0.0, Entropy(&b, 10))

	b = Buckets{}
	b[1], b[7], b[42], b[200] = 5, 5, 5, 5
	assert.InDelta(t, 2.0, Entropy(&b, 20), 1e-12)

	b = Buckets{}
	b[3], b[9] = 1, 3
	want := -(0.25*math.Log2(0.25) + 0.75*math.Log2(0.75))
	assert.InDelta(t, want, Entropy(&b, 4), 1e-12)
}

func TestBucketsSumToPoolTotal(t *testing.T) {
	c := embedded(t)
	pool := NewPool(c, Raw{})
	pool.Apply(game.Record{Word: "tares", Mask: game.Compute("crane", "tares")})
	require.NotZero(t, pool.Len())

	for _, items := range [][]Item{NewPool(c, Raw{}).Items(), pool.Items()} {
		total := sumWeights(items)
		for _, cand := range items {
			b, _ := Bucketize(cand.Word, items)
			var sum float64
			for _, w := range b {
				sum += w
			}
			require.Equal(t, total, sum, cand.Word)
		}
	}
}

func TestGoodnessSelfProbability(t *testing.T) {
	c := corpusOf(t,
		words.Entry{Word: "right", Freq: 3},
		words.Entry{Word: "wrong", Freq: 1},
	)
	items := NewPool(c, Raw{}).Items()

	// each guess splits the two words apart: one bit of entropy
	assert.InDelta(t, 0.75*entropy2(0.75), Goodness("right", items), 1e-12)
	assert.InDelta(t, 0.25*entropy2(0.75), Goodness("wrong", items), 1e-12)
	assert.Equal(t, 0.0, Goodness("tares", items), "not in pool, so no chance of being the secret")
}

func entropy2(p float64) float64 {
	return -(p*math.Log2(p) + (1-p)*math.Log2(1-p))
}

func TestGoodnessPanicsOnEmptyPool(t *testing.T) {
	assert.PanicsWithValue(t,
		InvariantViolation{Reason: `scoring "tares" against a pool with no weight`},
		func() { Goodness("tares", nil) })
}

func TestFilterIdempotentAndMatchesApply(t *testing.T) {
	c := embedded(t)
	rec := game.Record{Word: "tares", Mask: game.Compute("house", "tares")}

	once := Filter(NewPool(c, Raw{}).Items(), rec)
	twice := Filter(once, rec)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("filter not idempotent (-once +twice):\n%s", diff)
	}

	p := NewPool(c, Raw{})
	p.Apply(rec)
	if diff := cmp.Diff(once, p.Items()); diff != "" {
		t.Fatalf("rebuild and in-place differ (-fresh +in-place):\n%s", diff)
	}
	assert.True(t, p.Contains("house"))
	assert.Equal(t, sumWeights(once), p.Total())
}

func TestWeighers(t *testing.T) {
	assert.Equal(t, 1234.0, Raw{}.Weight(1234))
	assert.Equal(t, 1234.0, Power{Exp: 1}.Weight(1234))
	assert.Equal(t, 100.0, Power{Exp: 2}.Weight(10))

	c := embedded(t)
	neutral := NewLogistic(c, Options{Blend: 0, Steepness: 1})
	assert.Equal(t, 987654.0, neutral.Weight(987654))

	squash := NewLogistic(c, Options{Blend: 1, Steepness: 1})
	lo, hi := squash.Weight(10), squash.Weight(c.MaxFreq())
	assert.Less(t, lo, hi, "still monotonic")
	assert.Less(t, hi/lo, float64(c.MaxFreq())/10, "compresses the range")
}
