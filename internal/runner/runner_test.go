package runner

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func TestSummaryExcludesFailuresFromAverage(t *testing.T) {
	var s Summary
	s.Add(game.Outcome{Answer: "right", Rounds: 2, Solved: true})
	s.Add(game.Outcome{Answer: "wrong", Rounds: 4, Solved: true})
	s.Add(game.Outcome{Answer: "fight", Rounds: 32})

	assert.Equal(t, 3, s.Games)
	assert.Equal(t, 2, s.Solved)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, 3.0, s.Average())
	assert.Equal(t, map[int]int{2: 1, 4: 1}, s.Histogram)

	assert.Equal(t, 0.0, Summary{}.Average())
}

func TestRender(t *testing.T) {
	var s Summary
	for i := 0; i < 4; i++ {
		s.Add(game.Outcome{Rounds: 3, Solved: true})
	}
	s.Add(game.Outcome{Rounds: 2, Solved: true})
	s.Add(game.Outcome{Rounds: 32})

	var buf bytes.Buffer
	require.NoError(t, s.Render(&buf, false))
	out := buf.String()
	assert.Contains(t, out, "  2 | ########## 1\n")
	assert.Contains(t, out, "  3 | ######################################## 4\n")
	assert.Contains(t, out, "failed 1\n")
	assert.Contains(t, out, "games 6, solved 5, average 2.8000\n")
}

func TestRenderMaskPlain(t *testing.T) {
	m := game.Compute("aabbb", "caacc")
	assert.Equal(t, "caacc ICMII", RenderMask("caacc", m, false))
}

func TestRunEmbedded(t *testing.T) {
	c, answers, err := words.Load(context.Background(), words.Source{})
	require.NoError(t, err)

	st := store.NewMemoryStore()
	require.NoError(t, st.BeginRun(context.Background(), store.Run{ID: "r1", Strategy: "enumerate"}))

	var mu sync.Mutex
	done := 0
	r := &Runner{
		Corpus:   c,
		Config:   Config{Strategy: "enumerate", Options: solver.DefaultOptions(), MaxGames: 25, Workers: 4},
		Log:      zerolog.Nop(),
		RunID:    "r1",
		Recorder: st,
		OnDone: func(game.Outcome) {
			mu.Lock()
			done++
			mu.Unlock()
		},
	}
	sum, err := r.Run(context.Background(), answers)
	require.NoError(t, err)
	assert.Equal(t, 25, sum.Games)
	assert.Equal(t, 25, done)
	assert.Equal(t, 25, sum.Solved)
	assert.GreaterOrEqual(t, sum.Average(), 1.0)

	rs, err := st.Summary(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, sum.Games, rs.Games)
	assert.InDelta(t, sum.Average(), rs.AvgRounds, 1e-9)
}

func TestRunIsDeterministicAcrossWorkerCounts(t *testing.T) {
	c, answers, err := words.Load(context.Background(), words.Source{})
	require.NoError(t, err)

	run := func(workers int) Summary {
		r := &Runner{
			Corpus: c,
			Config: Config{Strategy: "precalc", Options: solver.DefaultOptions(), MaxGames: 15, Workers: workers},
			Log:    zerolog.Nop(),
		}
		s, err := r.Run(context.Background(), answers)
		require.NoError(t, err)
		return s
	}
	assert.Equal(t, run(1), run(8))
}

func TestRunFailsWithTightBudget(t *testing.T) {
	c, err := words.NewCorpus([]words.Entry{
		{Word: "tares", Freq: 10},
		{Word: "fight", Freq: 5},
		{Word: "light", Freq: 5},
		{Word: "might", Freq: 5},
	})
	require.NoError(t, err)

	r := &Runner{
		Corpus: c,
		Config: Config{Strategy: "enumerate", Options: solver.DefaultOptions(), MaxRounds: 1},
		Log:    zerolog.Nop(),
	}
	sum, err := r.Run(context.Background(), []string{"tares", "might"})
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Solved)
	assert.Equal(t, 1, sum.Failed)
	assert.Equal(t, 1.0, sum.Average())
}

func TestRunUnknownStrategy(t *testing.T) {
	c, err := words.Embedded()
	require.NoError(t, err)
	r := &Runner{Corpus: c, Config: Config{Strategy: "oracle"}, Log: zerolog.Nop()}
	_, err = r.Run(context.Background(), []string{"tares"})
	assert.ErrorIs(t, err, solver.ErrUnknownStrategy)
}
