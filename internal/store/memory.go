// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Used when no database is configured and in tests.
//
// Characteristics:
//   - Runs and outcomes live in maps keyed by run ID.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

type memory struct {
	mu       sync.RWMutex
	runs     map[string]Run
	order    []string                        // run IDs in BeginRun order
	outcomes map[string]map[int]game.Outcome // run ID → idx → outcome
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{
		runs:     make(map[string]Run),
		outcomes: make(map[string]map[int]game.Outcome),
	}
}

func (m *memory) BeginRun(ctx context.Context, r Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.runs[r.ID]; ok {
		return fmt.Errorf("store: run %s already exists", r.ID)
	}
	m.runs[r.ID] = r
	m.order = append(m.order, r.ID)
	m.outcomes[r.ID] = make(map[int]game.Outcome)
	return nil
}

func (m *memory) SaveOutcome(ctx context.Context, runID string, idx int, out game.Outcome) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	outs, ok := m.outcomes[runID]
	if !ok {
		return fmt.Errorf("store: %w: %s", ErrUnknownRun, runID)
	}
	if _, dup := outs[idx]; !dup {
		out.Guesses = append([]string(nil), out.Guesses...)
		outs[idx] = out
	}
	return nil
}

func (m *memory) Summary(ctx context.Context, runID string) (RunSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.summaryLocked(runID)
}

func (m *memory) summaryLocked(runID string) (RunSummary, error) {
	r, ok := m.runs[runID]
	if !ok {
		return RunSummary{}, fmt.Errorf("store: %w: %s", ErrUnknownRun, runID)
	}
	s := RunSummary{RunID: runID, Strategy: r.Strategy}
	rounds := 0
	for _, out := range m.outcomes[runID] {
		s.Games++
		if out.Solved {
			s.Solved++
			rounds += out.Rounds
		}
	}
	if s.Solved > 0 {
		s.AvgRounds = float64(rounds) / float64(s.Solved)
	}
	return s, nil
}

func (m *memory) Leaderboard(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []RunSummary
	for _, id := range m.order {
		s, _ := m.summaryLocked(id)
		if s.Solved > 0 {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].AvgRounds < out[j].AvgRounds })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memory) Close() error { return nil }
