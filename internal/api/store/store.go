// Package store keeps recently completed simulation runs in memory so the API
// can serve per-day drill-downs without re-simulating.
package store

import (
	"sync"
	"time"

	"solar-dispatch/internal/analysis"
	"solar-dispatch/internal/model"
)

// Run is one stored simulation run.
type Run struct {
	ID        string
	CreatedAt time.Time
	Plant     model.PlantConfig
	Summary   analysis.RunSummary
	// Days holds the full per-day dispatch traces, keyed by date.
	Days map[string]*model.DayResult
}

// RunStore is a bounded, mutex-guarded in-memory store of recent runs.
// When full, the oldest run is evicted.
type RunStore struct {
	mu      sync.RWMutex
	runs    map[string]*Run
	order   []string // insertion order, oldest first
	maxRuns int
}

func NewRunStore(maxRuns int) *RunStore {
	if maxRuns < 1 {
		maxRuns = 1
	}
	return &RunStore{
		runs:    make(map[string]*Run),
		maxRuns: maxRuns,
	}
}

func (s *RunStore) Put(run *Run) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.runs[run.ID]; !exists {
		s.order = append(s.order, run.ID)
	}
	s.runs[run.ID] = run

	for len(s.order) > s.maxRuns {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.runs, oldest)
	}
}

func (s *RunStore) Get(id string) (*Run, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	return run, ok
}

func (s *RunStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.runs)
}
