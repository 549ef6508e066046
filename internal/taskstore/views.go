package taskstore

import (
	"math"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// Derived views. Nothing here is stored: every view is recomputed from
// the canonical collection on each call. At this scale the O(n) walk is
// cheaper than any cache-invalidation machinery.

// Counts breaks the collection down by done flag.
// Total always equals Completed + Active.
type Counts struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Active    int `json:"active"`
}

// Tasks returns a copy of the whole collection in insertion order.
func (s *Store) Tasks() []types.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.Task(nil), s.tasks...)
}

// Filter returns the current filter selection.
func (s *Store) Filter() types.Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Filtered returns the subset selected by the current filter, in
// insertion order. No sorting is applied.
func (s *Store) Filtered() []types.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if s.filter.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// Counts returns the per-flag tallies.
func (s *Store) Counts() Counts {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := Counts{Total: len(s.tasks)}
	for _, t := range s.tasks {
		if t.Completed {
			c.Completed++
		} else {
			c.Active++
		}
	}
	return c
}

// CompletionRate returns the completed share as a rounded percentage in
// [0,100]; zero for an empty collection.
func (s *Store) CompletionRate() int {
	c := s.Counts()
	if c.Total == 0 {
		return 0
	}
	return int(math.Round(float64(c.Completed) / float64(c.Total) * 100))
}

// HasTasks reports whether the collection is non-empty.
func (s *Store) HasTasks() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks) > 0
}

// AllCompleted reports whether the collection is non-empty and every
// task is done.
func (s *Store) AllCompleted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.tasks) == 0 {
		return false
	}
	for _, t := range s.tasks {
		if !t.Completed {
			return false
		}
	}
	return true
}
