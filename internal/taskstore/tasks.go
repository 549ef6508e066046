package taskstore

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// Add validates the raw title and appends a new task. The collection is
// unchanged on validation failure.
func (s *Store) Add(rawTitle string) (types.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := types.NewTask(s.newID(), rawTitle, s.clock())
	if err != nil {
		return types.Task{}, s.failLocked(err)
	}
	s.tasks = append(s.tasks, task)
	s.markDirtyLocked(types.KeyEntities)
	return task, nil
}

// AddMany creates one task per usable title, all sharing one creation
// timestamp. Empty and whitespace-only titles are dropped, as are titles
// failing length validation. When nothing usable remains the collection
// is unchanged and the blunt error is set.
func (s *Store) AddMany(rawTitles []string) ([]types.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	var created []types.Task
	for _, raw := range rawTitles {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		task, err := types.NewTask(s.newID(), raw, now)
		if err != nil {
			continue
		}
		created = append(created, task)
	}
	if len(created) == 0 {
		return nil, s.failLocked(fmt.Errorf("no usable titles: %w", types.ErrEmptyTitle))
	}

	s.tasks = append(s.tasks, created...)
	s.markDirtyLocked(types.KeyEntities)
	return created, nil
}

// Toggle flips the done flag of the task with the given id.
// Returns ErrNotFound if the id is absent; the collection is unchanged.
func (s *Store) Toggle(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return s.failLocked(fmt.Errorf("task %q: %w", id, types.ErrNotFound))
	}
	s.tasks[i].Toggle(s.clock())
	s.markDirtyLocked(types.KeyEntities)
	return nil
}

// Update replaces the title of the task with the given id, re-applying
// title validation. Returns ErrNotFound if the id is absent.
func (s *Store) Update(id, rawTitle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return s.failLocked(fmt.Errorf("task %q: %w", id, types.ErrNotFound))
	}
	if err := s.tasks[i].Rename(rawTitle, s.clock()); err != nil {
		return s.failLocked(err)
	}
	s.markDirtyLocked(types.KeyEntities)
	return nil
}

// Delete removes the task with the given id, preserving the order of the
// remainder. Returns ErrNotFound if the id is absent.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return s.failLocked(fmt.Errorf("task %q: %w", id, types.ErrNotFound))
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.markDirtyLocked(types.KeyEntities)
	return nil
}

// ToggleAll sets the done flag of every task to completed. Tasks already
// matching are left untouched so their timestamps do not churn. Returns
// the number of tasks that changed.
func (s *Store) ToggleAll(completed bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	changed := 0
	for i := range s.tasks {
		if s.tasks[i].SetCompleted(completed, now) {
			changed++
		}
	}
	if changed > 0 {
		s.markDirtyLocked(types.KeyEntities)
	}
	return changed
}

// ClearCompleted removes every completed task and returns the removed
// count (zero when there was nothing to remove).
func (s *Store) ClearCompleted() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	removed := len(s.tasks) - len(kept)
	s.tasks = kept
	if removed > 0 {
		s.markDirtyLocked(types.KeyEntities)
	}
	return removed
}

// ClearAll empties the collection and returns the removed count.
func (s *Store) ClearAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := len(s.tasks)
	s.tasks = nil
	if removed > 0 {
		s.markDirtyLocked(types.KeyEntities)
	}
	return removed
}

// SetFilter replaces the filter selection and clears the blunt error.
// Returns ErrInvalidFilter for unrecognized values.
func (s *Store) SetFilter(f types.Filter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !f.Valid() {
		return s.failLocked(fmt.Errorf("filter %q: %w", f, types.ErrInvalidFilter))
	}
	s.filter = f
	s.lastErr = ""
	s.markDirtyLocked(types.KeyFilter)
	return nil
}

// Get returns the task with the given id.
func (s *Store) Get(id string) (types.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return types.Task{}, fmt.Errorf("task %q: %w", id, types.ErrNotFound)
	}
	return s.tasks[i], nil
}

// indexLocked returns the position of the task with the given id, or -1.
// Caller holds s.mu.
func (s *Store) indexLocked(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
