// Package taskstore implements the entity collection store: it owns the
// task list, the filter selection, and the user settings, mirrors each of
// them through a typed durable binding, and recomputes derived views on
// demand. All mutations run synchronously to completion; the only
// asynchrony is each binding's cancellable debounce timer.
//
// One store instance per set of reserved keys per process. The store is
// built by the composition root and passed by reference; there is no
// global instance.
package taskstore

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/pantry/internal/adapter"
	"github.com/mesh-intelligence/pantry/internal/binding"
	"github.com/mesh-intelligence/pantry/pkg/types"
)

// Debounce windows per binding. Filter writes are near-instant because
// filter changes must feel immediate; settings writes are the laziest.
const (
	EntitySaveDelay   = 500 * time.Millisecond
	FilterSaveDelay   = 100 * time.Millisecond
	SettingsSaveDelay = 1000 * time.Millisecond
)

// Options configures a Store. The zero value selects real time, UUID v7
// ids, the standard debounce windows, and auto-save enabled.
type Options struct {
	// Clock supplies timestamps; defaults to time.Now.
	Clock func() time.Time

	// NewID generates task ids; defaults to UUID v7 (time+random, so
	// collision probability is negligible).
	NewID func() string

	// DisableAutoSave turns the debounced auto-save pipeline off;
	// persistence then happens only through explicit Flush/Close.
	DisableAutoSave bool

	// Debounce window overrides; zero selects the standard windows.
	EntitySaveDelay   time.Duration
	FilterSaveDelay   time.Duration
	SettingsSaveDelay time.Duration
}

// Store is the entity collection store.
type Store struct {
	mu sync.Mutex

	ad    *adapter.Adapter
	clock func() time.Time
	newID func() string

	tasks       []types.Task
	filter      types.Filter
	loading     bool
	initialized bool
	lastErr     string

	entities *binding.Binding[[]types.Task]
	filterB  *binding.Binding[types.Filter]
	settings *binding.Binding[types.Settings]
}

// New creates a store over the given adapter. Call Load before mutating;
// auto-save stays detached until the first load completes so that default
// state can never overwrite real stored data during startup.
func New(ad *adapter.Adapter, opts Options) *Store {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = newUUID
	}
	if opts.EntitySaveDelay <= 0 {
		opts.EntitySaveDelay = EntitySaveDelay
	}
	if opts.FilterSaveDelay <= 0 {
		opts.FilterSaveDelay = FilterSaveDelay
	}
	if opts.SettingsSaveDelay <= 0 {
		opts.SettingsSaveDelay = SettingsSaveDelay
	}

	s := &Store{
		ad:     ad,
		clock:  opts.Clock,
		newID:  opts.NewID,
		filter: types.DefaultFilter,
	}
	autoSave := !opts.DisableAutoSave
	s.entities = binding.New(ad, types.KeyEntities, []types.Task{}, binding.Options[[]types.Task]{
		AutoSave:  autoSave,
		SaveDelay: opts.EntitySaveDelay,
	})
	s.filterB = binding.New(ad, types.KeyFilter, types.DefaultFilter, binding.Options[types.Filter]{
		AutoSave:  autoSave,
		SaveDelay: opts.FilterSaveDelay,
	})
	s.settings = binding.New(ad, types.KeySettings, types.DefaultSettings(), binding.Options[types.Settings]{
		AutoSave:  autoSave,
		SaveDelay: opts.SettingsSaveDelay,
	})
	return s
}

// newUUID generates a UUID v7 string.
func newUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Load reads the three bindings into memory. The bindings load
// independently: a failure in one is folded into a composite error
// without discarding a successful load of another. Load always finishes
// with the store initialized and not loading, and only then does the
// auto-save pipeline engage.
func (s *Store) Load() error {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()

	var errs []error
	if err := s.entities.Load(); err != nil {
		errs = append(errs, fmt.Errorf("load tasks: %w", err))
	}
	if err := s.filterB.Load(); err != nil {
		errs = append(errs, fmt.Errorf("load filter: %w", err))
	}
	if err := s.settings.Load(); err != nil {
		errs = append(errs, fmt.Errorf("load settings: %w", err))
	}

	tasks := s.entities.Value()
	filter := s.filterB.Value()
	if !filter.Valid() {
		filter = types.DefaultFilter
	}

	err := errors.Join(errs...)

	s.mu.Lock()
	s.tasks = append([]types.Task(nil), tasks...)
	s.filter = filter
	s.loading = false
	s.initialized = true
	if err != nil {
		s.lastErr = err.Error()
	}
	s.mu.Unlock()
	return err
}

// Initialized reports whether the first load has completed.
func (s *Store) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// Loading reports whether a load is in progress.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the blunt error string for simple display. It holds the
// most recent failure only; each new failure overwrites it.
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// ClearError clears the blunt error string.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
}

// Snapshot is a structurally independent copy of the observable state.
type Snapshot struct {
	Tasks   []types.Task
	Filter  types.Filter
	Loading bool
	Err     string
}

// Snapshot returns a copy of the current state. Mutating the snapshot
// never affects live state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Tasks:   append([]types.Task(nil), s.tasks...),
		Filter:  s.filter,
		Loading: s.loading,
		Err:     s.lastErr,
	}
}

// Flush writes every pending debounced change now.
func (s *Store) Flush() error {
	return errors.Join(
		s.entities.Flush(),
		s.filterB.Flush(),
		s.settings.Flush(),
	)
}

// Close flushes pending writes and detaches the bindings.
func (s *Store) Close() error {
	return errors.Join(
		s.entities.Close(),
		s.filterB.Close(),
		s.settings.Close(),
	)
}

// markDirtyLocked hands the named binding a fresh copy of its canonical
// state, which schedules the debounced write. Every mutating operation
// funnels through here; the gate on initialized keeps startup defaults
// from ever overwriting stored data. Caller holds s.mu.
func (s *Store) markDirtyLocked(key string) {
	if !s.initialized {
		return
	}
	switch key {
	case types.KeyEntities:
		s.entities.Set(append([]types.Task(nil), s.tasks...))
	case types.KeyFilter:
		s.filterB.Set(s.filter)
	case types.KeySettings:
		s.settings.MarkDirty()
	}
}

// failLocked records err in the blunt error field and returns it.
// Caller holds s.mu.
func (s *Store) failLocked(err error) error {
	s.lastErr = err.Error()
	return err
}
