package taskstore

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pantry/internal/adapter"
	"github.com/mesh-intelligence/pantry/internal/kv"
	"github.com/mesh-intelligence/pantry/pkg/types"
)

// countingKV counts writes per key.
type countingKV struct {
	types.KV
	mu     sync.Mutex
	writes map[string]int
}

func newCountingKV() *countingKV {
	return &countingKV{KV: kv.NewMemory(), writes: make(map[string]int)}
}

func (c *countingKV) Set(key, value string) error {
	c.mu.Lock()
	c.writes[key]++
	c.mu.Unlock()
	return c.KV.Set(key, value)
}

func (c *countingKV) writeCount(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writes[key]
}

// testClock hands out strictly increasing timestamps.
func testClock() func() time.Time {
	var mu sync.Mutex
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Second)
		return now
	}
}

// testIDs hands out sequential ids.
func testIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("task-%d", n)
	}
}

// newTestStore builds a loaded store over a counting memory backend with
// short debounce windows.
func newTestStore(t *testing.T) (*Store, *countingKV) {
	t.Helper()
	store := newCountingKV()
	s := New(adapter.New(store, 0), Options{
		Clock:             testClock(),
		NewID:             testIDs(),
		EntitySaveDelay:   20 * time.Millisecond,
		FilterSaveDelay:   10 * time.Millisecond,
		SettingsSaveDelay: 20 * time.Millisecond,
	})
	require.NoError(t, s.Load())
	t.Cleanup(func() { _ = s.Close() })
	return s, store
}

func TestAddTrimsTitle(t *testing.T) {
	s, _ := newTestStore(t)

	task, err := s.Add("  Buy milk  ")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", task.Title)
	assert.False(t, task.Completed)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)
	assert.Equal(t, 1, s.Counts().Total)
}

func TestAddEmptyTitleRejected(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Add("   ")
	assert.ErrorIs(t, err, types.ErrEmptyTitle)
	assert.Equal(t, 0, s.Counts().Total)
	assert.NotEmpty(t, s.Err())
}

func TestAddGeneratesDistinctIDs(t *testing.T) {
	s, _ := newTestStore(t)

	for i := 0; i < 10; i++ {
		_, err := s.Add(fmt.Sprintf("task %d", i))
		require.NoError(t, err)
	}
	seen := make(map[string]bool)
	for _, task := range s.Tasks() {
		assert.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
	}
}

func TestAddMany(t *testing.T) {
	s, _ := newTestStore(t)

	created, err := s.AddMany([]string{"one", "  ", "two", "", "three"})
	require.NoError(t, err)
	require.Len(t, created, 3)
	// One shared creation timestamp for the batch.
	assert.Equal(t, created[0].CreatedAt, created[1].CreatedAt)
	assert.Equal(t, created[0].CreatedAt, created[2].CreatedAt)
	assert.Equal(t, 3, s.Counts().Total)
}

func TestAddManyNothingUsable(t *testing.T) {
	s, _ := newTestStore(t)

	created, err := s.AddMany([]string{"", "   ", "\t"})
	assert.ErrorIs(t, err, types.ErrEmptyTitle)
	assert.Empty(t, created)
	assert.Equal(t, 0, s.Counts().Total)
	assert.NotEmpty(t, s.Err())
}

func TestToggle(t *testing.T) {
	s, _ := newTestStore(t)
	task, err := s.Add("Buy milk")
	require.NoError(t, err)

	require.NoError(t, s.Toggle(task.ID))
	got, err := s.Get(task.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)
	assert.True(t, got.UpdatedAt.After(task.UpdatedAt))

	require.NoError(t, s.Toggle(task.ID))
	got, err = s.Get(task.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed)
}

func TestToggleMissingID(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.Add("Buy milk")
	require.NoError(t, err)

	before := s.Snapshot()
	err = s.Toggle("missing")
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.NotEmpty(t, s.Err())
	assert.Equal(t, before.Tasks, s.Snapshot().Tasks)
}

func TestUpdate(t *testing.T) {
	s, _ := newTestStore(t)
	task, err := s.Add("Buy milk")
	require.NoError(t, err)

	require.NoError(t, s.Update(task.ID, "  Buy bread  "))
	got, err := s.Get(task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy bread", got.Title)
	assert.Equal(t, task.CreatedAt, got.CreatedAt)

	// Title validation re-applies on update.
	assert.ErrorIs(t, s.Update(task.ID, "  "), types.ErrEmptyTitle)
	assert.ErrorIs(t, s.Update("missing", "title"), types.ErrNotFound)
}

func TestDelete(t *testing.T) {
	s, _ := newTestStore(t)
	a, _ := s.Add("A")
	b, _ := s.Add("B")
	c, _ := s.Add("C")

	require.NoError(t, s.Delete(b.ID))
	tasks := s.Tasks()
	require.Len(t, tasks, 2)
	// Order of the remainder is preserved.
	assert.Equal(t, a.ID, tasks[0].ID)
	assert.Equal(t, c.ID, tasks[1].ID)

	assert.ErrorIs(t, s.Delete(b.ID), types.ErrNotFound)
}

func TestToggleAllSkipsMatching(t *testing.T) {
	s, _ := newTestStore(t)
	a, _ := s.Add("A")
	b, _ := s.Add("B")
	require.NoError(t, s.Toggle(b.ID))
	bDone, _ := s.Get(b.ID)

	// Only A changes; B already matches and keeps its timestamp.
	assert.Equal(t, 1, s.ToggleAll(true))
	gotA, _ := s.Get(a.ID)
	gotB, _ := s.Get(b.ID)
	assert.True(t, gotA.Completed)
	assert.Equal(t, bDone.UpdatedAt, gotB.UpdatedAt)

	assert.True(t, s.AllCompleted())
	assert.Equal(t, 0, s.ToggleAll(true))
}

func TestClearCompleted(t *testing.T) {
	s, _ := newTestStore(t)
	a, _ := s.Add("A")
	b, _ := s.Add("B")
	c, _ := s.Add("C")
	require.NoError(t, s.Toggle(b.ID))
	require.NoError(t, s.Toggle(c.ID))

	assert.Equal(t, 2, s.ClearCompleted())
	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, a.ID, tasks[0].ID)

	assert.Equal(t, 0, s.ClearCompleted())
}

func TestClearAll(t *testing.T) {
	s, _ := newTestStore(t)
	s.Add("A")
	s.Add("B")

	assert.Equal(t, 2, s.ClearAll())
	assert.False(t, s.HasTasks())
	assert.Equal(t, 0, s.ClearAll())
}

func TestSetFilter(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Add("")
	require.Error(t, err)
	require.NotEmpty(t, s.Err())

	// A successful filter change clears the blunt error.
	require.NoError(t, s.SetFilter(types.FilterCompleted))
	assert.Equal(t, types.FilterCompleted, s.Filter())
	assert.Empty(t, s.Err())

	assert.ErrorIs(t, s.SetFilter("bogus"), types.ErrInvalidFilter)
}

func TestSnapshotIsIndependent(t *testing.T) {
	s, _ := newTestStore(t)
	task, _ := s.Add("Buy milk")

	snap := s.Snapshot()
	require.Len(t, snap.Tasks, 1)
	snap.Tasks[0].Title = "mutated"
	snap.Filter = types.FilterCompleted

	got, err := s.Get(task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", got.Title)
	assert.Equal(t, types.DefaultFilter, s.Filter())
}

func TestLoadRestoresPersistedState(t *testing.T) {
	store := newCountingKV()
	ad := adapter.New(store, 0)

	s := New(ad, Options{Clock: testClock(), NewID: testIDs()})
	require.NoError(t, s.Load())
	s.Add("Buy milk")
	s.Add("Buy bread")
	require.NoError(t, s.SetFilter(types.FilterActive))
	require.NoError(t, s.Close())

	fresh := New(ad, Options{Clock: testClock(), NewID: testIDs()})
	require.NoError(t, fresh.Load())
	defer fresh.Close()

	assert.True(t, fresh.Initialized())
	assert.False(t, fresh.Loading())
	assert.Equal(t, 2, fresh.Counts().Total)
	assert.Equal(t, types.FilterActive, fresh.Filter())
}

func TestLoadIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	s.Add("Buy milk")
	require.NoError(t, s.Flush())

	require.NoError(t, s.Load())
	first := s.Snapshot()
	require.NoError(t, s.Load())
	assert.Equal(t, first.Tasks, s.Snapshot().Tasks)
}

func TestLoadCompositeFailureKeepsGoodHalf(t *testing.T) {
	store := newCountingKV()
	// Corrupt only the entities key; the filter key stays healthy.
	require.NoError(t, store.KV.Set(types.KeyEntities, "{broken"))
	require.NoError(t, store.KV.Set(types.KeyFilter, `"completed"`))

	s := New(adapter.New(store, 0), Options{Clock: testClock(), NewID: testIDs()})
	err := s.Load()
	defer s.Close()

	assert.ErrorIs(t, err, types.ErrDataCorrupted)
	assert.NotEmpty(t, s.Err())
	// Load always completes initialization, and the good half survives.
	assert.True(t, s.Initialized())
	assert.False(t, s.Loading())
	assert.Empty(t, s.Tasks())
	assert.Equal(t, types.FilterCompleted, s.Filter())
}

func TestMutationsBeforeLoadAreNotPersisted(t *testing.T) {
	store := newCountingKV()
	// Real data is already in storage.
	require.NoError(t, store.KV.Set(types.KeyEntities,
		`[{"id":"stored-1","title":"Stored","completed":false,"createdAt":"2026-01-01T00:00:00Z","updatedAt":"2026-01-01T00:00:00Z"}]`))

	s := New(adapter.New(store, 0), Options{
		Clock:           testClock(),
		NewID:           testIDs(),
		EntitySaveDelay: 10 * time.Millisecond,
	})
	defer s.Close()

	// Mutating before the first load must not write anything.
	s.Add("premature")
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, store.writeCount(types.KeyEntities))

	// The stored task is still there to load.
	require.NoError(t, s.Load())
	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "stored-1", tasks[0].ID)
}

func TestDebounceCoalescesStoreMutations(t *testing.T) {
	s, store := newTestStore(t)

	for i := 0; i < 5; i++ {
		_, err := s.Add(fmt.Sprintf("task %d", i))
		require.NoError(t, err)
	}
	assert.Equal(t, 0, store.writeCount(types.KeyEntities))

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, store.writeCount(types.KeyEntities))

	// The single write carries the final state.
	raw, ok, err := store.Get(types.KeyEntities)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, "task 4")
}

func TestFlushWritesPendingState(t *testing.T) {
	s, store := newTestStore(t)
	s.Add("Buy milk")

	require.NoError(t, s.Flush())
	assert.Equal(t, 1, store.writeCount(types.KeyEntities))
}

func TestUpdateSettings(t *testing.T) {
	s, _ := newTestStore(t)

	theme := "dark"
	merged := s.UpdateSettings(types.SettingsPatch{Theme: &theme})
	assert.Equal(t, "dark", merged.Theme)
	// Unspecified fields are preserved.
	assert.Equal(t, "en", merged.Language)
	assert.True(t, merged.AutoSaveEnabled)
	assert.False(t, merged.LastAccessTime.IsZero())

	assert.Equal(t, merged, s.Settings())
}

func TestSettingsPersistAcrossStores(t *testing.T) {
	store := newCountingKV()
	ad := adapter.New(store, 0)

	s := New(ad, Options{Clock: testClock(), NewID: testIDs()})
	require.NoError(t, s.Load())
	theme := "dark"
	s.UpdateSettings(types.SettingsPatch{Theme: &theme})
	require.NoError(t, s.Close())

	fresh := New(ad, Options{Clock: testClock(), NewID: testIDs()})
	require.NoError(t, fresh.Load())
	defer fresh.Close()
	assert.Equal(t, "dark", fresh.Settings().Theme)
}
