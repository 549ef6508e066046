package taskstore

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

func TestFilteredViews(t *testing.T) {
	s, _ := newTestStore(t)
	a, _ := s.Add("active one")
	b, _ := s.Add("done one")
	c, _ := s.Add("active two")
	require.NoError(t, s.Toggle(b.ID))

	require.NoError(t, s.SetFilter(types.FilterCompleted))
	done := s.Filtered()
	require.Len(t, done, 1)
	assert.True(t, done[0].Completed)
	assert.Equal(t, b.ID, done[0].ID)

	require.NoError(t, s.SetFilter(types.FilterActive))
	active := s.Filtered()
	require.Len(t, active, 2)
	// Insertion order, no sorting.
	assert.Equal(t, a.ID, active[0].ID)
	assert.Equal(t, c.ID, active[1].ID)

	require.NoError(t, s.SetFilter(types.FilterAll))
	assert.Len(t, s.Filtered(), 3)
}

func TestCountsInvariant(t *testing.T) {
	s, _ := newTestStore(t)

	check := func() {
		c := s.Counts()
		assert.Equal(t, c.Total, c.Completed+c.Active)
		rate := s.CompletionRate()
		assert.GreaterOrEqual(t, rate, 0)
		assert.LessOrEqual(t, rate, 100)
	}

	check()
	for i := 0; i < 7; i++ {
		_, err := s.Add(fmt.Sprintf("task %d", i))
		require.NoError(t, err)
		check()
	}
	for _, task := range s.Tasks()[:3] {
		require.NoError(t, s.Toggle(task.ID))
		check()
	}
	s.ClearCompleted()
	check()
	s.ToggleAll(true)
	check()
	s.ClearAll()
	check()
}

func TestCompletionRate(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Equal(t, 0, s.CompletionRate())

	a, _ := s.Add("A")
	s.Add("B")
	s.Add("C")
	assert.Equal(t, 0, s.CompletionRate())

	require.NoError(t, s.Toggle(a.ID))
	// 1 of 3 rounds to 33.
	assert.Equal(t, 33, s.CompletionRate())

	s.ToggleAll(true)
	assert.Equal(t, 100, s.CompletionRate())
}

func TestHasTasksAndAllCompleted(t *testing.T) {
	s, _ := newTestStore(t)
	assert.False(t, s.HasTasks())
	// Empty collection is never "all completed".
	assert.False(t, s.AllCompleted())

	a, _ := s.Add("A")
	assert.True(t, s.HasTasks())
	assert.False(t, s.AllCompleted())

	require.NoError(t, s.Toggle(a.ID))
	assert.True(t, s.AllCompleted())
}
