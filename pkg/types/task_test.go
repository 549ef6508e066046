package types

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{
			name: "plain title",
			raw:  "Buy milk",
			want: "Buy milk",
		},
		{
			name: "surrounding whitespace trimmed",
			raw:  "  Buy milk  ",
			want: "Buy milk",
		},
		{
			name:    "empty rejected",
			raw:     "",
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "whitespace only rejected",
			raw:     "   \t\n ",
			wantErr: ErrEmptyTitle,
		},
		{
			name: "exactly max length accepted",
			raw:  strings.Repeat("a", MaxTitleLength),
			want: strings.Repeat("a", MaxTitleLength),
		},
		{
			name:    "over max length rejected",
			raw:     strings.Repeat("a", MaxTitleLength+1),
			wantErr: ErrTitleTooLong,
		},
		{
			name: "length measured after trimming",
			raw:  "  " + strings.Repeat("a", MaxTitleLength) + "  ",
			want: strings.Repeat("a", MaxTitleLength),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateTitle(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTask(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	task, err := NewTask("task-1", "  Buy milk  ", now)
	require.NoError(t, err)
	assert.Equal(t, "task-1", task.ID)
	assert.Equal(t, "Buy milk", task.Title)
	assert.False(t, task.Completed)
	assert.Equal(t, now, task.CreatedAt)
	assert.Equal(t, now, task.UpdatedAt)

	_, err = NewTask("task-2", "   ", now)
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestTaskRename(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	later := created.Add(time.Hour)

	task, err := NewTask("task-1", "Buy milk", created)
	require.NoError(t, err)

	require.NoError(t, task.Rename("  Buy bread  ", later))
	assert.Equal(t, "Buy bread", task.Title)
	assert.Equal(t, created, task.CreatedAt)
	assert.Equal(t, later, task.UpdatedAt)

	// Failed rename leaves the task untouched.
	err = task.Rename("", later.Add(time.Hour))
	assert.ErrorIs(t, err, ErrEmptyTitle)
	assert.Equal(t, "Buy bread", task.Title)
	assert.Equal(t, later, task.UpdatedAt)
}

func TestTaskSetCompleted(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	later := created.Add(time.Minute)

	task, err := NewTask("task-1", "Buy milk", created)
	require.NoError(t, err)

	// Already matching: no mutation, no timestamp bump.
	assert.False(t, task.SetCompleted(false, later))
	assert.Equal(t, created, task.UpdatedAt)

	assert.True(t, task.SetCompleted(true, later))
	assert.True(t, task.Completed)
	assert.Equal(t, later, task.UpdatedAt)
}

func TestTaskToggle(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	later := created.Add(time.Minute)

	task, err := NewTask("task-1", "Buy milk", created)
	require.NoError(t, err)

	task.Toggle(later)
	assert.True(t, task.Completed)
	assert.Equal(t, later, task.UpdatedAt)

	task.Toggle(later.Add(time.Minute))
	assert.False(t, task.Completed)
}
