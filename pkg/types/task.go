package types

import (
	"fmt"
	"strings"
	"time"
)

// MaxTitleLength is the maximum number of characters (runes) allowed in a
// task title after trimming.
const MaxTitleLength = 200

// Task represents a single item on the task list.
type Task struct {
	ID        string    `json:"id"`        // Opaque unique string, immutable.
	Title     string    `json:"title"`     // Non-empty trimmed string, at most MaxTitleLength runes.
	Completed bool      `json:"completed"` // Done flag.
	CreatedAt time.Time `json:"createdAt"` // Timestamp of creation, immutable.
	UpdatedAt time.Time `json:"updatedAt"` // Bumped on every mutation.
}

// ValidateTitle trims the raw title and checks it against the title rules.
// Returns the trimmed title, or ErrEmptyTitle / ErrTitleTooLong.
func ValidateTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", ErrEmptyTitle
	}
	if n := len([]rune(title)); n > MaxTitleLength {
		return "", fmt.Errorf("title is %d characters: %w", n, ErrTitleTooLong)
	}
	return title, nil
}

// NewTask creates a task with the given id and raw title. The title is
// trimmed and validated; the task starts not completed with both
// timestamps set to now.
func NewTask(id, rawTitle string, now time.Time) (Task, error) {
	title, err := ValidateTitle(rawTitle)
	if err != nil {
		return Task{}, err
	}
	return Task{
		ID:        id,
		Title:     title,
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Rename replaces the title after re-applying title validation and bumps
// UpdatedAt. The task is unchanged on failure.
func (t *Task) Rename(rawTitle string, now time.Time) error {
	title, err := ValidateTitle(rawTitle)
	if err != nil {
		return err
	}
	t.Title = title
	t.UpdatedAt = now
	return nil
}

// SetCompleted sets the done flag and bumps UpdatedAt, but only when the
// flag actually changes. Returns whether the task was mutated; leaving
// matching tasks untouched avoids spurious persistence churn.
func (t *Task) SetCompleted(completed bool, now time.Time) bool {
	if t.Completed == completed {
		return false
	}
	t.Completed = completed
	t.UpdatedAt = now
	return true
}

// Toggle flips the done flag and bumps UpdatedAt.
func (t *Task) Toggle(now time.Time) {
	t.Completed = !t.Completed
	t.UpdatedAt = now
}
