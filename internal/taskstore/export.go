package taskstore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// ExportFormatVersion identifies the export blob layout.
const ExportFormatVersion = "1.0.0"

// exportPayload is the portable text form of the full state. Importers
// tolerate and ignore unknown extra fields.
type exportPayload struct {
	Entities      []types.Task   `json:"entities"`
	Filter        types.Filter   `json:"filter"`
	Settings      types.Settings `json:"settings"`
	ExportedAt    time.Time      `json:"exportedAt"`
	FormatVersion string         `json:"formatVersion"`
}

// importedTask mirrors one entity during import validation. Pointer
// fields distinguish absent from zero; a type mismatch fails the whole
// decode, which is exactly the all-or-nothing contract.
type importedTask struct {
	ID        *string    `json:"id"`
	Title     *string    `json:"title"`
	Completed *bool      `json:"completed"`
	CreatedAt *time.Time `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// Export serializes the entities, filter, and settings into one portable
// text blob.
func (s *Store) Export() (string, error) {
	s.mu.Lock()
	payload := exportPayload{
		Entities:      append([]types.Task{}, s.tasks...),
		Filter:        s.filter,
		Settings:      s.settings.Value(),
		ExportedAt:    s.clock().UTC(),
		FormatVersion: ExportFormatVersion,
	}
	s.mu.Unlock()

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode export: %w", err)
	}
	return string(data), nil
}

// Import replaces the full state from an export blob. All-or-nothing:
// unless the text parses, carries an entities list, and every entity
// passes structural validation, the live state is left completely
// untouched. A successful import replaces entities, filter, and settings
// and persists all three.
func (s *Store) Import(text string) error {
	var probe struct {
		Entities *[]importedTask `json:"entities"`
		Filter   types.Filter    `json:"filter"`
		Settings types.Settings  `json:"settings"`
	}
	if err := json.Unmarshal([]byte(text), &probe); err != nil {
		return s.fail(fmt.Errorf("parse import: %v: %w", err, types.ErrInvalidImport))
	}
	if probe.Entities == nil {
		return s.fail(fmt.Errorf("import is missing the entities list: %w", types.ErrInvalidImport))
	}

	tasks := make([]types.Task, 0, len(*probe.Entities))
	seen := make(map[string]bool, len(*probe.Entities))
	for i, e := range *probe.Entities {
		if e.ID == nil || *e.ID == "" {
			return s.fail(fmt.Errorf("entity %d has no id: %w", i, types.ErrInvalidImport))
		}
		if e.Title == nil {
			return s.fail(fmt.Errorf("entity %d has no title: %w", i, types.ErrInvalidImport))
		}
		if e.Completed == nil {
			return s.fail(fmt.Errorf("entity %d has no completed flag: %w", i, types.ErrInvalidImport))
		}
		if seen[*e.ID] {
			return s.fail(fmt.Errorf("entity %d duplicates id %q: %w", i, *e.ID, types.ErrInvalidImport))
		}
		seen[*e.ID] = true

		t := types.Task{
			ID:        *e.ID,
			Title:     *e.Title,
			Completed: *e.Completed,
		}
		if e.CreatedAt != nil {
			t.CreatedAt = *e.CreatedAt
		}
		if e.UpdatedAt != nil {
			t.UpdatedAt = *e.UpdatedAt
		}
		tasks = append(tasks, t)
	}

	filter := probe.Filter
	if !filter.Valid() {
		filter = types.DefaultFilter
	}
	settings := probe.Settings
	if settings.Version == 0 {
		settings = types.DefaultSettings()
	}

	s.mu.Lock()
	s.tasks = tasks
	s.filter = filter
	s.settings.Replace(settings)
	s.lastErr = ""
	s.markDirtyLocked(types.KeyEntities)
	s.markDirtyLocked(types.KeyFilter)
	s.markDirtyLocked(types.KeySettings)
	s.mu.Unlock()
	return nil
}

// fail records err in the blunt error field and returns it.
func (s *Store) fail(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failLocked(err)
}
