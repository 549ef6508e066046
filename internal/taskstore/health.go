package taskstore

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/pantry/internal/adapter"
	"github.com/mesh-intelligence/pantry/pkg/types"
)

// Health reports storage availability and integrity. DataIntegrity is
// true only when all three reserved keys load cleanly (an absent key is
// clean; it just means defaults).
type Health struct {
	Available     bool          `json:"available"`
	DataIntegrity bool          `json:"dataIntegrity"`
	Usage         adapter.Usage `json:"usage"`
	Issues        []string      `json:"issues"`
}

// HealthCheck inspects the backing storage without mutating any state,
// live or stored.
func (s *Store) HealthCheck() Health {
	h := Health{
		Available:     s.ad.Available(),
		DataIntegrity: true,
		Usage:         s.ad.Usage(),
		Issues:        []string{},
	}
	if !h.Available {
		h.Issues = append(h.Issues, "storage is not available")
	}

	if _, res := adapter.Get(s.ad, types.KeyEntities, []types.Task{}); res.Err != nil {
		h.DataIntegrity = false
		h.Issues = append(h.Issues, fmt.Sprintf("tasks: %v", res.Err))
	}
	if _, res := adapter.Get(s.ad, types.KeyFilter, types.DefaultFilter); res.Err != nil {
		h.DataIntegrity = false
		h.Issues = append(h.Issues, fmt.Sprintf("filter: %v", res.Err))
	}
	if _, res := adapter.Get(s.ad, types.KeySettings, types.DefaultSettings()); res.Err != nil {
		h.DataIntegrity = false
		h.Issues = append(h.Issues, fmt.Sprintf("settings: %v", res.Err))
	}
	return h
}

// ClearAllData removes all three persisted keys and resets the in-memory
// state to defaults. A failure removing one key is recorded but does not
// abort removal of the others.
func (s *Store) ClearAllData() error {
	var errs []error
	if err := s.entities.Remove(); err != nil {
		errs = append(errs, fmt.Errorf("remove tasks: %w", err))
	}
	if err := s.filterB.Remove(); err != nil {
		errs = append(errs, fmt.Errorf("remove filter: %w", err))
	}
	if err := s.settings.Remove(); err != nil {
		errs = append(errs, fmt.Errorf("remove settings: %w", err))
	}

	s.mu.Lock()
	s.tasks = nil
	s.filter = types.DefaultFilter
	s.entities.Reset()
	s.filterB.Reset()
	s.settings.Reset()
	err := errors.Join(errs...)
	if err != nil {
		s.lastErr = err.Error()
	} else {
		s.lastErr = ""
	}
	s.mu.Unlock()
	return err
}
