package taskstore

import "github.com/mesh-intelligence/pantry/pkg/types"

// Settings returns the current settings record.
func (s *Store) Settings() types.Settings {
	return s.settings.Value()
}

// UpdateSettings merges the patch into the current settings. Unspecified
// fields are preserved (additive merge only); the last-access timestamp
// is bumped on every update. Returns the merged record.
func (s *Store) UpdateSettings(patch types.SettingsPatch) types.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := s.settings.Value().Merge(patch)
	merged.LastAccessTime = s.clock()
	s.settings.Replace(merged)
	s.markDirtyLocked(types.KeySettings)
	return merged
}
