package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, SettingsVersion, s.Version)
	assert.Equal(t, "light", s.Theme)
	assert.Equal(t, "en", s.Language)
	assert.True(t, s.AutoSaveEnabled)
	assert.Equal(t, 1000, s.AutoSaveIntervalMS)
	assert.True(t, s.LastAccessTime.IsZero())
}

func TestSettingsMerge(t *testing.T) {
	access := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	base := Settings{
		Version:            SettingsVersion,
		Theme:              "light",
		Language:           "en",
		AutoSaveEnabled:    true,
		AutoSaveIntervalMS: 1000,
		LastAccessTime:     access,
	}

	theme := "dark"
	interval := 2500
	disabled := false

	tests := []struct {
		name  string
		patch SettingsPatch
		want  Settings
	}{
		{
			name:  "empty patch preserves everything",
			patch: SettingsPatch{},
			want:  base,
		},
		{
			name:  "single field merge",
			patch: SettingsPatch{Theme: &theme},
			want: Settings{
				Version:            SettingsVersion,
				Theme:              "dark",
				Language:           "en",
				AutoSaveEnabled:    true,
				AutoSaveIntervalMS: 1000,
				LastAccessTime:     access,
			},
		},
		{
			name: "multi field merge",
			patch: SettingsPatch{
				AutoSaveEnabled:    &disabled,
				AutoSaveIntervalMS: &interval,
			},
			want: Settings{
				Version:            SettingsVersion,
				Theme:              "light",
				Language:           "en",
				AutoSaveEnabled:    false,
				AutoSaveIntervalMS: 2500,
				LastAccessTime:     access,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base.Merge(tt.patch)
			assert.Equal(t, tt.want, got)
			// Merge never mutates the receiver.
			assert.Equal(t, "light", base.Theme)
		})
	}
}

func TestSettingsMergeStampsVersion(t *testing.T) {
	old := Settings{Version: 0, Theme: "light"}
	merged := old.Merge(SettingsPatch{})
	assert.Equal(t, SettingsVersion, merged.Version)
	assert.Equal(t, "light", merged.Theme)
}
