package types

import "time"

// SettingsVersion is the current settings record version. Only additive
// merges are supported; there is no migration machinery.
const SettingsVersion = 1

// Settings holds user preferences persisted alongside the task list.
type Settings struct {
	Version            int       `json:"version"`
	Theme              string    `json:"theme"`
	Language           string    `json:"language"`
	AutoSaveEnabled    bool      `json:"autoSaveEnabled"`
	AutoSaveIntervalMS int       `json:"autoSaveIntervalMs"`
	LastAccessTime     time.Time `json:"lastAccessTime"`
}

// DefaultSettings returns the settings in effect before anything was stored.
func DefaultSettings() Settings {
	return Settings{
		Version:            SettingsVersion,
		Theme:              "light",
		Language:           "en",
		AutoSaveEnabled:    true,
		AutoSaveIntervalMS: 1000,
	}
}

// SettingsPatch is a partial settings update. Nil fields are left as they
// are, so a patch merges into the existing record instead of replacing it.
type SettingsPatch struct {
	Theme              *string
	Language           *string
	AutoSaveEnabled    *bool
	AutoSaveIntervalMS *int
}

// Merge applies the patch to s and returns the merged record. Unspecified
// fields are preserved; Version is always stamped with SettingsVersion.
func (s Settings) Merge(p SettingsPatch) Settings {
	out := s
	out.Version = SettingsVersion
	if p.Theme != nil {
		out.Theme = *p.Theme
	}
	if p.Language != nil {
		out.Language = *p.Language
	}
	if p.AutoSaveEnabled != nil {
		out.AutoSaveEnabled = *p.AutoSaveEnabled
	}
	if p.AutoSaveIntervalMS != nil {
		out.AutoSaveIntervalMS = *p.AutoSaveIntervalMS
	}
	return out
}
