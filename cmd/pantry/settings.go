// Settings command shows or updates user settings.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

var (
	settingsTheme    string
	settingsLanguage string
	settingsAutoSave string
	settingsInterval int
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or update settings",
	Long: `Settings without flags prints the current settings. Flags patch
individual fields; unmentioned fields keep their values. Every update stamps
the last access time.

Example:
  pantry settings
  pantry settings --theme dark
  pantry settings --autosave off --language fr`,
	RunE: runSettings,
}

func init() {
	settingsCmd.Flags().StringVar(&settingsTheme, "theme", "", "UI theme (e.g. light, dark)")
	settingsCmd.Flags().StringVar(&settingsLanguage, "language", "", "language code (e.g. en, fr)")
	settingsCmd.Flags().StringVar(&settingsAutoSave, "autosave", "", "auto-save: on or off")
	settingsCmd.Flags().IntVar(&settingsInterval, "autosave-interval", 0, "auto-save interval in milliseconds")
}

func runSettings(cmd *cobra.Command, args []string) error {
	patch := types.SettingsPatch{}
	dirty := false

	if settingsTheme != "" {
		patch.Theme = &settingsTheme
		dirty = true
	}
	if settingsLanguage != "" {
		patch.Language = &settingsLanguage
		dirty = true
	}
	if settingsAutoSave != "" {
		switch settingsAutoSave {
		case "on":
			v := true
			patch.AutoSaveEnabled = &v
		case "off":
			v := false
			patch.AutoSaveEnabled = &v
		default:
			return fmt.Errorf("invalid autosave value %q (valid: on, off)", settingsAutoSave)
		}
		dirty = true
	}
	if settingsInterval > 0 {
		patch.AutoSaveIntervalMS = &settingsInterval
		dirty = true
	}

	s := store.Settings()
	if dirty {
		s = store.UpdateSettings(patch)
	}
	if flagJSON {
		return printJSON(s)
	}

	autoSave := "off"
	if s.AutoSaveEnabled {
		autoSave = "on"
	}
	fmt.Printf("Theme:              %s\n", s.Theme)
	fmt.Printf("Language:           %s\n", s.Language)
	fmt.Printf("Auto-save:          %s\n", autoSave)
	fmt.Printf("Auto-save interval: %dms\n", s.AutoSaveIntervalMS)
	fmt.Printf("Last access:        %s\n", s.LastAccessTime.Format("2006-01-02 15:04:05"))
	return nil
}
