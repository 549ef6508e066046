// Reset command wipes all stored state.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all stored data and restore defaults",
	Long: `Reset removes every stored key and restores the in-memory defaults.
It refuses to run without --yes.

Example:
  pantry reset --yes`,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "confirm deleting all data")
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetYes {
		return fmt.Errorf("refusing to delete all data without --yes")
	}

	if err := store.ClearAllData(); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	if flagJSON {
		return printJSON(map[string]bool{"reset": true})
	}
	fmt.Println("All data cleared")
	return nil
}
