// Toggle-all command marks every task completed or active.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var toggleAllUndone bool

var toggleAllCmd = &cobra.Command{
	Use:   "toggle-all",
	Short: "Mark all tasks completed (or active with --undone)",
	Long: `Toggle-all sets every task's completion state at once. Tasks already
in the target state keep their timestamps.

Example:
  pantry toggle-all
  pantry toggle-all --undone`,
	RunE: runToggleAll,
}

func init() {
	toggleAllCmd.Flags().BoolVar(&toggleAllUndone, "undone", false, "mark all tasks active instead of completed")
}

func runToggleAll(cmd *cobra.Command, args []string) error {
	changed := store.ToggleAll(!toggleAllUndone)

	if flagJSON {
		return printJSON(map[string]int{"changed": changed})
	}
	state := "completed"
	if toggleAllUndone {
		state = "active"
	}
	fmt.Printf("Marked %d task(s) %s\n", changed, state)
	return nil
}
