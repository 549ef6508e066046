// Edit command renames a task.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <id> <title>",
	Short: "Rename a task",
	Long: `Edit replaces a task's title. The new title is trimmed and must be
non-empty and at most 200 characters.

Example:
  pantry edit 0195f3a2-... "Buy oat milk"`,
	Args: cobra.ExactArgs(2),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	if err := store.Update(args[0], args[1]); err != nil {
		return fmt.Errorf("edit task: %w", err)
	}

	task, err := store.Get(args[0])
	if err != nil {
		return fmt.Errorf("get task: %w", err)
	}
	if flagJSON {
		return printJSON(task)
	}
	fmt.Println(taskLine(task))
	return nil
}
