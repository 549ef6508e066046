// Add command creates tasks.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <title> [title...]",
	Short: "Add one or more tasks",
	Long: `Add creates a task per title argument. Titles are trimmed; empty or
overlong titles are rejected (a batch keeps its usable titles).

Example:
  pantry add "Buy milk"
  pantry add "Buy milk" "Walk the dog" --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		task, err := store.Add(args[0])
		if err != nil {
			return fmt.Errorf("add task: %w", err)
		}
		if flagJSON {
			return printJSON(task)
		}
		fmt.Printf("Added %s\n", taskLine(task))
		return nil
	}

	tasks, err := store.AddMany(args)
	if err != nil {
		return fmt.Errorf("add tasks: %w", err)
	}
	if flagJSON {
		return printJSON(tasks)
	}
	for _, t := range tasks {
		fmt.Printf("Added %s\n", taskLine(t))
	}
	return nil
}
