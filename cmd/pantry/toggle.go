// Toggle command flips one task's completion state.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Toggle a task's completion state",
	Args:  cobra.ExactArgs(1),
	RunE:  runToggle,
}

func runToggle(cmd *cobra.Command, args []string) error {
	if err := store.Toggle(args[0]); err != nil {
		return fmt.Errorf("toggle task: %w", err)
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
