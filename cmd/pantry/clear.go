// Clear command removes completed tasks, or every task with --all.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearAll bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove completed tasks (or all tasks with --all)",
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVar(&clearAll, "all", false, "remove every task, not just completed ones")
}

func runClear(cmd *cobra.Command, args []string) error {
	var removed int
	if clearAll {
		removed = store.ClearAll()
	} else {
		removed = store.ClearCompleted()
	}

	if flagJSON {
		return printJSON(map[string]int{"removed": removed})
	}
	fmt.Printf("Removed %d task(s)\n", removed)
	return nil
}
