// Delete command removes a task.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	if err := store.Delete(args[0]); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if flagJSON {
		return printJSON(map[string]string{"deleted": args[0]})
	}
	fmt.Printf("Deleted %s\n", args[0])
	return nil
}
