// List command shows tasks through the persisted filter.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listFilter string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List shows the tasks matching the persisted filter. Passing --filter
switches the filter for this run only; use the filter command to persist a
selection.

Example:
  pantry list
  pantry list --filter active
  pantry list --json`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listFilter, "filter", "", "view filter for this run (all, active, completed)")
}

func runList(cmd *cobra.Command, args []string) error {
	filter := store.Filter()
	if listFilter != "" {
		f, err := parseFilter(listFilter)
		if err != nil {
			return err
		}
		filter = f
	}

	tasks := store.Tasks()
	shown := tasks[:0:0]
	for _, t := range tasks {
		if filter.Match(t) {
			shown = append(shown, t)
		}
	}

	if flagJSON {
		return printJSON(shown)
	}

	for _, t := range shown {
		fmt.Println(taskLine(t))
	}
	counts := store.Counts()
	fmt.Printf("%d shown (%s), %d total, %d active, %d completed\n",
		len(shown), filter, counts.Total, counts.Active, counts.Completed)
	return nil
}
