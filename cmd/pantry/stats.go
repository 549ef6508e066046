// Stats command prints derived counts.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task counts and completion rate",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	counts := store.Counts()

	if flagJSON {
		return printJSON(struct {
			Total          int  `json:"total"`
			Active         int  `json:"active"`
			Completed      int  `json:"completed"`
			CompletionRate int  `json:"completionRate"`
			AllCompleted   bool `json:"allCompleted"`
		}{
			Total:          counts.Total,
			Active:         counts.Active,
			Completed:      counts.Completed,
			CompletionRate: store.CompletionRate(),
			AllCompleted:   store.AllCompleted(),
		})
	}

	fmt.Printf("Total:      %d\n", counts.Total)
	fmt.Printf("Active:     %d\n", counts.Active)
	fmt.Printf("Completed:  %d\n", counts.Completed)
	fmt.Printf("Completion: %d%%\n", store.CompletionRate())
	return nil
}
