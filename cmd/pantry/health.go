// Health command reports storage availability and usage.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check storage availability, integrity, and usage",
	RunE:  runHealth,
}

func runHealth(cmd *cobra.Command, args []string) error {
	report := store.HealthCheck()

	if flagJSON {
		return printJSON(report)
	}

	status := func(ok bool) string {
		if ok {
			return "ok"
		}
		return "FAIL"
	}
	fmt.Printf("Storage:   %s\n", status(report.Available))
	fmt.Printf("Integrity: %s\n", status(report.DataIntegrity))
	fmt.Printf("Usage:     %d / %d bytes (%.2f%%)\n",
		report.Usage.UsedBytes, report.Usage.TotalBytes, report.Usage.Percentage)
	for _, issue := range report.Issues {
		fmt.Printf("Issue:     %s\n", issue)
	}
	return nil
}
