// Filter command shows or persists the view filter.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var filterCmd = &cobra.Command{
	Use:   "filter [all|active|completed]",
	Short: "Show or set the persisted view filter",
	Long: `Filter without arguments prints the current selection. With an
argument it validates and persists the new filter; list uses it on the next
run.

Example:
  pantry filter
  pantry filter active`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFilter,
}

func runFilter(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		f, err := parseFilter(args[0])
		if err != nil {
			return err
		}
		if err := store.SetFilter(f); err != nil {
			return fmt.Errorf("set filter: %w", err)
		}
	}

	if flagJSON {
		return printJSON(map[string]string{"filter": string(store.Filter())})
	}
	fmt.Println(store.Filter())
	return nil
}
