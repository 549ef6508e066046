// Export command serializes the full state to JSON.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all state as a JSON snapshot",
	Long: `Export writes a versioned JSON snapshot of tasks, filter, and
settings to stdout or to a file with --out. The snapshot round-trips through
the import command.

Example:
  pantry export
  pantry export --out backup.json`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "write the snapshot to this file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	blob, err := store.Export()
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if exportOut == "" {
		fmt.Println(blob)
		return nil
	}
	if err := os.WriteFile(exportOut, []byte(blob+"\n"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Exported to %s\n", exportOut)
	return nil
}
