// Import command replaces the state from a JSON snapshot.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace all state from a JSON snapshot",
	Long: `Import reads a snapshot produced by export (from a file argument or
stdin) and replaces the current tasks, filter, and settings. Validation is
all-or-nothing: a malformed snapshot leaves the current state untouched.

Example:
  pantry import backup.json
  pantry export | pantry import --data-dir ./other`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	if err := store.Import(string(data)); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	counts := store.Counts()
	if flagJSON {
		return printJSON(map[string]int{"imported": counts.Total})
	}
	fmt.Printf("Imported %d task(s)\n", counts.Total)
	return nil
}
