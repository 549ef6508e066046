// Init command prepares the config and data directories.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pantry/internal/paths"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the pantry directories and storage",
	Long: `Init creates the configuration directory with a default config.yaml
and opens the storage backend once so the data directory exists.

Example:
  pantry init
  pantry init --config-dir ./conf --data-dir ./data`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// openEngine already created both directories and the backend; this
	// command only reports where they ended up.
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(map[string]string{"configDir": configDir})
	}
	fmt.Printf("Initialized pantry (config: %s)\n", configDir)
	return nil
}
