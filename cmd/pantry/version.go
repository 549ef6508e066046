// Version command prints the module version.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pantry/pkg/pantry"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		if flagJSON {
			fmt.Printf("{\"version\": %q}\n", pantry.Version)
			return
		}
		fmt.Println("pantry v" + pantry.Version)
	},
}
