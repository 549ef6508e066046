// Package main provides the pantry CLI, the composition root of the
// task-list persistence engine: it opens the configured key-value
// backend, wires the adapter and the store, runs one command, and closes
// the store so pending debounced writes land before exit.
package main

import (
	"fmt"
	"os"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if types.KindOf(err).IsStorage() {
			os.Exit(exitSysError)
		}
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}
