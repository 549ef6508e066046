// Shared helpers for pantry CLI commands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// taskLine renders one task for plain-text output.
func taskLine(t types.Task) string {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	return fmt.Sprintf("[%s] %s  %s", mark, t.ID, t.Title)
}

// parseFilter validates a filter argument from the command line.
func parseFilter(arg string) (types.Filter, error) {
	f := types.Filter(arg)
	if !f.Valid() {
		return "", fmt.Errorf("invalid filter %q (valid: %s, %s, %s)",
			arg, types.FilterAll, types.FilterActive, types.FilterCompleted)
	}
	return f, nil
}
