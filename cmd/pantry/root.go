package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pantry/internal/adapter"
	"github.com/mesh-intelligence/pantry/internal/kv"
	"github.com/mesh-intelligence/pantry/internal/paths"
	"github.com/mesh-intelligence/pantry/internal/taskstore"
	"github.com/mesh-intelligence/pantry/pkg/pantry"
	"github.com/mesh-intelligence/pantry/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// The engine instance for the current command, wired by openEngine and
// torn down by closeEngine. One instance per process, passed by
// reference; nothing looks it up globally below this package.
var (
	backend types.KV
	store   *taskstore.Store
)

var rootCmd = &cobra.Command{
	Use:     "pantry",
	Short:   "Pantry is a local-first task list",
	Version: pantry.Version,
	Long: `Pantry keeps a task list in a local key-value store and mirrors it
through debounced auto-saving bindings. State survives across runs; filters,
counts, and completion rate are recomputed from the stored collection.`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  openEngine,
	PersistentPostRunE: closeEngine,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.pantry)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.pantry-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(toggleAllCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// openEngine loads the config and wires backend, adapter, and store.
func openEngine(cmd *cobra.Command, args []string) error {
	// Version and help need no backend.
	if cmd.Name() == "version" || cmd.Name() == "help" {
		return nil
	}

	cfg, err := loadEngineConfig()
	if err != nil {
		return err
	}

	backend, err = kv.Open(cfg)
	if err != nil {
		return fmt.Errorf("open %s backend: %w", cfg.Backend, err)
	}

	store = taskstore.New(adapter.New(backend, cfg.Quota()), taskstore.Options{})
	if err := store.Load(); err != nil {
		// A failed load falls back to defaults; surface it but keep going.
		cmd.PrintErrf("warning: %v\n", err)
	}
	return nil
}

// closeEngine flushes pending writes and releases the backend.
func closeEngine(cmd *cobra.Command, args []string) error {
	var errs []error
	if store != nil {
		if err := store.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if backend != nil {
		if err := backend.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	for _, err := range errs {
		cmd.PrintErrf("warning: %v\n", err)
	}
	return nil
}

// loadEngineConfig resolves directories and reads config.yaml.
func loadEngineConfig() (types.Config, error) {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return types.Config{}, err
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return types.Config{}, err
	}

	dataDir, err := paths.ResolveDataDir(flagDataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return types.Config{}, err
	}

	cfg := types.Config{
		Backend:    v.GetString(cfgKeyBackend),
		DataDir:    dataDir,
		QuotaBytes: v.GetInt64(cfgKeyQuotaBytes),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
