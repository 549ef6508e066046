// Config loading for the pantry CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend    = "backend"
	cfgKeyDataDir    = "data_dir"
	cfgKeyQuotaBytes = "quota_bytes"
)

const configFileHeader = `# Pantry CLI configuration.
#
# backend:     storage backend, one of: memory, file, sqlite
# data_dir:    data directory (optional; overridable by --data-dir)
# quota_bytes: storage quota in bytes (0 means the 5 MiB default)
`

// configFileDefaults is marshalled to YAML below the header when the
// config file is written for the first time.
type configFileDefaults struct {
	Backend    string `yaml:"backend"`
	QuotaBytes int64  `yaml:"quota_bytes"`
}

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on
// first run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendFile)
	v.SetDefault(cfgKeyQuotaBytes, int64(0))
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	body, err := yaml.Marshal(configFileDefaults{
		Backend:    types.BackendFile,
		QuotaBytes: 0,
	})
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}

	return os.WriteFile(path, append([]byte(configFileHeader), body...), 0o644)
}
