package kv

import (
	"fmt"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// Open creates the KV backend selected by the config. The config is
// validated first; backend selection errors surface as the types package
// config sentinels.
func Open(cfg types.Config) (types.KV, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case types.BackendMemory:
		return NewMemory(), nil
	case types.BackendFile:
		return OpenFile(cfg.DataDir)
	case types.BackendSQLite:
		return OpenSQLite(cfg.DataDir)
	default:
		// Validate rejects unknown backends; this is unreachable.
		return nil, fmt.Errorf("backend %q: %w", cfg.Backend, types.ErrBackendUnknown)
	}
}
