package types

import "errors"

// Supported backend names.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// DefaultQuotaBytes is the assumed storage ceiling used for usage
// reporting when the config does not override it. It mirrors the
// conventional 5 MiB browser localStorage quota; it is an assumption,
// not a queried limit.
const DefaultQuotaBytes int64 = 5 << 20

// Config holds backend selection and parameters for opening a KV store.
type Config struct {
	Backend    string `json:"backend" yaml:"backend"`
	DataDir    string `json:"data_dir" yaml:"data_dir"`
	QuotaBytes int64  `json:"quota_bytes" yaml:"quota_bytes"`
}

// Config validation errors.
var (
	ErrBackendEmpty    = errors.New("backend must not be empty")
	ErrBackendUnknown  = errors.New("unknown backend")
	ErrQuotaNegative   = errors.New("quota bytes must not be negative")
	ErrDataDirRequired = errors.New("data directory required for this backend")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendMemory: true,
	BackendFile:   true,
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.QuotaBytes < 0 {
		return ErrQuotaNegative
	}
	if c.Backend != BackendMemory && c.DataDir == "" {
		return ErrDataDirRequired
	}
	return nil
}

// Quota returns the configured quota ceiling, falling back to
// DefaultQuotaBytes when unset.
func (c Config) Quota() int64 {
	if c.QuotaBytes > 0 {
		return c.QuotaBytes
	}
	return DefaultQuotaBytes
}
