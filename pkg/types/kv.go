package types

// KV is the platform key-value namespace the engine persists into. All
// operations are synchronous and complete (or fail) immediately; no call
// blocks beyond the underlying store access.
//
// The namespace is process-wide shared state with a single assumed owner:
// one engine instance per set of reserved keys per process. This is a
// documented invariant, not enforced by a lock (the file backend
// additionally holds a cross-process file lock).
type KV interface {
	// Get returns the stored text for key and whether the key exists.
	Get(key string) (string, bool, error)

	// Set stores text under key, replacing any previous value.
	// Returns ErrQuotaExceeded when the write is rejected for size.
	Set(key, value string) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(key string) error

	// Clear wipes the entire namespace. Dangerous: every key goes,
	// including keys this engine does not own.
	Clear() error

	// Keys enumerates every key currently present, in no defined order.
	Keys() ([]string, error)

	// Close releases backend resources. Idempotent.
	Close() error
}

// Reserved persistence keys. The engine owns exactly these three keys
// within the namespace.
const (
	KeyEntities = "entities-key"
	KeyFilter   = "filter-key"
	KeySettings = "settings-key"
)
