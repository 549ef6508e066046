// Package types defines the task entity, filter and settings records, the
// KV interface for platform key-value backends, and the standard error
// taxonomy shared by every layer of the Pantry engine.
package types
