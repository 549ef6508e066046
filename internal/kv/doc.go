// Package kv implements the key-value backends the persistence adapter
// writes through: an in-memory map (optionally capacity-limited), a
// flock-guarded JSON file, and a SQLite database. Backends are opened by
// name from a types.Config.
package kv
