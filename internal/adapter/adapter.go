// Package adapter wraps a types.KV backend with typed, never-panicking
// persistence operations. Every call returns a uniform Result envelope and
// every failure classifies into the closed error taxonomy: rejected writes
// become ErrQuotaExceeded, unreachable backends become ErrNotAvailable,
// and unparseable stored text becomes ErrDataCorrupted.
package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// Op identifies the kind of persistence operation a Result describes.
type Op string

// Operation kinds.
const (
	OpGet    Op = "get"
	OpSet    Op = "set"
	OpRemove Op = "remove"
	OpClear  Op = "clear"
)

// probeKey is written and removed by the availability probe. It never
// carries durable data.
const probeKey = "__pantry_probe__"

// Result is the uniform envelope returned by every persistence call.
type Result struct {
	Success   bool
	Err       error
	Key       string
	Op        Op
	Timestamp time.Time
}

// Kind classifies the failure carried by the result. Successful results
// have no kind.
func (r Result) Kind() types.Kind {
	return types.KindOf(r.Err)
}

// Adapter is the synchronous persistence layer between typed values and
// the key-value backend.
type Adapter struct {
	store types.KV
	quota int64

	// clock is used to stamp results; overridable in tests.
	clock func() time.Time
}

// New creates an adapter over the given backend. quotaBytes is the
// assumed storage ceiling for usage reporting; zero or negative selects
// DefaultQuotaBytes. The ceiling is an assumption, not a queried limit.
func New(store types.KV, quotaBytes int64) *Adapter {
	if quotaBytes <= 0 {
		quotaBytes = types.DefaultQuotaBytes
	}
	return &Adapter{
		store: store,
		quota: quotaBytes,
		clock: time.Now,
	}
}

// Available probes the backend with a write+read+delete cycle. Any
// failure or echo mismatch reports false; this covers disabled storage,
// zero quota, and private-mode style restrictions.
func (a *Adapter) Available() bool {
	if err := a.store.Set(probeKey, "probe"); err != nil {
		return false
	}
	v, ok, err := a.store.Get(probeKey)
	if err != nil || !ok || v != "probe" {
		return false
	}
	return a.store.Remove(probeKey) == nil
}

// Get reads and decodes the value stored under key. An absent key yields
// def with a successful result; stored text that does not decode into T
// fails with ErrDataCorrupted.
func Get[T any](a *Adapter, key string, def T) (T, Result) {
	raw, ok, err := a.store.Get(key)
	if err != nil {
		return def, a.result(OpGet, key, classify(err))
	}
	if !ok {
		return def, a.result(OpGet, key, nil)
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return def, a.result(OpGet, key,
			fmt.Errorf("key %q holds unparseable text %.40q: %w", key, raw, types.ErrDataCorrupted))
	}
	return value, a.result(OpGet, key, nil)
}

// Set encodes the value and stores it under key, echoing the stored value
// back on success.
func Set[T any](a *Adapter, key string, value T) (T, Result) {
	raw, err := json.Marshal(value)
	if err != nil {
		return value, a.result(OpSet, key, fmt.Errorf("encode key %q: %w", key, err))
	}
	if err := a.store.Set(key, string(raw)); err != nil {
		return value, a.result(OpSet, key, classify(err))
	}
	return value, a.result(OpSet, key, nil)
}

// GetText reads the raw stored text under key, for callers carrying
// their own serialization. Absent keys report ok=false with a successful
// result.
func (a *Adapter) GetText(key string) (string, bool, Result) {
	raw, ok, err := a.store.Get(key)
	if err != nil {
		return "", false, a.result(OpGet, key, classify(err))
	}
	return raw, ok, a.result(OpGet, key, nil)
}

// SetText stores raw text under key.
func (a *Adapter) SetText(key, value string) Result {
	if err := a.store.Set(key, value); err != nil {
		return a.result(OpSet, key, classify(err))
	}
	return a.result(OpSet, key, nil)
}

// Remove deletes the key. Removing an absent key succeeds.
func (a *Adapter) Remove(key string) Result {
	if err := a.store.Remove(key); err != nil {
		return a.result(OpRemove, key, classify(err))
	}
	return a.result(OpRemove, key, nil)
}

// Clear wipes the entire namespace, not just the reserved keys.
// Dangerous; exposed for explicit full resets only.
func (a *Adapter) Clear() Result {
	if err := a.store.Clear(); err != nil {
		return a.result(OpClear, "", classify(err))
	}
	return a.result(OpClear, "", nil)
}

// result stamps the envelope for one completed operation.
func (a *Adapter) result(op Op, key string, err error) Result {
	return Result{
		Success:   err == nil,
		Err:       err,
		Key:       key,
		Op:        op,
		Timestamp: a.clock(),
	}
}

// classify maps a backend error onto the storage taxonomy. Errors already
// carrying a taxonomy sentinel pass through; everything else means the
// backend could not serve the call at all.
func classify(err error) error {
	if errors.Is(err, types.ErrQuotaExceeded) ||
		errors.Is(err, types.ErrDataCorrupted) ||
		errors.Is(err, types.ErrNotAvailable) {
		return err
	}
	return fmt.Errorf("%v: %w", err, types.ErrNotAvailable)
}
