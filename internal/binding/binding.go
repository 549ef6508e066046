// Package binding mirrors one (key, typed value) pair between memory and
// the persistence adapter. A binding owns the debounced auto-save pipeline:
// every Set or MarkDirty restarts a single per-binding timer, so a burst of
// edits inside the save delay collapses into exactly one write carrying the
// final state. Writes to a key therefore apply in the order their
// triggering mutations committed.
package binding

import (
	"sync"
	"time"

	"github.com/mesh-intelligence/pantry/internal/adapter"
)

// DefaultSaveDelay applies when auto-save is requested without a delay.
const DefaultSaveDelay = 500 * time.Millisecond

// Options configures a binding.
type Options[T any] struct {
	// Immediate loads the stored value during construction.
	Immediate bool

	// AutoSave schedules a debounced write after every Set/MarkDirty.
	AutoSave bool

	// SaveDelay is the debounce window for auto-save.
	SaveDelay time.Duration

	// Codec overrides the JSON serialization.
	Codec Codec[T]

	// OnError is invoked (outside the binding lock) for every failed
	// load or save.
	OnError func(error)
}

// Binding is a typed durable mirror of one persistence key.
type Binding[T any] struct {
	mu      sync.Mutex
	ad      *adapter.Adapter
	key     string
	def     T
	codec   Codec[T]
	opts    Options[T]
	value   T
	loading bool
	err     error

	timer   *time.Timer
	gen     uint64 // invalidates superseded timers
	pending bool
	closed  bool
}

// New creates a binding for key with the given default value. With
// Options.Immediate the stored value is loaded before New returns.
func New[T any](ad *adapter.Adapter, key string, def T, opts Options[T]) *Binding[T] {
	if opts.Codec == nil {
		opts.Codec = JSONCodec[T]{}
	}
	if opts.AutoSave && opts.SaveDelay <= 0 {
		opts.SaveDelay = DefaultSaveDelay
	}
	b := &Binding[T]{
		ad:    ad,
		key:   key,
		def:   def,
		codec: opts.Codec,
		opts:  opts,
		value: def,
	}
	if opts.Immediate {
		_ = b.Load()
	}
	return b
}

// Key returns the persistence key this binding mirrors.
func (b *Binding[T]) Key() string { return b.key }

// Default returns the default value.
func (b *Binding[T]) Default() T { return b.def }

// Value returns the current in-memory value.
func (b *Binding[T]) Value() T {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.value
}

// Err returns the error from the most recent failed operation. It is
// cleared by the next successful load or save.
func (b *Binding[T]) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

// Loading reports whether a load is in progress.
func (b *Binding[T]) Loading() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loading
}

// Load reads the stored value into memory. An absent key or any failure
// leaves the default value in place, so callers never observe an
// undefined value; the failure is still recorded and reported.
func (b *Binding[T]) Load() error {
	b.mu.Lock()
	b.loading = true
	b.mu.Unlock()

	raw, ok, res := b.ad.GetText(b.key)

	var value T
	err := res.Err
	loaded := false
	if err == nil && ok {
		value, err = b.codec.Decode(raw)
		loaded = err == nil
	}

	b.mu.Lock()
	b.loading = false
	if err != nil {
		b.err = err
		b.value = b.def
	} else {
		b.err = nil
		if loaded {
			b.value = value
		} else {
			b.value = b.def
		}
	}
	b.mu.Unlock()

	b.report(err)
	return err
}

// Save writes the current value to storage immediately, superseding any
// pending debounced write.
func (b *Binding[T]) Save() error {
	b.mu.Lock()
	b.cancelPending()
	err := b.saveLocked()
	b.mu.Unlock()

	b.report(err)
	return err
}

// SaveValue replaces the value and writes it immediately.
func (b *Binding[T]) SaveValue(value T) error {
	b.mu.Lock()
	b.value = value
	b.cancelPending()
	err := b.saveLocked()
	b.mu.Unlock()

	b.report(err)
	return err
}

// Set replaces the value. With auto-save enabled this (re)starts the
// debounce timer; a newer Set before expiry supersedes the pending write.
func (b *Binding[T]) Set(value T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.value = value
	if b.opts.AutoSave && !b.closed {
		b.scheduleLocked()
	}
}

// Replace swaps the value without scheduling a write. Used while the
// owning store is still initializing, when persisting would risk
// overwriting real stored data with defaults.
func (b *Binding[T]) Replace(value T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.value = value
}

// MarkDirty schedules a debounced write of the current value without
// replacing it. Mutators that edit the value in place call this.
func (b *Binding[T]) MarkDirty() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.opts.AutoSave && !b.closed {
		b.scheduleLocked()
	}
}

// Remove deletes the stored key. The in-memory value is untouched.
func (b *Binding[T]) Remove() error {
	b.mu.Lock()
	b.cancelPending()
	res := b.ad.Remove(b.key)
	if res.Err != nil {
		b.err = res.Err
	} else {
		b.err = nil
	}
	b.mu.Unlock()

	b.report(res.Err)
	return res.Err
}

// Reset restores the default value without touching storage. Any pending
// debounced write is cancelled, since it would otherwise persist the
// freshly restored default.
func (b *Binding[T]) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cancelPending()
	b.value = b.def
	b.err = nil
}

// Dirty reports whether a debounced write is pending.
func (b *Binding[T]) Dirty() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pending
}

// Flush writes the pending value now, if any. A no-op when nothing is
// pending.
func (b *Binding[T]) Flush() error {
	b.mu.Lock()
	if !b.pending {
		b.mu.Unlock()
		return nil
	}
	b.cancelPending()
	err := b.saveLocked()
	b.mu.Unlock()

	b.report(err)
	return err
}

// Close flushes any pending write and stops the binding. Subsequent Set
// calls mutate memory only.
func (b *Binding[T]) Close() error {
	b.mu.Lock()
	pending := b.pending
	b.cancelPending()
	b.closed = true
	var err error
	if pending {
		err = b.saveLocked()
	}
	b.mu.Unlock()

	b.report(err)
	return err
}

// scheduleLocked (re)starts the debounce timer. The generation counter
// invalidates a timer that already fired and is waiting on the lock.
func (b *Binding[T]) scheduleLocked() {
	if b.timer != nil {
		b.timer.Stop()
	}
	b.gen++
	b.pending = true
	gen := b.gen
	b.timer = time.AfterFunc(b.opts.SaveDelay, func() { b.fire(gen) })
}

// fire is the timer callback: persist the current value unless a newer
// mutation superseded this timer.
func (b *Binding[T]) fire(gen uint64) {
	b.mu.Lock()
	if b.closed || gen != b.gen || !b.pending {
		b.mu.Unlock()
		return
	}
	b.pending = false
	err := b.saveLocked()
	b.mu.Unlock()

	b.report(err)
}

// cancelPending drops the pending debounced write, if any.
func (b *Binding[T]) cancelPending() {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.gen++
	b.pending = false
}

// saveLocked encodes and writes the current value. Caller holds the lock.
func (b *Binding[T]) saveLocked() error {
	raw, err := b.codec.Encode(b.value)
	if err == nil {
		res := b.ad.SetText(b.key, raw)
		err = res.Err
	}
	if err != nil {
		b.err = err
		return err
	}
	b.err = nil
	return nil
}

// report invokes the OnError callback outside the lock.
func (b *Binding[T]) report(err error) {
	if err != nil && b.opts.OnError != nil {
		b.opts.OnError(err)
	}
}
