package kv

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// File store layout and locking constants.
const (
	fileStoreName = "pantry.json"

	lockTimeout    = 3 * time.Second
	lockRetryDelay = 100 * time.Millisecond
)

// fileDocument is the on-disk JSON structure.
type fileDocument struct {
	Version   string            `json:"version"`
	Entries   map[string]string `json:"entries"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// File is a KV backend persisted as a single JSON document. A separate
// .lock file guards against a second process opening the same namespace;
// the lock is held for the lifetime of the store, enforcing the
// single-owner invariant across processes.
type File struct {
	mu       sync.RWMutex
	path     string
	fileLock *flock.Flock
	entries  map[string]string
}

// OpenFile opens (or creates) the file-backed store under dataDir.
// Returns ErrNotAvailable when another process already holds the lock,
// and ErrDataCorrupted when the existing file cannot be parsed.
func OpenFile(dataDir string) (*File, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	path := filepath.Join(dataDir, fileStoreName)
	// Lock a sidecar file so the atomic rename on save never replaces
	// the locked inode.
	fileLock := flock.New(path + ".lock")

	locked, err := tryLockWithRetry(fileLock)
	if err != nil {
		return nil, fmt.Errorf("acquire store lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("store %s is locked by another process: %w", path, types.ErrNotAvailable)
	}

	s := &File{
		path:     path,
		fileLock: fileLock,
		entries:  make(map[string]string),
	}
	if err := s.load(); err != nil {
		_ = fileLock.Unlock()
		return nil, err
	}
	return s, nil
}

// tryLockWithRetry attempts to take the exclusive lock, retrying until
// lockTimeout elapses.
func tryLockWithRetry(fl *flock.Flock) (bool, error) {
	deadline := time.Now().Add(lockTimeout)
	for {
		locked, err := fl.TryLock()
		if err != nil {
			return false, err
		}
		if locked {
			return true, nil
		}
		if time.Now().After(deadline) {
			return false, nil
		}
		time.Sleep(lockRetryDelay)
	}
}

// load reads the JSON document from disk. A missing file is a fresh store.
func (s *File) load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read store file: %w", err)
	}

	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse store file %s: %w", s.path, types.ErrDataCorrupted)
	}
	if doc.Entries != nil {
		s.entries = doc.Entries
	}
	return nil
}

// persist writes the document atomically: temp file in the same
// directory, then rename over the target.
func (s *File) persist() error {
	doc := fileDocument{
		Version:   "1.0",
		Entries:   s.entries,
		UpdatedAt: time.Now().UTC(),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}

// Get returns the stored text for key and whether the key exists.
func (s *File) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok, nil
}

// Set stores text under key and persists the document.
func (s *File) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, had := s.entries[key]
	s.entries[key] = value
	if err := s.persist(); err != nil {
		if had {
			s.entries[key] = old
		} else {
			delete(s.entries, key)
		}
		return err
	}
	return nil
}

// Remove deletes the key and persists the document.
func (s *File) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; !ok {
		return nil
	}
	delete(s.entries, key)
	return s.persist()
}

// Clear wipes the entire namespace and persists the empty document.
func (s *File) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]string)
	return s.persist()
}

// Keys enumerates every key currently present.
func (s *File) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	return keys, nil
}

// Close releases the file lock. Idempotent.
func (s *File) Close() error {
	return s.fileLock.Unlock()
}
