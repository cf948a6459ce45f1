package store

import (
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/Abhisheklearn12/kvstore/pkg/kv"
)

// MemStore is an in-memory implementation of the kv.Store interface.
// It uses a map protected by a RWMutex for thread-safe operations.
type MemStore struct {
	mu       sync.RWMutex
	data     map[string]string
	loadMode LoadMode
	logger   hclog.Logger
}

// Compile-time check to ensure MemStore implements kv.Store.
var _ kv.Store = (*MemStore)(nil)

// NewMemStore creates and returns a new MemStore instance.
// A nil logger is replaced with a no-op logger.
func NewMemStore(logger hclog.Logger, mode LoadMode) *MemStore {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &MemStore{
		data:     make(map[string]string),
		loadMode: mode,
		logger:   logger,
	}
}

// Get retrieves a value by key from the store.
// Returns the value and true if found, empty string and false otherwise.
func (s *MemStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	return val, ok
}

// Set stores a key-value pair in the store.
// Always returns nil for in-memory operations.
func (s *MemStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	s.logger.Info("set key", "key", key, "value", value)
	return nil
}

// Delete removes a key from the store.
// Always returns nil, even if the key doesn't exist.
func (s *MemStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	s.logger.Info("removed key", "key", key)
	return nil
}

// Exists reports whether the key is present in the store.
func (s *MemStore) Exists(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.data[key]
	return ok
}

// Clear removes every entry from the store.
func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string]string)
	s.logger.Info("store cleared")
	return nil
}

// List returns a snapshot of all entries. Map iteration order is not
// deterministic, so the order varies between calls.
func (s *MemStore) List() []kv.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]kv.Entry, 0, len(s.data))
	for k, v := range s.data {
		entries = append(entries, kv.Entry{Key: k, Value: v})
	}
	return entries
}

// Len returns the number of entries currently stored.
func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.data)
}

// Save serializes the store to the file at path as key=value lines.
// The lock is held for the whole write, so the snapshot is atomic with
// respect to other store operations.
func (s *MemStore) Save(path string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]kv.Entry, 0, len(s.data))
	for k, v := range s.data {
		entries = append(entries, kv.Entry{Key: k, Value: v})
	}

	if err := writeSnapshot(path, entries); err != nil {
		s.logger.Error("could not write snapshot", "path", path, "error", err)
		return err
	}

	s.logger.Info("data saved", "path", path, "entries", len(entries))
	return nil
}

// Load reads key=value lines from the file at path. In merge mode loaded
// entries overwrite same-keyed entries but leave the rest of the mapping
// alone; in replace mode the mapping is cleared first. On open failure the
// store is left exactly as it was.
// The lock is held across the file read as well, so Load is atomic with
// respect to other store operations.
func (s *MemStore) Load(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := readSnapshot(path)
	if err != nil {
		s.logger.Error("could not open file", "path", path, "error", err)
		return err
	}

	if s.loadMode == LoadReplace {
		s.data = make(map[string]string, len(entries))
	}
	for _, e := range entries {
		s.data[e.Key] = e.Value
	}

	s.logger.Info("data loaded", "path", path, "entries", len(entries))
	return nil
}
