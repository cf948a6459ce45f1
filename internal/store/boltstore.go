package store

import (
	"bytes"
	"fmt"

	"github.com/hashicorp/go-hclog"
	bolt "go.etcd.io/bbolt"

	"github.com/Abhisheklearn12/kvstore/pkg/kv"
)

// entriesBucket is the single bucket holding all key-value pairs.
var entriesBucket = []byte("entries")

// BoltStore is a kv.Store backed by a bolt database file. Unlike MemStore
// it survives process restarts without an explicit save, but it speaks the
// same flat key=value snapshot format, so snapshots written by one backend
// can be loaded by the other.
type BoltStore struct {
	db       *bolt.DB
	loadMode LoadMode
	logger   hclog.Logger
}

// Compile-time check to ensure BoltStore implements kv.Store.
var _ kv.Store = (*BoltStore)(nil)

// OpenBoltStore opens (creating if needed) the bolt database at path and
// ensures the entries bucket exists.
func OpenBoltStore(path string, logger hclog.Logger, mode LoadMode) (*BoltStore, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	db, err := bolt.Open(path, 0o644, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBoltOpenFailed, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(entriesBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %w", ErrBoltOpenFailed, err)
	}

	return &BoltStore{db: db, loadMode: mode, logger: logger}, nil
}

// Close releases the underlying database file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Get retrieves a value by key.
// A cursor seek is used instead of bucket.Get so that keys stored with an
// empty value are still reported as present.
func (s *BoltStore) Get(key string) (string, bool) {
	var (
		val   string
		found bool
	)

	s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(entriesBucket).Cursor()
		k, v := c.Seek([]byte(key))
		if bytes.Equal(k, []byte(key)) {
			val = string(v)
			found = true
		}
		return nil
	})

	return val, found
}

// Set stores a key-value pair.
func (s *BoltStore) Set(key, value string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(entriesBucket).Put([]byte(key), []byte(value))
	})
	if err != nil {
		s.logger.Error("could not set key", "key", key, "error", err)
		return fmt.Errorf("%w: %w", ErrBoltWriteFailed, err)
	}

	s.logger.Info("set key", "key", key, "value", value)
	return nil
}

// Delete removes a key. Deleting an absent key is a no-op.
func (s *BoltStore) Delete(key string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(entriesBucket).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBoltWriteFailed, err)
	}

	s.logger.Info("removed key", "key", key)
	return nil
}

// Exists reports whether the key is present.
func (s *BoltStore) Exists(key string) bool {
	_, found := s.Get(key)
	return found
}

// Clear drops and recreates the entries bucket.
func (s *BoltStore) Clear() error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(entriesBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucket(entriesBucket)
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBoltWriteFailed, err)
	}

	s.logger.Info("store cleared")
	return nil
}

// List returns a snapshot of all entries in key order (bolt iterates its
// B+tree lexicographically; callers must not rely on that).
func (s *BoltStore) List() []kv.Entry {
	var entries []kv.Entry

	s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(entriesBucket).ForEach(func(k, v []byte) error {
			entries = append(entries, kv.Entry{Key: string(k), Value: string(v)})
			return nil
		})
	})

	return entries
}

// Len returns the number of entries currently stored.
func (s *BoltStore) Len() int {
	var n int

	s.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket(entriesBucket).Stats().KeyN
		return nil
	})

	return n
}

// Save writes every entry to path as flat key=value text.
func (s *BoltStore) Save(path string) error {
	entries := s.List()

	if err := writeSnapshot(path, entries); err != nil {
		s.logger.Error("could not write snapshot", "path", path, "error", err)
		return err
	}

	s.logger.Info("data saved", "path", path, "entries", len(entries))
	return nil
}

// Load reads flat key=value text from path and applies it in a single
// write transaction, honoring the configured load mode. Bolt rejects empty
// keys, so lines like "=value" are skipped with a warning instead of
// failing the whole load; the memory backend stores them.
func (s *BoltStore) Load(path string) error {
	entries, err := readSnapshot(path)
	if err != nil {
		s.logger.Error("could not open file", "path", path, "error", err)
		return err
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(entriesBucket)

		if s.loadMode == LoadReplace {
			if err := tx.DeleteBucket(entriesBucket); err != nil {
				return err
			}
			fresh, err := tx.CreateBucket(entriesBucket)
			if err != nil {
				return err
			}
			b = fresh
		}

		for _, e := range entries {
			if e.Key == "" {
				s.logger.Warn("skipping entry with empty key", "path", path)
				continue
			}
			if err := b.Put([]byte(e.Key), []byte(e.Value)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBoltWriteFailed, err)
	}

	s.logger.Info("data loaded", "path", path, "entries", len(entries))
	return nil
}
