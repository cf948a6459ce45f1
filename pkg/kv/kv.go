package kv

// Entry is a single key-value pair as returned by Store.List.
type Entry struct {
	Key   string
	Value string
}

// Store defines the interface for a key-value store.
// Implementations of this interface can be swapped out,
// allowing for different storage backends (e.g., in-memory, bolt-backed).
//
// All implementations must be safe for concurrent use: every method
// serializes against the store's internal lock.
type Store interface {
	// Get retrieves the value associated with the given key.
	// Returns the value and true if the key exists, or empty string and false if not.
	// An empty string value is distinct from an absent key.
	Get(key string) (string, bool)

	// Set stores a key-value pair, overwriting any previous value.
	// Returns an error if the operation fails.
	Set(key, value string) error

	// Delete removes a key from the store. It is not an error to delete
	// a key that does not exist.
	Delete(key string) error

	// Exists reports whether the key is present in the store.
	Exists(key string) bool

	// Clear removes every entry from the store.
	Clear() error

	// List returns a snapshot of all entries taken under the store's lock.
	// Iteration order is unspecified and may vary between calls.
	List() []Entry

	// Len returns the number of entries currently stored.
	Len() int

	// Save writes every entry to the file at path as newline-delimited
	// key=value text, overwriting any existing file. On failure the
	// in-memory state is left untouched and the error is returned.
	Save(path string) error

	// Load reads newline-delimited key=value text from the file at path.
	// Lines without a '=' separator are skipped. On open failure the
	// store's state is left exactly as it was and the error is returned.
	Load(path string) error
}
