package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/Abhisheklearn12/kvstore/pkg/kv"
)

// LoadMode controls what Load does with entries already in the store.
type LoadMode int

const (
	// LoadMerge overwrites same-keyed entries and keeps the rest.
	// This matches the historical behavior of the store.
	LoadMerge LoadMode = iota

	// LoadReplace clears the mapping before applying the loaded entries.
	LoadReplace
)

// ParseLoadMode maps a config string to a LoadMode. The empty string
// defaults to merge.
func ParseLoadMode(s string) (LoadMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "merge":
		return LoadMerge, nil
	case "replace":
		return LoadReplace, nil
	default:
		return LoadMerge, fmt.Errorf("%w: %q", ErrInvalidLoadMode, s)
	}
}

// encodeEntries renders entries as newline-delimited key=value text.
// Keys and values are written verbatim with no escaping: entries whose key
// contains '=' or whose key/value contains a newline do not round-trip.
func encodeEntries(entries []kv.Entry) []byte {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.Key)
		b.WriteByte('=')
		b.WriteString(e.Value)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// decodeEntries parses key=value lines. Each line is split once on the
// first '=': the part before is the key, the remainder (which may itself
// contain '=') is the value. Lines without a separator are skipped.
func decodeEntries(data []byte) []kv.Entry {
	var entries []kv.Entry
	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		entries = append(entries, kv.Entry{Key: key, Value: value})
	}
	return entries
}

// writeSnapshot writes entries to path, replacing any existing file.
func writeSnapshot(path string, entries []kv.Entry) error {
	if err := os.WriteFile(path, encodeEntries(entries), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrSnapshotWriteFailed, err)
	}
	return nil
}

// readSnapshot reads and decodes the snapshot file at path.
func readSnapshot(path string) ([]kv.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnapshotReadFailed, err)
	}
	return decodeEntries(data), nil
}
