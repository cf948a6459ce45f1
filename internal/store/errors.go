package store

import "errors"

var (
	// ErrSnapshotWriteFailed indicates the snapshot file could not be written.
	ErrSnapshotWriteFailed = errors.New("snapshot write failed")
	// ErrSnapshotReadFailed indicates the snapshot file could not be read.
	ErrSnapshotReadFailed = errors.New("snapshot read failed")
	// ErrInvalidLoadMode is returned for an unrecognized load_mode value.
	ErrInvalidLoadMode = errors.New("invalid load mode (want merge or replace)")
	// ErrBoltOpenFailed indicates the bolt database file could not be opened.
	ErrBoltOpenFailed = errors.New("bolt open failed")
	// ErrBoltWriteFailed indicates a write transaction against bolt failed.
	ErrBoltWriteFailed = errors.New("bolt write failed")
)
