package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrClosed is returned by every operation attempted after Close.
	ErrClosed = errors.New("storage is closed")
)
