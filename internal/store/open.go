package store

import (
	"fmt"
	"io"
)

// New builds the KeyValueStore named by backend. The returned closer must be
// called when the store is no longer needed.
func New(backend, directory, sqlitePath string) (KeyValueStore, io.Closer, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(directory), nopCloser{}, nil
	case BackendSQLite:
		s, err := NewSQLiteStore(sqlitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case BackendMemory:
		return NewMemoryStore(), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
