// Package session persists client credentials between process runs, the way
// the browser front end kept them in local storage. Stores are plain string
// key/value maps: last write wins and nothing expires.
package session

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store is a persistent string key/value map.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Open returns the store for backend. path is ignored by the memory backend;
// when empty, DefaultPath(backend) is used.
func Open(backend, path string) (Store, error) {
	if path == "" && backend != BackendMemory {
		p, err := DefaultPath(backend)
		if err != nil {
			return nil, err
		}
		path = p
	}
	switch backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case "", BackendFile:
		return NewFileStore(path)
	case BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unsupported session backend %q", backend)
	}
}

// DefaultPath returns the per-user location of the session file for backend.
func DefaultPath(backend string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	name := "session.json"
	if backend == BackendSQLite {
		name = "session.db"
	}
	return filepath.Join(dir, "wanderlust", name), nil
}
