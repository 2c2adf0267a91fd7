package store

import (
	"fmt"
	"path/filepath"
)

// Store is the key-value persistence the settings layer is built on.
type Store interface {
	Ping() error

	// Get returns nil, nil when the key is absent.
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error

	// Delete is a no-op for absent keys.
	Delete(key string) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
)

// Open opens the named backend inside dir.
func Open(backend, dir string) (Store, error) {
	switch backend {
	case "", BackendBolt:
		return NewBolt(filepath.Join(dir, "clockr.bolt"))
	case BackendSQLite:
		return NewSQLite(filepath.Join(dir, "clockr.db"))
	default:
		return nil, fmt.Errorf("unknown storage backend %q (want %s or %s)", backend, BackendBolt, BackendSQLite)
	}
}
