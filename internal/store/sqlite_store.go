package store

import "github.com/inovacc/clockr/internal/store/sqlite"

// SQLite wraps the sqlite.Store to implement the Store interface.
type SQLite struct {
	store *sqlite.Store
}

// NewSQLite creates or opens an SQLite database at the specified path.
func NewSQLite(path string) (*SQLite, error) {
	s, err := sqlite.New(path)
	if err != nil {
		return nil, err
	}

	return &SQLite{store: s}, nil
}

func (w *SQLite) Ping() error {
	return w.store.Ping()
}

func (w *SQLite) Get(key string) ([]byte, error) {
	return w.store.Get(key)
}

func (w *SQLite) Put(key string, value []byte) error {
	return w.store.Put(key, value)
}

func (w *SQLite) Delete(key string) error {
	return w.store.Delete(key)
}

func (w *SQLite) Close() error {
	return w.store.Close()
}
