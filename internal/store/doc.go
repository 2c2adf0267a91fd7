// Package store provides the storage abstraction layer for clockr.
//
// The [Store] interface is a small key-value contract: the settings layer
// persists one JSON document per key and never needs more. Two backends
// implement it:
//   - [Bolt], an embedded bbolt file (the default)
//   - [SQLite], a single kv table in a pure Go SQLite database
//
// Use [Open] to select a backend by name:
//
//	db, err := store.Open(store.BackendBolt, dataDir)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
package store
