// Package localstore is a single-file implementation of the repository
// contracts, backed by bbolt. It serves the batch CLI, which has no database
// to talk to: expenses for every user live in one bucket keyed by record ID,
// partitioned at read/write time by user ID, the way the hosted store
// partitions its table. Concurrent writers from separate processes are
// last-write-wins at whole-store granularity; that limitation is accepted,
// not hidden.
package localstore

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const (
	expensesBucket = "expenses"
	usersBucket    = "users"
)

// Store wraps a bbolt file holding expenses and users.
type Store struct {
	db *bbolt.DB
}

// Open opens (creating if needed) the store file and its buckets.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening local store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(expensesBucket)); err != nil {
			return err
		}
		if _, err := tx.CreateBucketIfNotExists([]byte(usersBucket)); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating buckets: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying file.
func (s *Store) Close() error {
	return s.db.Close()
}

func marshalValue(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling record: %w", err)
	}
	return data, nil
}
