// Package preferences provides durable key-value stores for user
// preferences. Every failure is reported as errors.StorageUnavailable.
package preferences

import (
	"context"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/narwhalmedia/marquee/pkg/errors"
)

var bucketName = []byte("preferences")

// BoltStore keeps preferences in a single bbolt bucket.
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens or creates the bbolt file at path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.StorageUnavailable("open preferences", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.StorageUnavailable("create preferences bucket", err)
	}

	return &BoltStore{db: db}, nil
}

// Get returns the value stored under key.
func (s *BoltStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, errors.StorageUnavailable("read preference", err)
	}

	var (
		value string
		found bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		if raw := tx.Bucket(bucketName).Get([]byte(key)); raw != nil {
			value = string(raw)
			found = true
		}
		return nil
	})
	if err != nil {
		return "", false, errors.StorageUnavailable("read preference", err)
	}
	return value, found, nil
}

// Set stores value under key.
func (s *BoltStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return errors.StorageUnavailable("write preference", err)
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return errors.StorageUnavailable("write preference", err)
	}
	return nil
}

// Close releases the database file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
