// Package credstore persists the current token pair across process
// restarts. Scope is single-user, single-device: one opaque blob under
// one key, overwritten on login and removed on logout.
package credstore

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/oladimeji-kazeem/budgetpro/internal/domain"
)

const (
	bucketName = "auth"
	tokensKey  = "authTokens"
)

// Store is the durable holder of the current token pair.
type Store interface {
	// Save persists the pair. Last write wins.
	Save(pair domain.TokenPair) error
	// Load returns the persisted pair, or ok=false when nothing usable
	// is stored. A corrupt blob is reported as absent, never as an
	// error; the caller treats it identically to "never logged in".
	Load() (domain.TokenPair, bool)
	// Clear removes any persisted pair. Idempotent.
	Clear() error
}

// FileStore implements Store backed by a bbolt database file.
type FileStore struct {
	db *bolt.DB
}

var _ Store = (*FileStore)(nil)

// Open opens (or creates) the credential database at path.
func Open(path string) (*FileStore, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("opening credential store: %w", err)
	}
	return &FileStore{db: db}, nil
}

// Close closes the underlying database.
func (s *FileStore) Close() error {
	return s.db.Close()
}

// Save persists the token pair, replacing any previous value.
func (s *FileStore) Save(pair domain.TokenPair) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		if err != nil {
			return err
		}
		data, err := json.Marshal(pair)
		if err != nil {
			return err
		}
		return b.Put([]byte(tokensKey), data)
	})
}

// Load returns the persisted pair if one exists and parses cleanly.
func (s *FileStore) Load() (domain.TokenPair, bool) {
	var pair domain.TokenPair
	found := false

	_ = s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b == nil {
			return nil
		}
		data := b.Get([]byte(tokensKey))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &pair); err != nil {
			// corrupt blob, treated as absent
			return nil
		}
		found = true
		return nil
	})

	if !found {
		return domain.TokenPair{}, false
	}
	return pair, true
}

// Clear removes the persisted pair if present.
func (s *FileStore) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b == nil {
			return nil
		}
		return b.Delete([]byte(tokensKey))
	})
}
