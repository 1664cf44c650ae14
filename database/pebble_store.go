package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"nft-asset-bridge/model"

	"github.com/cockroachdb/pebble"
)

// PebbleStore PebbleDB-backed idempotency store.
// key: {code}, value: JSON(IssuanceRecord)
type PebbleStore struct {
	db *pebble.DB
}

// PebbleConfig PebbleDB configuration
type PebbleConfig struct {
	DataDir string
}

// NewPebbleStore create PebbleDB store instance
func NewPebbleStore(config *PebbleConfig) (Store, error) {
	if config.DataDir == "" {
		config.DataDir = "./data"
	}

	if err := os.MkdirAll(config.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", config.DataDir, err)
	}

	path := filepath.Join(config.DataDir, "issuance_db")
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open issuance db at %s: %w", path, err)
	}

	log.Printf("PebbleDB store opened at %s", path)
	return &PebbleStore{db: db}, nil
}

// Exists check if a record exists under the code
func (s *PebbleStore) Exists(code string) (bool, error) {
	_, closer, err := s.db.Get([]byte(code))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", ErrCreateRecord, err)
	}
	closer.Close()
	return true, nil
}

// Commit write the record, write-once
func (s *PebbleStore) Commit(record *model.IssuanceRecord) error {
	exists, err := s.Exists(record.Code)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyExists
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodeRecord, err)
	}

	if err := s.db.Set([]byte(record.Code), data, pebble.Sync); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteRecord, err)
	}
	return nil
}

// Lookup read the record under the code
func (s *PebbleStore) Lookup(code string) (*model.IssuanceRecord, error) {
	data, closer, err := s.db.Get([]byte(code))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read issuance record: %w", err)
	}
	defer closer.Close()

	var record model.IssuanceRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode issuance record: %w", err)
	}
	return &record, nil
}

// Close close the underlying database
func (s *PebbleStore) Close() error {
	return s.db.Close()
}
