package database

import (
	"encoding/json"
	"errors"
	"fmt"

	"nft-asset-bridge/model"
	"nft-asset-bridge/storage"
)

// BlobStore idempotency store backed by a blob storage backend: one JSON
// object per derived code, named by the code's lowercase hex string. This
// is the default store and matches the on-disk layout of the local backend
// (one file per code).
type BlobStore struct {
	backend storage.Storage
}

// NewBlobStore create blob-backed store instance
func NewBlobStore(backend storage.Storage) (Store, error) {
	if backend == nil {
		return nil, fmt.Errorf("%w: no storage backend", ErrCreateRecord)
	}
	return &BlobStore{backend: backend}, nil
}

// Exists check if a record object exists under the code
func (s *BlobStore) Exists(code string) (bool, error) {
	ok, err := s.backend.Exists(code)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrCreateRecord, err)
	}
	return ok, nil
}

// Commit write the record object, write-once
func (s *BlobStore) Commit(record *model.IssuanceRecord) error {
	exists, err := s.backend.Exists(record.Code)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCreateRecord, err)
	}
	if exists {
		return ErrAlreadyExists
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodeRecord, err)
	}

	if err := s.backend.Save(record.Code, data); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteRecord, err)
	}
	return nil
}

// Lookup read the record object under the code
func (s *BlobStore) Lookup(code string) (*model.IssuanceRecord, error) {
	data, err := s.backend.Get(code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read issuance record: %w", err)
	}

	var record model.IssuanceRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode issuance record: %w", err)
	}
	return &record, nil
}

// Close no resources held beyond the backend
func (s *BlobStore) Close() error {
	return nil
}
