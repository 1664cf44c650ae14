package database

import "errors"

var (
	// ErrNotFound no record exists under the requested code
	ErrNotFound = errors.New("issuance record not found")

	// ErrAlreadyExists a record already exists under the code; records are
	// write-once
	ErrAlreadyExists = errors.New("issuance record already exists")

	// ErrUnsupportedStoreType unknown store type in configuration
	ErrUnsupportedStoreType = errors.New("unsupported store type")

	// Commit failure points, kept distinct so the service can map each to
	// its stable response code.
	ErrCreateRecord = errors.New("failed to create issuance record")
	ErrEncodeRecord = errors.New("failed to encode issuance record")
	ErrWriteRecord  = errors.New("failed to write issuance record")
)
