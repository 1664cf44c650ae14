package database

import (
	"nft-asset-bridge/conf"
	"nft-asset-bridge/model"
	"nft-asset-bridge/storage"
)

// Store durable, write-once-per-key record of issuance requests. Keys are
// the lowercase hex encoding of the derived asset code. Records are never
// mutated or deleted.
type Store interface {
	// Exists report whether a record is committed under the code
	Exists(code string) (bool, error)
	// Commit write the record under its code. Write-once: committing a
	// second record for the same code returns ErrAlreadyExists.
	Commit(record *model.IssuanceRecord) error
	// Lookup read the record committed under the code, ErrNotFound if absent
	Lookup(code string) (*model.IssuanceRecord, error)
	// General operations
	Close() error
}

// StoreType store type
type StoreType string

const (
	StoreTypeBlob   StoreType = "blob"
	StoreTypePebble StoreType = "pebble"
	StoreTypeMySQL  StoreType = "mysql"
)

// DB global store instance
var DB Store

// InitStore initialize the idempotency store from configuration. The blob
// store needs a storage backend; the other types ignore it.
func InitStore(stor storage.Storage) error {
	var err error

	switch StoreType(conf.Cfg.Store.Type) {
	case StoreTypeBlob:
		DB, err = NewBlobStore(stor)
	case StoreTypePebble:
		DB, err = NewPebbleStore(&PebbleConfig{DataDir: conf.Cfg.Store.DataDir})
	case StoreTypeMySQL:
		DB, err = NewMySQLStore(&MySQLConfig{
			DSN:          conf.Cfg.Store.Dsn,
			MaxOpenConns: conf.Cfg.Store.MaxOpenConns,
			MaxIdleConns: conf.Cfg.Store.MaxIdleConns,
		})
	default:
		return ErrUnsupportedStoreType
	}

	return err
}
