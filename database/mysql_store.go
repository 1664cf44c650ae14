package database

import (
	"errors"
	"fmt"
	"log"
	"time"

	"nft-asset-bridge/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MySQLStore MySQL-backed idempotency store. The code is the primary key,
// so write-once is enforced by the database itself.
type MySQLStore struct {
	db *gorm.DB
}

// MySQLConfig MySQL configuration
type MySQLConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

// NewMySQLStore create MySQL store instance
func NewMySQLStore(config *MySQLConfig) (Store, error) {
	db, err := gorm.Open(mysql.Open(config.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Needed so duplicate-key errors surface as gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect MySQL: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Set connection pool
	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&model.IssuanceRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate issuance records: %w", err)
	}

	log.Println("MySQL store connected successfully")
	return &MySQLStore{db: db}, nil
}

// Exists check if a record exists under the code
func (s *MySQLStore) Exists(code string) (bool, error) {
	var count int64
	err := s.db.Model(&model.IssuanceRecord{}).Where("code = ?", code).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrCreateRecord, err)
	}
	return count > 0, nil
}

// Commit write the record, write-once via the primary key
func (s *MySQLStore) Commit(record *model.IssuanceRecord) error {
	err := s.db.Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("%w: %v", ErrWriteRecord, err)
	}
	return nil
}

// Lookup read the record under the code
func (s *MySQLStore) Lookup(code string) (*model.IssuanceRecord, error) {
	var record model.IssuanceRecord
	err := s.db.Where("code = ?", code).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read issuance record: %w", err)
	}
	return &record, nil
}

// Close close the underlying connection pool
func (s *MySQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
