package database

import (
	"errors"
	"strings"

	"campus-notice-backend/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgresConnection opens the shared gorm connection. TranslateError is
// enabled so unique-constraint races surface as gorm.ErrDuplicatedKey.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
}

// IsDuplicateKey recognizes a unique-constraint violation across drivers.
// gorm translates postgres 23505 to ErrDuplicatedKey; sqlite reports a
// UNIQUE constraint message.
func IsDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint") || strings.Contains(msg, "duplicate key")
}
