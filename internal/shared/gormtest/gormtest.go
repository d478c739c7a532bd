// Package gormtest wires GORM's postgres dialect to go-sqlmock for repository tests.
package gormtest

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New returns a GORM handle backed by sqlmock. The mock connection is closed
// when the test ends.
func New(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}

	return db, mock
}

// DryRun returns a GORM handle that only builds statements, for asserting SQL.
func DryRun(t *testing.T) *gorm.DB {
	t.Helper()

	db, _ := New(t)
	return db.Session(&gorm.Session{DryRun: true})
}
