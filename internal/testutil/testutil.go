// Package testutil provides the shared test database setup: an in-memory
// sqlite store with the real schema and, optionally, the first-boot fixture
// data.
package testutil

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"campus_transport/internal/config"
	"campus_transport/internal/seed"
	"campus_transport/internal/store"
)

// OpenDB opens a fresh in-memory database with the full schema. A single
// connection is forced so every query sees the same in-memory file.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// NewStore returns a Store over a fresh empty database.
func NewStore(t *testing.T) store.Store {
	t.Helper()
	return store.New(OpenDB(t))
}

// SeededStore returns a Store preloaded with the first-boot fixtures
// (admin/admin123, five routes, five drivers, five buses, two students).
func SeededStore(t *testing.T) store.Store {
	t.Helper()
	st := NewStore(t)
	if err := seed.Bootstrap(context.Background(), st); err != nil {
		t.Fatalf("failed to seed test database: %v", err)
	}
	return st
}

// UintPtr is a literal helper for nullable foreign keys.
func UintPtr(v uint) *uint {
	return &v
}
