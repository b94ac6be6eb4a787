// Package testutil sets up the shared store for package tests.
package testutil

import (
	"testing"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory SQLite database, migrates every CMS table and
// installs it as config.CmsGorm for the duration of the test.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// each new connection to :memory: is a fresh empty database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	previous := config.CmsGorm
	config.CmsGorm = db
	t.Cleanup(func() {
		config.CmsGorm = previous
		_ = sqlDB.Close()
	})

	return db
}
