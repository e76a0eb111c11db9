// Package testutil provides shared test fixtures. Tests run against an
// in-memory SQLite database with the same migrated schema as production.
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/inkstone-blog/core/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a fresh in-memory database migrated with all models.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	// Every pooled connection would get its own in-memory database, so pin
	// the pool to a single connection.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.UserModel{},
		&models.ArticleModel{},
		&models.TagModel{},
		&models.SettingsModel{},
		&models.AuditModel{},
	); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}
