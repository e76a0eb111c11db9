package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/inkstone-blog/core/internal/config"
	"github.com/inkstone-blog/core/internal/models"
	"github.com/inkstone-blog/core/internal/pkg/apperr"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// connectTimeout bounds connection acquisition so a request fails with a
// storage error instead of hanging on an unreachable database.
const connectTimeout = 5 * time.Second

var (
	mu     sync.Mutex
	handle *gorm.DB
)

// Connect returns the shared database handle, opening it on first use.
// The mutex collapses concurrent first callers onto a single in-flight
// attempt; a failed attempt leaves the handle unset so the next caller
// retries instead of inheriting a permanently cached failure.
func Connect(cfg *config.AppConfig) (*gorm.DB, error) {
	mu.Lock()
	defer mu.Unlock()

	if handle != nil {
		return handle, nil
	}

	db, err := open(cfg)
	if err != nil {
		return nil, err
	}

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	handle = db
	return handle, nil
}

func open(cfg *config.AppConfig) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.IsDev() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:               cfg.Database.DSNValue(),
		DefaultStringSize: 191,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, apperr.Storage(fmt.Errorf("database connection failed: %w", err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, apperr.Storage(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, apperr.Storage(fmt.Errorf("database unreachable: %w", err))
	}

	return db, nil
}

// migrate runs GORM auto-migration for all models.
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.ArticleModel{},
		&models.TagModel{},
		&models.SettingsModel{},
		&models.AuditModel{},
	)
}
