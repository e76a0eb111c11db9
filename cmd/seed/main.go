// Command seed bootstraps the admin account and default settings. It is
// idempotent; rerunning it updates the admin password in place.
package main

import (
	"flag"
	"strings"

	"github.com/inkstone-blog/core/internal/config"
	"github.com/inkstone-blog/core/internal/database"
	"github.com/inkstone-blog/core/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Path to YAML config file")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	if strings.TrimSpace(cfg.AdminPassword) == "" {
		logger.Fatal("admin_password is required (set ADMIN_PASSWORD or admin_password in config)")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal("failed to hash password", zap.Error(err))
	}

	admin := models.UserModel{
		Email:    strings.ToLower(strings.TrimSpace(cfg.AdminEmail)),
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"password", "role", "updated_at"}),
	}).Create(&admin).Error; err != nil {
		logger.Fatal("failed to seed admin user", zap.Error(err))
	}
	logger.Info("admin user ready", zap.String("email", admin.Email))

	defaults := models.DefaultSettings()
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoNothing: true,
	}).Create(&defaults).Error; err != nil {
		logger.Fatal("failed to seed settings", zap.Error(err))
	}
	logger.Info("settings ready", zap.String("blogTitle", defaults.BlogTitle))
}
