// Package config loads runtime configuration from a YAML file with
// environment-variable overrides. Everything is resolved once at startup.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort       = 3000
	defaultEnv        = "development"
	defaultAPIPrefix  = "/api"
	defaultJWTExpiry  = 3600
	defaultDBHost     = "127.0.0.1"
	defaultDBPort     = 3306
	defaultDBUser     = "root"
	defaultDBName     = "inkstone"
	defaultAdminEmail = "admin@example.com"
)

// DatabaseConfig describes the MySQL connection, either as a full DSN or as
// discrete fields composed into one.
type DatabaseConfig struct {
	DSN      string `yaml:"dsn"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// AppConfig holds runtime startup configuration.
type AppConfig struct {
	Port             int            `yaml:"port"`
	Env              string         `yaml:"env"` // "development" | "production"
	APIPrefix        string         `yaml:"api_prefix"`
	Database         DatabaseConfig `yaml:"database"`
	RedisURL         string         `yaml:"redis_url"` // optional; empty disables the response cache
	JWTSecret        string         `yaml:"jwt_secret"`
	JWTExpirySeconds int            `yaml:"jwt_expires_in"`
	AdminEmail       string         `yaml:"admin_email"`    // seed-time bootstrap only
	AdminPassword    string         `yaml:"admin_password"` // seed-time bootstrap only
}

// Load reads the YAML config at path (missing file falls back to defaults),
// applies environment overrides and validates the result. A missing JWT
// secret is a fatal startup condition.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// env-only configuration
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, errors.New("jwt_secret is required (set JWT_SECRET or jwt_secret in config)")
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("API_PREFIX"); v != "" {
		cfg.APIPrefix = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = p
		}
	}
	if v := os.Getenv("DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.RedisURL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("JWT_EXPIRES_IN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.JWTExpirySeconds = n
		}
	}
	if v := os.Getenv("ADMIN_EMAIL"); v != "" {
		cfg.AdminEmail = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		cfg.AdminPassword = v
	}
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	if cfg.APIPrefix == "" {
		cfg.APIPrefix = defaultAPIPrefix
	}
	if !strings.HasPrefix(cfg.APIPrefix, "/") {
		cfg.APIPrefix = "/" + cfg.APIPrefix
	}
	if cfg.JWTExpirySeconds <= 0 {
		cfg.JWTExpirySeconds = defaultJWTExpiry
	}
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = defaultAdminEmail
	}
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool { return c.Env != "production" }

// JWTExpiry returns the token lifetime as a duration.
func (c *AppConfig) JWTExpiry() time.Duration {
	return time.Duration(c.JWTExpirySeconds) * time.Second
}

// DSNValue returns the MySQL DSN, composing one from discrete fields when no
// full DSN is configured.
func (c DatabaseConfig) DSNValue() string {
	if dsn := strings.TrimSpace(c.DSN); dsn != "" {
		return dsn
	}

	host := c.Host
	if host == "" {
		host = defaultDBHost
	}
	port := c.Port
	if port == 0 {
		port = defaultDBPort
	}
	user := c.User
	if user == "" {
		user = defaultDBUser
	}
	name := c.Name
	if name == "" {
		name = defaultDBName
	}

	mc := mysqldriver.NewConfig()
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", host, port)
	mc.User = user
	mc.Passwd = c.Password
	mc.DBName = name
	mc.ParseTime = true
	mc.Loc = time.Local
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}
