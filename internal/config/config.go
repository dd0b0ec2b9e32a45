// Package config provides application configuration loaded from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Database DatabaseConfig
	Redis    RedisConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string
	ReadTimeout  int // seconds
	WriteTimeout int // seconds
	IdleTimeout  int // seconds
}

// StoreConfig selects where collections are persisted.
type StoreConfig struct {
	Backend string // memory, sql or redis
}

// DatabaseConfig holds SQL connection settings for the sql store backend.
type DatabaseConfig struct {
	Driver   string // sqlite, postgres or mysql
	Path     string // sqlite file
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	// Migrations selects versioned SQL migrations instead of AutoMigrate.
	// Only postgres ships migration files.
	Migrations bool
}

// RedisConfig holds settings for the redis store backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Dev           bool
	LogLevel      string
	SessionSecret string
}

// DSN returns the connection string for the configured driver.
func (d DatabaseConfig) DSN() string {
	switch d.Driver {
	case "postgres":
		return fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
		)
	case "mysql":
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true",
			d.User, d.Password, d.Host, d.Port, d.DBName,
		)
	default:
		return d.Path
	}
}

// Validate reports configuration combinations that cannot work.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case "memory", "redis":
	case "sql":
		switch c.Database.Driver {
		case "sqlite", "postgres", "mysql":
		default:
			return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
		}
		if c.Database.Migrations && c.Database.Driver != "postgres" {
			return fmt.Errorf("MIGRATIONS requires DB_DRIVER=postgres, got %q", c.Database.Driver)
		}
	default:
		return fmt.Errorf("unsupported STORE_BACKEND %q", c.Store.Backend)
	}
	if !c.App.Dev && c.App.SessionSecret == defaultSessionSecret {
		return fmt.Errorf("SESSION_SECRET must be set outside dev mode")
	}
	return nil
}

const defaultSessionSecret = "devsessionsecret"

// Load reads configuration from environment variables.
// It uses sensible defaults for local development.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Store: StoreConfig{
			Backend: strings.ToLower(getEnv("STORE_BACKEND", "sql")),
		},
		Database: DatabaseConfig{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
			Path:     getEnv("DB_PATH", "billing.db"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "billing"),
			Password: getEnv("DB_PASSWORD", "billing123"),
			DBName:   getEnv("DB_NAME", "billing"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),

			Migrations: getEnvBool("MIGRATIONS", false),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			Prefix:   getEnv("REDIS_PREFIX", "billing"),
		},
		App: AppConfig{
			Dev:           getEnvBool("DEV", true),
			LogLevel:      getEnv("LOG_LEVEL", "info"),
			SessionSecret: getEnv("SESSION_SECRET", defaultSessionSecret),
		},
	}
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

// getEnvBool returns the boolean value of an environment variable or a default.
// Accepts "1", "true", "yes" as true; everything else is false.
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "1" || value == "true" || value == "yes"
}
