// Package db opens the configured persistence backend.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vijay-heerarajan/billing-app/internal/config"
	"github.com/vijay-heerarajan/billing-app/internal/store"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const connectAttempts = 5

// Dialector returns the gorm dialector for the configured driver.
func Dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	dsn := cfg.DSN()
	switch cfg.Driver {
	case "sqlite":
		return sqlite.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Connect opens a gorm connection, retrying to give the server time to start.
func Connect(cfg config.DatabaseConfig, log logrus.FieldLogger, debug bool) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	logLevel := logger.Silent
	if debug {
		logLevel = logger.Info
	}
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	log.WithFields(logrus.Fields{
		"driver": cfg.Driver,
		"host":   cfg.Host,
		"dbname": cfg.DBName,
	}).Info("connecting to database")

	var conn *gorm.DB
	for i := 1; i <= connectAttempts; i++ {
		conn, err = gorm.Open(dialector, gcfg)
		if err == nil {
			break
		}
		log.WithError(err).WithField("attempt", i).Warn("database connection failed, retrying")
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database after retries: %w", err)
	}
	return conn, nil
}

// OpenStore builds the store selected by cfg.Store.Backend. The returned
// close function releases the underlying connection.
func OpenStore(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (store.Store, func() error, error) {
	switch cfg.Store.Backend {
	case "memory":
		log.Warn("using in-memory store; data is lost on restart")
		return store.NewMemoryStore(), func() error { return nil }, nil
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return store.NewRedisStore(rdb, cfg.Redis.Prefix), rdb.Close, nil
	case "sql":
		conn, err := Connect(cfg.Database, log, cfg.App.Dev && cfg.App.LogLevel == "debug")
		if err != nil {
			return nil, nil, err
		}
		s := store.NewSQLStore(conn)
		if cfg.Database.Migrations {
			log.Info("running sql migrations")
			err = runSQLMigrations(cfg.Database)
		} else {
			err = s.Migrate()
		}
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := conn.DB()
		if err != nil {
			return nil, nil, err
		}
		return s, sqlDB.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported store backend %q", cfg.Store.Backend)
	}
}
