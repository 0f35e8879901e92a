// Package database owns the single-file sqlite store: opening it through gorm,
// applying embedded goose migrations and closing it at shutdown.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	applog "github.com/janisto/echo-heroes/internal/platform/logging"
)

// DB is the process-wide persistence handle. It is created once at startup,
// shared by every request, and closed at process exit.
type DB struct {
	gorm *gorm.DB
	sql  *sql.DB
}

// Open opens (creating if needed) the sqlite file at path and migrates it to
// the latest schema version.
func Open(ctx context.Context, path string) (*DB, error) {
	dsn := path + "?_busy_timeout=5000&_foreign_keys=on"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}

	db := &DB{gorm: gdb, sql: sqlDB}
	if err := db.migrate(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// Session returns a fresh gorm session bound to ctx. Callers use one session
// per operation and never retain it.
func (d *DB) Session(ctx context.Context) *gorm.DB {
	return d.gorm.WithContext(ctx).Session(&gorm.Session{})
}

// Ping verifies the underlying connection is usable.
func (d *DB) Ping(ctx context.Context) error {
	return d.sql.PingContext(ctx)
}

// Close releases the connection pool.
func (d *DB) Close() error {
	return d.sql.Close()
}

type gormWriter struct{}

func (gormWriter) Printf(format string, args ...any) {
	applog.Logger().Warn(fmt.Sprintf(format, args...), slog.String("component", "gorm"))
}

func newGormLogger() gormlogger.Interface {
	return gormlogger.New(gormWriter{}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}
