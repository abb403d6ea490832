// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/the-todo-way/internal/config"
	"github.com/MKhiriev/the-todo-way/internal/logger"
	"github.com/MKhiriev/the-todo-way/migrations"
)

// Driver names registered by the blank imports in sql_postgres.go and
// sql_sqlite.go.
const (
	driverPgx     = "pgx"
	driverSQLite3 = "sqlite3"
)

// Goose dialects, also used to pick the error classifier.
const (
	DialectPostgres = "postgres"
	DialectSQLite3  = "sqlite3"
)

// DB is the process-wide connection pool together with what the rest of
// the package needs to know about its backend.
type DB struct {
	*sql.DB
	// Dialect is the goose dialect name matching the driver.
	Dialect string

	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// dsnTarget is a DATABASE_URL resolved into something database/sql can open.
type dsnTarget struct {
	driver  string
	dsn     string
	dialect string
	// inMemory marks a sqlite database that lives inside one connection.
	inMemory bool
}

// parseDSN chooses the driver from the URL scheme. A "+<driver>" suffix on
// the scheme (postgresql+asyncpg, sqlite+aiosqlite) is accepted and ignored.
func parseDSN(raw string) (dsnTarget, error) {
	if strings.HasPrefix(raw, "file:") {
		return dsnTarget{driver: driverSQLite3, dsn: raw, dialect: DialectSQLite3, inMemory: sqliteInMemory(raw)}, nil
	}

	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok {
		return dsnTarget{}, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redact(raw))
	}

	base, _, _ := strings.Cut(strings.ToLower(scheme), "+")
	switch base {
	case "postgres", "postgresql":
		return dsnTarget{driver: driverPgx, dsn: "postgresql://" + rest, dialect: DialectPostgres}, nil
	case "sqlite":
		dsn := sqlitePath(rest)
		return dsnTarget{driver: driverSQLite3, dsn: dsn, dialect: DialectSQLite3, inMemory: sqliteInMemory(dsn)}, nil
	}

	return dsnTarget{}, fmt.Errorf("%w: %q", ErrUnsupportedDSN, scheme)
}

// NewConnect opens the pool for cfg.DSN, applies the pool limits and pings
// the database once.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	target, err := parseDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("cannot resolve database driver")
		return nil, err
	}

	conn, err := sql.Open(target.driver, target.dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error occurred during database connection")
		return nil, fmt.Errorf("%w: %w", ErrConnectingDatabase, err)
	}

	// setup connections
	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	if target.inMemory {
		// every sqlite connection would open its own empty database
		conn.SetMaxOpenConns(1)
		conn.SetMaxIdleConns(1)
		conn.SetConnMaxIdleTime(0)
		log.Warn().Str("func", "NewConnect").Msg("in-memory sqlite database: pool limited to one connection")
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		log.Err(err).Str("func", "NewConnect").Msg("error connecting database (ping)")
		return nil, fmt.Errorf("%w: %w", ErrConnectingDatabase, err)
	}
	log.Info().Str("func", "NewConnect").Str("driver", target.driver).Msg("connected to database successfully")

	return NewDB(conn, target.dialect, log), nil
}

// NewDB wraps an already opened pool. dialect is [DialectPostgres] or
// [DialectSQLite3] and selects the error classifier.
func NewDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		Dialect:            dialect,
		errorClassificator: newErrorClassifier(dialect),
		logger:             log,
	}
}

// Migrate applies the goose migrations found in dir.
func (db *DB) Migrate(ctx context.Context, dir string) error {
	return migrations.Migrate(ctx, db.DB, db.Dialect, dir, db.logger)
}

func newErrorClassifier(dialect string) ErrorClassificator {
	if dialect == DialectSQLite3 {
		return NewSQLiteErrorClassifier()
	}

	return NewPostgresErrorClassifier()
}

// redact drops everything after the scheme separator so that credentials
// in a malformed URL never reach the logs.
func redact(raw string) string {
	if i := strings.Index(raw, ":"); i >= 0 {
		return raw[:i] + ":..."
	}
	return "..."
}
