// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations applies goose SQL migrations kept outside the binary.
package migrations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/the-todo-way/internal/logger"
	"github.com/pressly/goose/v3"
)

// DefaultDir is where the migrate command looks for *.sql files when no
// --dir is given.
const DefaultDir = "migrations/sql"

var errNilDB = errors.New("db is nil")

// Migrate applies every pending migration in dir. dialect is the goose
// dialect of db ("postgres" or "sqlite3"). A directory without migration
// files is not an error.
func Migrate(ctx context.Context, db *sql.DB, dialect, dir string, log *logger.Logger) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	goose.SetBaseFS(nil)
	goose.SetLogger(gooseLogger{log})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		if errors.Is(err, goose.ErrNoMigrationFiles) {
			log.Info().Str("dir", dir).Msg("no migrations to apply")
			return nil
		}
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Version returns the current schema version recorded by goose.
func Version(ctx context.Context, db *sql.DB, dialect string) (int64, error) {
	if db == nil {
		return 0, fmt.Errorf("migration error: %w", errNilDB)
	}

	if err := goose.SetDialect(dialect); err != nil {
		return 0, fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	return goose.GetDBVersionContext(ctx, db)
}

// gooseLogger routes goose output through zerolog.
type gooseLogger struct {
	log *logger.Logger
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.log.Fatal().Msgf(format, v...)
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.log.Info().Msgf(format, v...)
}
