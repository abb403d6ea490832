// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// sqlitePath converts the part of a sqlite:// URL after the scheme into a
// go-sqlite3 DSN. "sqlite:///todo.db" is relative, "sqlite:////var/todo.db"
// is absolute and "sqlite://" is an in-memory database.
func sqlitePath(rest string) string {
	path, query, _ := strings.Cut(rest, "?")
	switch {
	case path == "" || path == "/" || path == ":memory:" || path == "/:memory:":
		path = ":memory:"
	case strings.HasPrefix(path, "/"):
		path = path[1:]
	}

	if query != "" {
		return "file:" + path + "?" + query
	}
	return path
}

// sqliteInMemory reports whether dsn names a private in-memory database.
// Shared-cache URIs are visible to every connection and stay unrestricted.
func sqliteInMemory(dsn string) bool {
	if strings.Contains(dsn, "cache=shared") {
		return false
	}

	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite: a busy
// or locked database is worth retrying, anything else is not.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return Retryable
		}
	}

	return NonRetryable
}

// sqliteUniqueViolation reports whether err is a UNIQUE or PRIMARY KEY
// constraint failure.
func sqliteUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}
