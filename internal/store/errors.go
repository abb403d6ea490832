// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Connection and DSN errors returned while opening the pool.
var (
	// ErrUnsupportedDSN is returned when the DATABASE_URL scheme names no
	// driver this build links.
	ErrUnsupportedDSN = errors.New("unsupported database url scheme")

	// ErrConnectingDatabase is returned when the pool cannot be opened or
	// the first ping fails.
	ErrConnectingDatabase = errors.New("error connecting database")
)

// Session lifecycle errors. Callers should use [errors.Is] to match them.
var (
	// ErrAcquiringConnection is returned when no connection can be checked
	// out of the pool.
	ErrAcquiringConnection = errors.New("failed to acquire connection")

	// ErrStaleConnection is returned when every pre-ping attempt hit a
	// connection the server had already dropped.
	ErrStaleConnection = errors.New("no live connection after pre-ping attempts")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrSessionClosed is returned when a session is used after it has been
	// committed or rolled back.
	ErrSessionClosed = errors.New("session is already closed")
)
