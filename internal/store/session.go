// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/the-todo-way/internal/logger"
)

// Session is one unit of work: a dedicated connection with an open
// transaction. It is not safe for concurrent use and must not outlive the
// request that acquired it.
type Session struct {
	conn   *sql.Conn
	tx     *sql.Tx
	echo   bool
	done   bool
	logger *logger.Logger
}

// ExecContext executes a statement that returns no rows.
func (s *Session) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if s.done {
		return nil, ErrSessionClosed
	}
	s.logStatement(query, args)

	return s.tx.ExecContext(ctx, query, args...)
}

// QueryContext executes a statement that returns rows.
func (s *Session) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	if s.done {
		return nil, ErrSessionClosed
	}
	s.logStatement(query, args)

	return s.tx.QueryContext(ctx, query, args...)
}

// QueryRowContext executes a statement expected to return at most one row.
// On a finished session the returned row reports [sql.ErrTxDone].
func (s *Session) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	s.logStatement(query, args)

	return s.tx.QueryRowContext(ctx, query, args...)
}

// Commit commits the transaction. The session cannot be used afterwards.
func (s *Session) Commit() error {
	if s.done {
		return ErrSessionClosed
	}
	s.done = true

	if err := s.tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// Rollback aborts the transaction. Rolling back a finished session is a
// no-op, so it is safe to call from deferred cleanup.
func (s *Session) Rollback() error {
	if s.done {
		return nil
	}
	s.done = true

	err := s.tx.Rollback()
	// a cancelled context has already rolled the transaction back
	if err != nil && !errors.Is(err, sql.ErrTxDone) {
		s.logger.Err(err).Str("func", "*Session.Rollback").Msg("error rolling back transaction")
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

// Close rolls back an uncommitted transaction and returns the connection
// to the pool.
func (s *Session) Close() error {
	rollbackErr := s.Rollback()
	closeErr := s.conn.Close()
	if errors.Is(closeErr, sql.ErrConnDone) {
		closeErr = nil
	}

	return errors.Join(rollbackErr, closeErr)
}

func (s *Session) logStatement(query string, args []any) {
	if !s.echo {
		return
	}

	s.logger.Debug().Str("sql", query).Interface("args", args).Msg("executing statement")
}
