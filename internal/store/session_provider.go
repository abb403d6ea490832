// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/MKhiriev/the-todo-way/internal/config"
	"github.com/MKhiriev/the-todo-way/internal/logger"
)

// SessionProvider hands out one transactional [Session] per unit of work
// from the process-wide pool.
//
// Every checkout is pre-pinged: a connection the server has already dropped
// is discarded and replaced, up to prePingAttempts times, so callers never
// see a stale connection.
type SessionProvider struct {
	db              *DB
	prePingAttempts int
	echo            bool
	logger          *logger.Logger
}

// NewSessionProvider opens the pool described by cfg and returns a provider
// over it. echo turns on debug logging of every statement.
func NewSessionProvider(ctx context.Context, cfg config.DB, echo bool, log *logger.Logger) (*SessionProvider, error) {
	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return NewSessionProviderFromDB(db, cfg.PrePingAttempts, echo, log), nil
}

// NewSessionProviderFromDB returns a provider over an already opened pool.
func NewSessionProviderFromDB(db *DB, prePingAttempts int, echo bool, log *logger.Logger) *SessionProvider {
	if prePingAttempts < 1 {
		prePingAttempts = 1
	}

	log.Debug().Int("pre_ping_attempts", prePingAttempts).Bool("echo", echo).Msg("creating session provider")
	return &SessionProvider{
		db:              db,
		prePingAttempts: prePingAttempts,
		echo:            echo,
		logger:          log,
	}
}

// DB exposes the underlying pool, e.g. for migrations.
func (p *SessionProvider) DB() *DB {
	return p.db
}

// Close closes the pool. Sessions still open are invalidated.
func (p *SessionProvider) Close() error {
	return p.db.Close()
}

// Acquire checks out a live connection and begins a transaction on it. The
// caller owns the returned session and must Close it.
func (p *SessionProvider) Acquire(ctx context.Context) (*Session, error) {
	log := logger.FromContext(ctx)

	conn, err := p.checkout(ctx)
	if err != nil {
		log.Err(err).Str("func", "*SessionProvider.Acquire").Msg("error checking out connection")
		return nil, err
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		_ = conn.Close()
		log.Err(err).Str("func", "*SessionProvider.Acquire").Msg("error beginning transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	return &Session{
		conn:   conn,
		tx:     tx,
		echo:   p.echo,
		logger: p.logger,
	}, nil
}

// WithSession runs fn inside a fresh session.
//
// If fn returns an error or panics, the session is rolled back once and the
// error or panic propagates unchanged. There is no auto-commit: fn calls
// [Session.Commit] itself, and a session left uncommitted is rolled back.
// The connection goes back to the pool on every exit path.
func (p *SessionProvider) WithSession(ctx context.Context, fn func(ctx context.Context, s *Session) error) (err error) {
	s, err := p.Acquire(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := s.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return fn(ctx, s)
}

// checkout returns a pooled connection that answered a ping.
func (p *SessionProvider) checkout(ctx context.Context) (*sql.Conn, error) {
	var lastErr error

	for attempt := 1; attempt <= p.prePingAttempts; attempt++ {
		conn, err := p.db.Conn(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrAcquiringConnection, err)
		}

		err = conn.PingContext(ctx)
		if err == nil {
			return conn, nil
		}

		if !p.isStale(err) {
			_ = conn.Close()
			return nil, fmt.Errorf("%w: %w", ErrAcquiringConnection, err)
		}

		p.logger.Warn().Err(err).Int("attempt", attempt).Msg("discarding stale connection")
		discard(conn)
		lastErr = err
	}

	return nil, fmt.Errorf("%w (%d): %w", ErrStaleConnection, p.prePingAttempts, lastErr)
}

func (p *SessionProvider) isStale(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	return p.db.errorClassificator != nil && p.db.errorClassificator.Classify(err) == Retryable
}

// discard closes the driver connection behind conn instead of returning it
// to the pool. database/sql drops a connection whose Raw callback reports
// driver.ErrBadConn.
func discard(conn *sql.Conn) {
	_ = conn.Raw(func(any) error { return driver.ErrBadConn })
	_ = conn.Close()
}
