// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

// ErrorClassificator decides whether a failed database call may succeed
// when retried on another connection.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Sessions hands out transactional sessions, one per unit of work.
type Sessions interface {
	Acquire(ctx context.Context) (*Session, error)
	WithSession(ctx context.Context, fn func(ctx context.Context, s *Session) error) error
}
