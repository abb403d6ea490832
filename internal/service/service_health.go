// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/the-todo-way/internal/logger"
	"github.com/MKhiriev/the-todo-way/internal/store"
)

const pingQuery = "SELECT 1"

type healthService struct {
	sessions store.Sessions

	logger *logger.Logger
}

// NewHealthService returns a service that checks the database through a
// regular session, so a pass also proves the pool hands out live
// connections.
func NewHealthService(sessions store.Sessions, logger *logger.Logger) HealthService {
	logger.Debug().Msg("creating health service")
	return &healthService{
		sessions: sessions,
		logger:   logger,
	}
}

func (s *healthService) Check(ctx context.Context) error {
	log := logger.FromContext(ctx)

	err := s.sessions.WithSession(ctx, func(ctx context.Context, session *store.Session) error {
		var one int
		if err := session.QueryRowContext(ctx, pingQuery).Scan(&one); err != nil {
			return err
		}
		return session.Commit()
	})
	if err != nil {
		log.Err(err).Str("func", "*healthService.Check").Msg("database health check failed")
		return fmt.Errorf("%w: %w", ErrDatabaseUnreachable, err)
	}

	return nil
}
