// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/the-todo-way/internal/config"
	"github.com/MKhiriev/the-todo-way/internal/handler/http"
	"github.com/MKhiriev/the-todo-way/internal/logger"
	"github.com/MKhiriev/the-todo-way/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers. features are the /api/v1
// feature routers; production passes none yet.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger, features ...http.FeatureRouter) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServicesProvided
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger, features...),
	}, nil
}
