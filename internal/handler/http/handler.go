// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/the-todo-way/internal/config"
	"github.com/MKhiriev/the-todo-way/internal/logger"
	"github.com/MKhiriev/the-todo-way/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.Server
	features []FeatureRouter
	metrics  *metrics

	logger *logger.Logger
}

// NewHandler returns the HTTP handler. features are mounted under /api/v1
// in the given order.
func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger, features ...FeatureRouter) *Handler {
	logger.Info().Int("feature_routers", len(features)).Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		features: features,
		metrics:  newMetrics(),
		logger:   logger,
	}
}
