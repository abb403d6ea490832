// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/the-todo-way/internal/logger"
	"github.com/MKhiriev/the-todo-way/internal/store"
	"github.com/MKhiriev/the-todo-way/models"
)

// Services is the container the transport layer is built from. Feature
// services are added here as their routers are mounted.
type Services struct {
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(sessions store.Sessions, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(AppVersion, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AppInfoService: appInfo,
		HealthService:  NewHealthService(sessions, logger),
	}, nil
}
