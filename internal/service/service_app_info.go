// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/the-todo-way/internal/logger"
	"github.com/MKhiriev/the-todo-way/models"
)

// Fixed application metadata served at the API root.
const (
	AppName        = "The Todo Way"
	AppDescription = "Backend API for The Todo Way productivity app"
	AppVersion     = "0.1.0"
)

type appInfoService struct {
	info models.AppInfo

	logger *logger.Logger
}

// NewAppInfoService returns the service answering GET /. build carries the
// linker-injected metadata of the running binary.
func NewAppInfoService(version string, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info: models.AppInfo{
			Name:        AppName,
			Description: AppDescription,
			Version:     version,
			Build:       build,
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return s.info
}
