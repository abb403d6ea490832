// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/the-todo-way/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AppInfoService serves the fixed application metadata.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}

// HealthService reports whether the backing database is reachable.
type HealthService interface {
	Check(ctx context.Context) error
}
