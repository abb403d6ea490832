// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/the-todo-way/internal/apperror"
)

var (
	// errRouteNotFound answers paths no router matched, and known paths
	// requested with a method they do not register.
	errRouteNotFound = apperror.New(http.StatusNotFound, http.StatusText(http.StatusNotFound))

	// errDatabaseUnavailable answers a failed health check.
	errDatabaseUnavailable = apperror.New(http.StatusServiceUnavailable, "Database unavailable")
)
