// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/the-todo-way/internal/apperror"
)

// errorResponse resolves the status and client-facing detail for err.
// Errors outside the application taxonomy never leak their message.
func errorResponse(err error) (int, string) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return appErr.Status, appErr.Detail
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, http.StatusText(http.StatusGatewayTimeout)
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
