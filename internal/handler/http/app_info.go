// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/the-todo-way/models"
)

func (h *Handler) getAppInfo(w http.ResponseWriter, r *http.Request) error {
	WriteOK(w, r, http.StatusOK, h.services.AppInfoService.GetAppInfo(r.Context()))
	return nil
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) error {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		return errDatabaseUnavailable.Wrap(err)
	}

	WriteOK(w, r, http.StatusOK, models.HealthStatus{Status: "ok"})
	return nil
}
