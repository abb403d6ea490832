// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/the-todo-way/internal/logger"
	"github.com/MKhiriev/the-todo-way/models"
)

// HandlerFunc is an HTTP handler that reports failure by returning an error
// instead of writing it.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts fn to an [http.HandlerFunc]. A returned error is written as
// an error envelope by [writeError].
func Handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			writeError(w, r, err)
		}
	}
}

// WriteOK writes data in a success envelope with the given status.
func WriteOK[T any](w http.ResponseWriter, r *http.Request, status int, data T) {
	writeEnvelope(w, r, status, models.OK(data))
}

// WriteOKWithMeta writes one page of data with its pagination metadata.
func WriteOKWithMeta[T any](w http.ResponseWriter, r *http.Request, data T, meta models.PaginationMeta) {
	writeEnvelope(w, r, http.StatusOK, models.OKWithMeta(data, meta))
}

// writeError translates err into an error envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, detail := errorResponse(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	writeEnvelope(w, r, status, models.Fail(detail))
}

func writeEnvelope(w http.ResponseWriter, r *http.Request, status int, body any) {
	if _, err := writeJSON(w, body, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// writeJSON serializes data to JSON and writes it with statusCode.
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error.
func writeJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(internalErrorBody)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

var internalErrorBody = []byte(`{"data":null,"error":"Internal Server Error","meta":null}`)
