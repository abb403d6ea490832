// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux with a set of routes for tests.
// It does not use Handler.Init() to avoid service setup.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Delete("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		wantEnvelope   bool
	}{
		{"registered GET passes through", http.MethodGet, "/items", http.StatusOK, false},
		{"registered POST passes through", http.MethodPost, "/items", http.StatusCreated, false},
		{"registered DELETE passes through", http.MethodDelete, "/items/1", http.StatusNoContent, false},
		{"PUT on known path answers 404", http.MethodPut, "/items", http.StatusNotFound, true},
		{"PATCH on known path answers 404", http.MethodPatch, "/items/1", http.StatusNotFound, true},
		{"unknown path answers 404", http.MethodGet, "/missing", http.StatusNotFound, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.wantEnvelope {
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
				assert.JSONEq(t, `{"data":null,"error":"Not Found","meta":null}`, rr.Body.String())
			}
		})
	}
}
