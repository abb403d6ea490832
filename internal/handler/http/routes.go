// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// corsMaxAge is how long, in seconds, browsers may cache a preflight answer.
const corsMaxAge = 600

// Init builds the router. Middleware and error handlers are installed
// before any route so that every response, unknown paths included, goes
// through them.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.corsPolicy())
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(h.withRecovery)
	if h.cfg.RequestTimeout > 0 {
		router.Use(h.withTimeout)
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod)

	router.Get("/", Handle(h.getAppInfo))
	router.Get("/healthz", Handle(h.healthz))
	router.Method(http.MethodGet, "/metrics", h.metrics.handler())

	router.Mount("/api/v1", h.v1Router())

	return router
}

// corsPolicy allows credentialed requests from the configured origins with
// any method and any header.
func (h *Handler) corsPolicy() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.CORSOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
			http.MethodConnect,
			http.MethodTrace,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	})
}
