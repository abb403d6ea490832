// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
)

// FeatureRouter describes the routes of one feature mounted under /api/v1.
//
// Feature routers (auth, todos, sections, labels) are passed to
// [NewHandler] as they are implemented; none exist yet.
type FeatureRouter struct {
	// Prefix is the path below /api/v1, e.g. "/todos". Empty mounts the
	// routes directly on /api/v1.
	Prefix string
	// Tag is added to the logger of every request the router serves.
	Tag string
	// Routes registers the feature's handlers, typically wrapped in [Handle].
	Routes func(r chi.Router)
}

// v1Router aggregates the feature routers. With none registered it answers
// every path with the 404 envelope.
func (h *Handler) v1Router() *chi.Mux {
	router := chi.NewRouter()
	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod)

	for _, feature := range h.features {
		mount := func(r chi.Router) {
			if feature.Tag != "" {
				r.Use(withTag(feature.Tag))
			}
			feature.Routes(r)
		}

		if feature.Prefix == "" {
			router.Group(mount)
			continue
		}
		router.Route(feature.Prefix, mount)
	}

	return router
}
