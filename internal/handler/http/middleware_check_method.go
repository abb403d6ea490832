// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/the-todo-way/internal/logger"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler
// via [chi.Mux.MethodNotAllowed].
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method
// is not handled. This handler answers exactly like an unknown path
// instead: HTTP 404 with the "Not Found" error envelope, hiding the
// existence of the route from callers that use an unsupported method.
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method is not registered for route")

	writeError(w, r, errRouteNotFound)
}

// notFound is registered as the router's NotFound handler.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, errRouteNotFound)
}
