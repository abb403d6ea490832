// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/the-todo-way/internal/logger"
	"github.com/rs/zerolog"
)

// withTag adds tag to the request logger of every route of one feature
// router.
func withTag(tag string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := logger.FromRequest(r).GetChildLogger()
			l.UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("tag", tag)
			})

			next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
		})
	}
}
