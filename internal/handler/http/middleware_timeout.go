// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
)

// withTimeout puts a deadline of cfg.RequestTimeout on the request context.
// Handlers are expected to stop on ctx.Done(); one that overruns the
// deadline without writing anything gets the 504 error envelope.
func (h *Handler) withTimeout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.cfg.RequestTimeout)
		defer cancel()

		tw := &responseWriter{ResponseWriter: w}
		r = r.WithContext(ctx)

		next.ServeHTTP(tw, r)

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !tw.wroteHeader {
			writeError(tw, r, context.DeadlineExceeded)
		}
	})
}
