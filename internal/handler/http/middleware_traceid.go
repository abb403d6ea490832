// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"unicode"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader = "X-Trace-ID"

	// maxTraceIDLength bounds caller-supplied ids copied into every log line.
	maxTraceIDLength = 128
)

// withTraceID tags the request with a trace id, echoes it in X-Trace-ID and
// puts a request logger carrying trace_id into the context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := traceIDFrom(r)
		w.Header().Set(traceIDHeader, traceID)

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}

// traceIDFrom keeps the caller's X-Trace-ID when it is short printable text
// and generates a UUID otherwise.
func traceIDFrom(r *http.Request) string {
	id := r.Header.Get(traceIDHeader)
	if id == "" || len(id) > maxTraceIDLength {
		return uuid.NewString()
	}
	for _, c := range id {
		if c > unicode.MaxASCII || !unicode.IsPrint(c) {
			return uuid.NewString()
		}
	}
	return id
}
