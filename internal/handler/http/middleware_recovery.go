// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/the-todo-way/internal/logger"
)

// withRecovery turns a handler panic into the 500 error envelope. The
// request's own logger records the panic value and stack. A panic after the
// response has started is only logged: the status line is already gone.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w}

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			// net/http uses this panic to abort a response on purpose
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("panic", fmt.Sprint(rec)).
				Bytes("stack", debug.Stack()).
				Bool("response_started", rw.wroteHeader).
				Msg("recovered from panic")

			if rw.wroteHeader {
				return
			}
			writeError(rw, r, fmt.Errorf("panic: %v", rec))
		}()

		next.ServeHTTP(rw, r)
	})
}
