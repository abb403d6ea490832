// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apperror defines the application error taxonomy: errors that carry
// an HTTP status and a client-facing detail message.
//
// Any layer may return an [*Error]; the HTTP transport finds it with
// [errors.As] and renders it as a response envelope. Adding a new kind of
// error means adding a constructor here, nothing else.
package apperror

import (
	"fmt"
	"net/http"
)

// Error is an application error with the HTTP status it maps to and the
// detail message sent to the client.
type Error struct {
	Status int
	Detail string
	cause  error
}

// New returns an *Error with the given status and detail.
func New(status int, detail string) *Error {
	return &Error{Status: status, Detail: detail}
}

// NotFound returns a 404 error reading "<resource> not found". An empty
// resource reads "Resource not found".
func NotFound(resource string) *Error {
	if resource == "" {
		resource = "Resource"
	}
	return New(http.StatusNotFound, resource+" not found")
}

// Conflict returns a 409 error with detail passed through unchanged.
func Conflict(detail string) *Error {
	return New(http.StatusConflict, detail)
}

// Wrap returns a copy of e that unwraps to cause.
func (e *Error) Wrap(cause error) *Error {
	wrapped := *e
	wrapped.cause = cause
	return &wrapped
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%d %s: %v", e.Status, e.Detail, e.cause)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.cause
}
