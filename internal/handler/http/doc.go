// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, the versioned feature-router aggregator, and the
// middleware used by the REST API. Cross-cutting concerns such as CORS,
// request tracing, access logging, panic recovery, timeouts, and metrics are
// handled here before requests reach a handler.
//
// Handlers report failure by returning an error (see [HandlerFunc]). [Handle]
// is the single place where errors become responses: an *apperror.Error is
// written with its own status and detail, anything else as a 500, always in
// the {"data","error","meta"} envelope.
package http
