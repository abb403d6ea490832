// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrInvalidConfig wraps every validation failure reported by
	// [StructuredConfig.validate].
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidOrigins is returned when CORS_ORIGINS looks like a JSON
	// array but cannot be decoded as one.
	ErrInvalidOrigins = errors.New("invalid CORS origins list")
)
