// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"errors"

	"github.com/MKhiriev/the-todo-way/internal/apperror"
	"github.com/jackc/pgerrcode"
)

// TranslateError maps database errors onto the application taxonomy so
// that repositories can return them straight to the transport:
//   - no rows becomes 404 "Resource not found";
//   - a unique violation becomes 409 "Resource already exists".
//
// The driver error stays reachable through errors.Unwrap. Any other error,
// nil included, is returned unchanged.
func TranslateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return apperror.NotFound("").Wrap(err)
	case postgresError(err) == pgerrcode.UniqueViolation, sqliteUniqueViolation(err):
		return apperror.Conflict("Resource already exists").Wrap(err)
	}

	return err
}
