// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

// newValidator returns a validator with the config-specific rules
// registered:
//   - jwtalg: the value names a signing method known to golang-jwt,
//     other than the unsigned "none";
//   - loglevel: the value is a zerolog level name.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("jwtalg", func(fl validator.FieldLevel) bool {
		alg := fl.Field().String()
		return alg != "none" && jwt.GetSigningMethod(alg) != nil
	})
	_ = v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := zerolog.ParseLevel(fl.Field().String())
		return err == nil
	})

	return v
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping
// [ErrInvalidConfig] that lists every failing field otherwise.
func (cfg *StructuredConfig) validate() error {
	if err := newValidator().Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
