// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Origins is a list of allowed CORS origins. From the environment it is
// parsed either as a comma separated list or as a JSON array of strings.
type Origins []string

// parseOrigins is registered as the caarlos0/env parser for [Origins].
func parseOrigins(value string) (any, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Origins{}, nil
	}

	if strings.HasPrefix(value, "[") {
		var origins []string
		if err := json.Unmarshal([]byte(value), &origins); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidOrigins, err)
		}
		return Origins(origins), nil
	}

	parts := strings.Split(value, ",")
	origins := make(Origins, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}

	return origins, nil
}

// readEnvFile loads KEY=VALUE pairs from the .env override file at path.
// A missing file is not an error: the override file is optional.
func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("error reading env file %q: %w", path, err)
	}

	return values, nil
}

// mergeEnvironment overlays the process environment on top of the values
// read from the override file, so real environment variables always win.
func mergeEnvironment(fileValues map[string]string, environ []string) map[string]string {
	merged := make(map[string]string, len(fileValues)+len(environ))
	for k, v := range fileValues {
		merged[k] = v
	}
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			merged[k] = v
		}
	}

	return merged
}

// parseEnv populates cfg from the given environment map using the
// caarlos0/env library. Struct fields are mapped via their `env` and
// `envDefault` tags defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a required variable is
// missing or a value cannot be converted to the target type). Every
// missing required variable is named in the error.
func parseEnv(cfg *StructuredConfig, environment map[string]string) error {
	err := env.ParseWithOptions(cfg, env.Options{
		Environment: environment,
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(Origins{}): parseOrigins,
		},
	})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// resolveEnvFile picks the override file path: the --env-file flag first,
// then the ENV_FILE variable, then ".env".
func resolveEnvFile(flags *Flags) string {
	if flags != nil && flags.EnvFile != "" {
		return flags.EnvFile
	}
	if path := os.Getenv("ENV_FILE"); path != "" {
		return path
	}

	return defaultEnvFile
}
