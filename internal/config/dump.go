// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	"encoding/json"
	"net/url"
)

const redacted = "***"

// DumpJSON renders cfg as indented JSON with secrets redacted: the JWT
// secret is masked and the database password is stripped from the DSN.
func DumpJSON(cfg *StructuredConfig) (string, error) {
	safe := *cfg
	if safe.JWT.Secret != "" {
		safe.JWT.Secret = redacted
	}
	safe.Storage.DB.DSN = redactDSN(safe.Storage.DB.DSN)

	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(safe); err != nil {
		return "", err
	}

	return buffer.String(), nil
}

func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}

	return u.Redacted()
}
