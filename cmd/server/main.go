// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/MKhiriev/the-todo-way/internal/app"
	"github.com/MKhiriev/the-todo-way/internal/logger"
	"github.com/MKhiriev/the-todo-way/models"
)

// Populated by -ldflags "-X main.buildVersion=..." at release time.
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := app.Execute(build); err != nil {
		logger.NewLogger("todo-way").Fatal().Err(err).Msg("command failed")
	}
}
