// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"fmt"

	"github.com/MKhiriev/the-todo-way/internal/service"
	"github.com/MKhiriev/the-todo-way/models"
	"github.com/spf13/cobra"
)

const notAvailable = "N/A"

func newVersionCmd(build models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version and build information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", service.AppName, service.AppVersion)
			fmt.Fprintf(out, "Build version: %s\n", orNotAvailable(build.BuildVersion))
			fmt.Fprintf(out, "Build date: %s\n", orNotAvailable(build.BuildDate))
			fmt.Fprintf(out, "Build commit: %s\n", orNotAvailable(build.BuildCommit))
		},
	}
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
