// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app implements the command-line entry points of the service.
package app

import (
	"github.com/MKhiriev/the-todo-way/internal/config"
	"github.com/MKhiriev/the-todo-way/models"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. The configuration flags are
// persistent so every subcommand resolves settings the same way. Without a
// subcommand the root runs serve, which is how the Lambda runtime starts the
// binary.
func NewRootCmd(build models.AppBuildInfo) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "todo-way",
		Short: "The Todo Way is the backend API of a todo and productivity app",
		Long: `The Todo Way serves the JSON API of a todo and productivity app.
It runs as a plain HTTP server locally and behind AWS Lambda when deployed.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := config.BindFlags(rootCmd.PersistentFlags())
	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd, flags, build)
	}

	rootCmd.AddCommand(
		newServeCmd(flags, build),
		newConfigCmd(flags),
		newMigrateCmd(flags),
		newVersionCmd(build),
	)

	return rootCmd
}

// Execute runs the root command with the process arguments.
func Execute(build models.AppBuildInfo) error {
	return NewRootCmd(build).Execute()
}
