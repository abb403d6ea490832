// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"fmt"

	"github.com/MKhiriev/the-todo-way/internal/config"
	"github.com/MKhiriev/the-todo-way/internal/handler"
	"github.com/MKhiriev/the-todo-way/internal/logger"
	"github.com/MKhiriev/the-todo-way/internal/server"
	"github.com/MKhiriev/the-todo-way/internal/service"
	"github.com/MKhiriev/the-todo-way/internal/store"
	"github.com/MKhiriev/the-todo-way/models"
	"github.com/spf13/cobra"
)

// newServer is replaced in tests to stop short of blocking in RunServer.
var newServer = server.NewServer

func newServeCmd(flags *config.Flags, build models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API (HTTP listener locally, Lambda runtime when deployed)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, flags, build)
		},
	}
}

// runServe wires storage, services and handlers, then blocks in the server
// picked for the environment.
func runServe(cmd *cobra.Command, flags *config.Flags, build models.AppBuildInfo) error {
	cfg, err := config.GetStructuredConfig(flags)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log, err := logger.New("server", logger.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return err
	}
	log.Info().
		Str("environment", cfg.App.Environment).
		Str("build_version", build.BuildVersion).
		Str("build_commit", build.BuildCommit).
		Msg("starting")

	sessions, err := store.NewSessionProvider(cmd.Context(), cfg.Storage.DB, cfg.DatabaseEcho(), log)
	if err != nil {
		return fmt.Errorf("error creating session provider: %w", err)
	}
	defer func() {
		if err := sessions.Close(); err != nil {
			log.Err(err).Msg("error closing database")
		}
	}()

	services, err := service.NewServices(sessions, build, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := newServer(handlers, cfg, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	srv.RunServer()
	return nil
}
