// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"fmt"

	"github.com/MKhiriev/the-todo-way/internal/config"
	"github.com/MKhiriev/the-todo-way/internal/logger"
	"github.com/MKhiriev/the-todo-way/internal/store"
	"github.com/MKhiriev/the-todo-way/migrations"
	"github.com/spf13/cobra"
)

func newMigrateCmd(flags *config.Flags) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending SQL migrations to the configured database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.GetStructuredConfig(flags)
			if err != nil {
				return fmt.Errorf("error getting configs: %w", err)
			}

			log, err := logger.New("migrate", logger.Options{
				Level:  cfg.Log.Level,
				File:   cfg.Log.File,
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			db, err := store.NewConnect(cmd.Context(), cfg.Storage.DB, log)
			if err != nil {
				return err
			}
			defer db.Close()

			if err = db.Migrate(cmd.Context(), dir); err != nil {
				return err
			}

			version, err := migrations.Version(cmd.Context(), db.DB, db.Dialect)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "database is at version %d\n", version)
			return err
		},
	}

	cmd.Flags().StringVar(&dir, "dir", migrations.DefaultDir, "Directory with goose SQL migrations")

	return cmd
}
