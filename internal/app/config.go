// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"fmt"

	"github.com/MKhiriev/the-todo-way/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(flags *config.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration with secrets redacted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.GetStructuredConfig(flags)
			if err != nil {
				return fmt.Errorf("error getting configs: %w", err)
			}

			out, err := config.DumpJSON(cfg)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}
