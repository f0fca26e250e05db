// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/resto-sync/internal/client"
)

func newRunCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the sync engine until interrupted",
		Long: `Run keeps the engine alive: it probes the server, syncs on reconnect
and queue pressure, and runs the periodic sync job.

Examples:
  resto-sync run -s http://pos-server:8080 -d ./pos.db
  resto-sync run --background --probe-only`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printBuildInfo(cmd.OutOrStdout())

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
			defer stop()

			return opts.withApp(cmd, func(app *client.App) error {
				if err := app.Run(ctx); err != nil && ctx.Err() == nil {
					opts.log.Err(err).Str("func", "runCommand").Msg("client run error")
					return err
				}
				opts.log.Info().Msg("sync engine stopped")
				return nil
			})
		},
	}
}
