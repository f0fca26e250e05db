// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/resto-sync/internal/config"
	"github.com/MKhiriev/resto-sync/internal/handler"
	"github.com/MKhiriev/resto-sync/internal/logger"
	"github.com/MKhiriev/resto-sync/internal/server"
	"github.com/MKhiriev/resto-sync/internal/service"
	"github.com/MKhiriev/resto-sync/internal/store"
)

var errAuthDisabled = errors.New("token sign key is not configured, authentication is disabled")

type rootOptions struct {
	flags *config.Flags
	cfg   *config.ServerConfig
	log   *logger.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "resto-sync-server",
		Short:        "Reference sync server for resto-sync clients",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.GetServerConfig(opts.flags)
			if err != nil {
				return fmt.Errorf("error getting configs: %w", err)
			}
			if cfg.Version == "" {
				cfg.Version = buildInfo().BuildVersion()
			}
			opts.cfg = cfg
			opts.log = logger.NewLogger("resto-sync-server")
			return nil
		},
	}
	opts.flags = config.BindFlags(cmd.PersistentFlags())

	cmd.AddCommand(newServeCommand(opts), newTokenCommand(opts))

	return cmd
}

// newServices builds the server services over a fresh in-memory store.
func (o *rootOptions) newServices() (*service.Services, error) {
	storages := store.NewStorages(o.log)
	services, err := service.NewServices(storages, *o.cfg, o.log)
	if err != nil {
		return nil, fmt.Errorf("error creating services: %w", err)
	}
	return services, nil
}

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the pull/push sync API",
		Long: `Serve starts the HTTP sync API on the configured address. Records are
kept in memory and lost on exit.

Examples:
  resto-sync-server serve -a :8080
  resto-sync-server serve -a :8080 --hash-key secret --token-sign-key key`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printBuildInfo(cmd.OutOrStdout())

			log := opts.log
			log.Debug().Any("config", opts.cfg).Msg("received configs")

			services, err := opts.newServices()
			if err != nil {
				log.Err(err).Msg("error creating services")
				return err
			}

			handlers, err := handler.NewHandlers(services, *opts.cfg, log)
			if err != nil {
				log.Err(err).Msg("error creating handlers")
				return err
			}

			srv, err := server.NewServer(handlers, *opts.cfg, log)
			if err != nil {
				log.Err(err).Msg("error creating server")
				return err
			}

			if err = srv.RunServer(); err != nil {
				log.Err(err).Msg("server stopped with error")
				return err
			}
			return nil
		},
	}
}

type tokenOptions struct {
	*rootOptions
	ttl time.Duration
}

func newTokenCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &tokenOptions{rootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "token <device-id>",
		Short: "Issue a device token",
		Long: `Token signs a bearer token for a point-of-sale device with the
configured token sign key. Write it to the client's token file.

Examples:
  resto-sync-server token till-1 --token-sign-key key --ttl 720h > till-1.token`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := opts.newServices()
			if err != nil {
				return err
			}
			if !services.AuthService.Enabled() {
				return errAuthDisabled
			}

			token, err := services.AuthService.CreateToken(cmd.Context(), args[0], opts.ttl)
			if err != nil {
				return fmt.Errorf("error creating token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().DurationVar(&opts.ttl, "ttl", 30*24*time.Hour, "token lifetime")

	return cmd
}
