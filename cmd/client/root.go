// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/resto-sync/internal/client"
	"github.com/MKhiriev/resto-sync/internal/config"
	"github.com/MKhiriev/resto-sync/internal/logger"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var validFormats = []string{formatText, formatJSON}

// rootOptions is shared by every command. cfg and log are filled once the
// flags are parsed.
type rootOptions struct {
	flags  *config.Flags
	format string

	cfg *config.ClientConfig
	log *logger.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "resto-sync",
		Short: "Offline-first sync client for the point of sale",
		Long: `resto-sync keeps the local point-of-sale database in sync with the
restaurant server. Changes are queued locally and pushed when the
server is reachable; server changes are pulled and reconciled.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(validFormats, opts.format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.format, validFormats)
			}

			cfg, err := config.GetClientConfig(opts.flags)
			if err != nil {
				return fmt.Errorf("error getting configs: %w", err)
			}
			opts.cfg = cfg
			opts.log = logger.NewClientLogger("resto-sync-client", logger.FileOptions{
				Path:       cfg.Log.File,
				MaxSizeMB:  cfg.Log.MaxSizeMB,
				MaxBackups: cfg.Log.MaxBackups,
				MaxAgeDays: cfg.Log.MaxAgeDays,
				Compress:   cfg.Log.Compress,
				Level:      cfg.Log.Level,
			})
			return nil
		},
	}

	opts.flags = config.BindFlags(cmd.PersistentFlags())
	cmd.PersistentFlags().StringVar(&opts.format, "format", formatText, "output format (text|json)")

	cmd.AddCommand(
		newRunCommand(opts),
		newSyncCommand(opts),
		newStatusCommand(opts),
		newHistoryCommand(opts),
		newConflictsCommand(opts),
		newResolveCommand(opts),
	)

	return cmd
}

// withApp opens the client app for the duration of fn.
func (o *rootOptions) withApp(cmd *cobra.Command, fn func(app *client.App) error) error {
	app, err := client.NewApp(cmd.Context(), o.cfg, o.log)
	if err != nil {
		o.log.Err(err).Str("func", "rootOptions.withApp").Msg("init client app error")
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			o.log.Err(err).Str("func", "rootOptions.withApp").Msg("failed to close local storage")
		}
	}()

	return fn(app)
}

// printJSON writes v when the json format is selected and reports whether it
// did.
func (o *rootOptions) printJSON(w io.Writer, v any) (bool, error) {
	if o.format != formatJSON {
		return false, nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return true, enc.Encode(v)
}
