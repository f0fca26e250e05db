// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/resto-sync/internal/app"
	"github.com/MKhiriev/resto-sync/internal/client"
	"github.com/MKhiriev/resto-sync/internal/service"
	"github.com/MKhiriev/resto-sync/models"
)

type syncOptions struct {
	*rootOptions
	syncType string
	force    bool
}

func newSyncCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &syncOptions{rootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Run one sync cycle now",
		Long: `Sync pulls server changes, reconciles them with local edits and pushes
queued local changes. A forced sync waits for a running cycle instead of
giving up.

Examples:
  resto-sync sync
  resto-sync sync --type push --force
  resto-sync sync --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			syncType := models.SyncType(opts.syncType)
			if !syncType.IsValid() {
				return fmt.Errorf("invalid sync type %q: must be full, pull or push", opts.syncType)
			}

			return opts.withApp(cmd, func(a *client.App) error {
				entry, err := a.SyncNow(cmd.Context(), models.SyncOptions{
					Type:    syncType,
					Force:   opts.force,
					Trigger: models.TriggerManual,
				})
				switch {
				case errors.Is(err, service.ErrSyncInProgress):
					return errors.New(app.MsgSyncInProgress)
				case errors.Is(err, service.ErrOffline):
					return errors.New(app.MsgOffline)
				}

				if printed, jerr := opts.printJSON(cmd.OutOrStdout(), entry); printed || jerr != nil {
					if jerr != nil {
						return jerr
					}
					return err
				}
				printSyncLog(cmd.OutOrStdout(), entry)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&opts.syncType, "type", string(models.SyncTypeFull), "sync type (full|pull|push)")
	cmd.Flags().BoolVar(&opts.force, "force", false, "wait for a running sync instead of skipping")

	return cmd
}

func printSyncLog(w io.Writer, entry models.SyncLog) {
	fmt.Fprintf(w, "sync #%d %s (%s, %s)\n", entry.ID, entry.Status, entry.Type, entry.Trigger)
	fmt.Fprintf(w, "  pulled: %d  pushed: %d  resolved: %d  rejected: %d  took: %s\n",
		entry.Pulled, entry.Pushed, entry.ConflictsResolved, entry.Rejected, entry.Duration())
	for _, e := range entry.Errors {
		fmt.Fprintf(w, "  error [%s]: %s\n", e.Code, e.Message)
	}
}
