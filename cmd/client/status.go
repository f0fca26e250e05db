// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/resto-sync/internal/client"
)

func newStatusCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show connectivity, queue and last sync",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(a *client.App) error {
				status, err := a.Status(cmd.Context())
				if err != nil {
					return err
				}
				if printed, err := opts.printJSON(cmd.OutOrStdout(), status); printed || err != nil {
					return err
				}
				printStatus(cmd.OutOrStdout(), status)
				return nil
			})
		},
	}
}

func printStatus(w io.Writer, s client.Status) {
	net := s.Network
	link := "offline"
	switch {
	case net.Online():
		link = "online"
	case net.Connected:
		link = "connected, server unreachable"
	}

	fmt.Fprintf(w, "sync state:  %s\n", s.State)
	fmt.Fprintf(w, "network:     %s (type %s, quality %s", link, net.Type, net.Quality)
	if net.Latency > 0 {
		fmt.Fprintf(w, ", latency %s", net.Latency.Round(time.Millisecond))
	}
	fmt.Fprintln(w, ")")
	if s.Offline > 0 {
		fmt.Fprintf(w, "offline for: %s\n", s.Offline.Round(time.Second))
	}

	q := s.Queue
	fmt.Fprintf(w, "queue:       %d unsynced (pending %d, syncing %d, conflict %d, deferred %d, needs review %d)\n",
		q.Unsynced(), q.Pending, q.Syncing, q.Conflict, q.Deferred, q.NeedsReview)
	fmt.Fprintf(w, "conflicts:   %d open\n", s.OpenConflicts)

	if s.LastSync == nil {
		fmt.Fprintln(w, "last sync:   never")
		return
	}
	at := s.LastSync.StartedAt
	if s.LastSync.FinishedAt != nil {
		at = *s.LastSync.FinishedAt
	}
	fmt.Fprintf(w, "last sync:   #%d at %s\n", s.LastSync.ID, at.Local().Format(time.DateTime))
}
