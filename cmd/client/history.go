// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/resto-sync/internal/client"
	"github.com/MKhiriev/resto-sync/models"
)

type historyOptions struct {
	*rootOptions
	limit   uint64
	network bool
}

func newHistoryCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &historyOptions{rootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent sync attempts or network events",
		Long: `History lists the newest sync attempts first. With --network it lists
the persisted connectivity changes instead.

Examples:
  resto-sync history --limit 5
  resto-sync history --network --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(a *client.App) error {
				out := cmd.OutOrStdout()

				if opts.network {
					events, err := a.NetworkHistory(cmd.Context(), opts.limit)
					if err != nil {
						return err
					}
					if printed, err := opts.printJSON(out, events); printed || err != nil {
						return err
					}
					return printNetworkEvents(out, events)
				}

				logs, err := a.History(cmd.Context(), opts.limit)
				if err != nil {
					return err
				}
				if printed, err := opts.printJSON(out, logs); printed || err != nil {
					return err
				}
				return printSyncLogs(out, logs)
			})
		},
	}

	cmd.Flags().Uint64Var(&opts.limit, "limit", 20, "number of entries (0 for all)")
	cmd.Flags().BoolVar(&opts.network, "network", false, "show network events")

	return cmd
}

func printSyncLogs(w io.Writer, logs []models.SyncLog) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTARTED\tTYPE\tTRIGGER\tSTATUS\tPULLED\tPUSHED\tRESOLVED\tREJECTED\tERRORS")
	for _, l := range logs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
			l.ID, l.StartedAt.Local().Format(time.DateTime), l.Type, l.Trigger, l.Status,
			l.Pulled, l.Pushed, l.ConflictsResolved, l.Rejected, len(l.Errors))
	}
	return tw.Flush()
}

func printNetworkEvents(w io.Writer, events []models.NetworkEvent) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "AT\tEVENT\tTYPE\tQUALITY\tREACHABLE")
	for _, e := range events {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n",
			e.At.Local().Format(time.DateTime), e.Type, e.State.Type, e.State.Quality, e.State.Reachable)
	}
	return tw.Flush()
}
