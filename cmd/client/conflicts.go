// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/resto-sync/internal/app"
	"github.com/MKhiriev/resto-sync/internal/client"
	"github.com/MKhiriev/resto-sync/models"
)

func newConflictsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "conflicts",
		Short: "List conflicts waiting for a decision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(a *client.App) error {
				conflicts, err := a.Conflicts(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if printed, err := opts.printJSON(out, conflicts); printed || err != nil {
					return err
				}
				if len(conflicts) == 0 {
					fmt.Fprintln(out, app.MsgNoOpenConflicts)
					return nil
				}
				return printConflicts(out, conflicts)
			})
		},
	}
}

func printConflicts(w io.Writer, conflicts []models.OpenConflict) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LOCAL ID\tCOLLECTION\tREASON\tDETECTED\tDETAIL")
	for _, c := range conflicts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			c.LocalID, c.Collection, c.Reason, c.DetectedAt.Local().Format(time.DateTime), c.Detail)
	}
	return tw.Flush()
}
