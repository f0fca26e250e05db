// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/resto-sync/internal/client"
	"github.com/MKhiriev/resto-sync/models"
)

type resolveOptions struct {
	*rootOptions
	keep string
}

func newResolveCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &resolveOptions{rootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "resolve <local-id>",
		Short: "Settle an open conflict",
		Long: `Resolve keeps either the local version of a record, which is queued
for the next push, or the server version.

Examples:
  resto-sync resolve 0190b7c1-... --keep local
  resto-sync resolve 0190b7c1-... --keep server`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			choice := models.ManualChoice("keep_" + opts.keep)
			if !choice.IsValid() {
				return fmt.Errorf("invalid --keep %q: must be local or server", opts.keep)
			}

			return opts.withApp(cmd, func(a *client.App) error {
				if err := a.Resolve(cmd.Context(), args[0], choice); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "conflict for %s resolved: %s\n", args[0], choice)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&opts.keep, "keep", "", "version to keep (local|server)")
	_ = cmd.MarkFlagRequired("keep")

	return cmd
}
