// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the sync server handlers
// and the client CLI.
//
// Msg* constants are written into HTTP error bodies and command output, so
// the wording stays the same wherever an outcome is reported.
package app

const (
	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInternalServerError replaces the details of server-side failures
	// the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgInvalidGzip is returned when a gzip request body cannot be read.
	MsgInvalidGzip = "invalid gzip data"

	// MsgReadBodyFailed is returned when the request body cannot be read.
	MsgReadBodyFailed = "failed to read request body"

	// MsgSyncInProgress is printed when a manual sync finds another cycle
	// running.
	MsgSyncInProgress = "another sync is already running"

	// MsgOffline is printed when a sync is requested without connectivity.
	MsgOffline = "device is offline, changes stay queued"

	// MsgNoOpenConflicts is printed when there is nothing to resolve.
	MsgNoOpenConflicts = "no open conflicts"
)
