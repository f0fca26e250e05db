// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the reference sync server: it owns the HTTP listener,
// handles termination signals and shuts the server down gracefully.
package server
