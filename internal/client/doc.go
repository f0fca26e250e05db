// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the point-of-sale client runtime.
//
// It wires the local SQLite store, the HTTP sync adapter, the network monitor
// and the sync services into a single process lifecycle, and exposes the
// operator actions used by the command line.
package client
