// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http serves the pull/push sync API of the reference server.
//
// Health and version routes are open. Sync routes pass through bearer
// authentication, body signature checks and a request timeout before they
// reach the sync service. Tracing, access logging and gzip apply to every
// route.
package http
