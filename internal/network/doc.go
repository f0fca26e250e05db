// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package network tracks device connectivity for the sync engine.
//
// [Monitor] combines connectivity reports from the platform (see
// [Monitor.SetConnectivity]) with periodic HEAD probes of the sync server.
// It derives reachability and link quality, publishes typed events to
// subscribers and persists every transition so that offline duration and
// connection history survive restarts.
//
// A reconnect is announced twice: [models.EventReconnected] immediately and
// [models.EventStableConnection] once the link stayed up for the
// stabilization delay. Only the latter is meant to trigger a sync.
package network
