// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the sync engine and
// the remote authoritative store.
//
// The primary abstraction is [SyncAdapter], which decouples the sync services
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPSyncAdapter]) built on resty.
//
// HTTP statuses and transport failures are mapped to the sentinel errors of
// errors.go so that callers can classify failures with [errors.Is]
// (e.g. [ErrTimeout] for deadlines, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/resto-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/sync_adapter_mock.go -package=mock

// SyncAdapter defines transport-agnostic communication with the sync server.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type SyncAdapter interface {
	// Pull fetches server changes newer than req.LastPulledAt.
	Pull(ctx context.Context, req models.PullRequest) (models.PullResponse, error)

	// Push submits local mutations and returns per-record outcomes.
	Push(ctx context.Context, req models.PushRequest) (models.PushResponse, error)

	// Probe sends a HEAD request to url (or the configured probe URL when
	// url is empty) and returns the round-trip latency.
	Probe(ctx context.Context, url string) (time.Duration, error)

	// SetToken stores the bearer token attached to subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently in use.
	Token() string
}
