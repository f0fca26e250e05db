// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/resto-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService is the authoritative side of the pull/push contract served by
// the reference server.
type SyncService interface {
	// Pull returns the changes recorded after request.LastPulledAt, at most
	// request.Limit rows per call.
	Pull(ctx context.Context, request models.PullRequest) (models.PullResponse, error)

	// Push applies a batch of device changes and reports the outcome of every
	// record. Record-level problems are reported as rejections or conflicts;
	// an error means the whole request was refused.
	Push(ctx context.Context, request models.PushRequest) (models.PushResponse, error)
}

type AuthService interface {
	CreateToken(ctx context.Context, deviceID string, ttl time.Duration) (string, error)
	ParseToken(ctx context.Context, tokenString string) (deviceID string, err error)
	Enabled() bool
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
