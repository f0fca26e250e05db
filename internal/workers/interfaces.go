// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the long-lived background parts of the sync client
// (connectivity monitor, event-driven sync, periodic sync) under one
// context and stops them together.
package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/resto-sync/models"
)

// Worker is a background task that runs until ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// Service is a component with a non-blocking Start and a blocking Stop,
// such as the network monitor or the sync orchestrator.
type Service interface {
	Start(ctx context.Context)
	Stop()
}

// SyncJob is the periodic sync ticker.
type SyncJob interface {
	Start(ctx context.Context, trigger models.SyncTrigger, interval time.Duration)
	Stop()
}
