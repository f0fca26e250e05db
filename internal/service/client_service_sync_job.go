// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/resto-sync/internal/config"
	"github.com/MKhiriev/resto-sync/internal/logger"
	"github.com/MKhiriev/resto-sync/models"
)

type clientSyncJob struct {
	orchestrator SyncOrchestrator

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a clientSyncJob that runs full syncs on a ticker.
// The job is idle until Start is called.
func NewClientSyncJob(orchestrator SyncOrchestrator) ClientSyncJob {
	return &clientSyncJob{orchestrator: orchestrator}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine that requests a full sync every interval
// tagged with trigger. A non-positive interval falls back to the foreground
// default. Ticks that land on a running cycle are skipped.
func (j *clientSyncJob) Start(ctx context.Context, trigger models.SyncTrigger, interval time.Duration) {
	if interval <= 0 {
		interval = config.DefaultForegroundInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		log := logger.FromContext(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_, err := j.orchestrator.Sync(jobCtx, models.SyncOptions{
					Type:    models.SyncTypeFull,
					Trigger: trigger,
				})
				switch {
				case err == nil, errors.Is(err, context.Canceled):
				case errors.Is(err, ErrSyncInProgress):
					log.Debug().Str("func", "clientSyncJob.Start").Msg("tick skipped, sync already running")
				default:
					log.Warn().Err(err).Str("func", "clientSyncJob.Start").Str("trigger", string(trigger)).Msg("periodic sync failed")
				}
			}
		}
	}()
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
