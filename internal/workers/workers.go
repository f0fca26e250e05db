// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/resto-sync/models"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker and blocks until all of them return. The first
// error cancels the others.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(gctx)
		})
	}
	return g.Wait()
}

// serviceWorker adapts a [Service] to [Worker].
type serviceWorker struct {
	service Service
}

// NewServiceWorker runs s from Start until ctx is cancelled, then stops it.
func NewServiceWorker(s Service) Worker {
	return &serviceWorker{service: s}
}

func (w *serviceWorker) Run(ctx context.Context) error {
	w.service.Start(ctx)
	<-ctx.Done()
	w.service.Stop()
	return nil
}

// syncJobWorker runs a [SyncJob] with a fixed trigger and interval.
type syncJobWorker struct {
	job      SyncJob
	trigger  models.SyncTrigger
	interval time.Duration
}

func NewSyncJobWorker(job SyncJob, trigger models.SyncTrigger, interval time.Duration) Worker {
	return &syncJobWorker{job: job, trigger: trigger, interval: interval}
}

func (w *syncJobWorker) Run(ctx context.Context) error {
	w.job.Start(ctx, w.trigger, w.interval)
	<-ctx.Done()
	w.job.Stop()
	return nil
}
