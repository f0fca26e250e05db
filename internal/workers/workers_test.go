// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/resto-sync/internal/mock"
	"github.com/MKhiriev/resto-sync/models"
)

// blockingWorker counts runs and blocks until ctx is cancelled.
type blockingWorker struct {
	runs atomic.Int32
}

func (w *blockingWorker) Run(ctx context.Context) error {
	w.runs.Add(1)
	<-ctx.Done()
	return nil
}

type failingWorker struct {
	err error
}

func (w *failingWorker) Run(context.Context) error {
	return w.err
}

func runAsync(ctx context.Context, ws *Workers) <-chan error {
	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()
	return done
}

func waitDone(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("workers did not stop")
		return nil
	}
}

// ─────────────────────────────────────────────
// Workers
// ─────────────────────────────────────────────

func TestWorkers_Run_AllWorkersRunUntilCancel(t *testing.T) {
	w1, w2, w3 := &blockingWorker{}, &blockingWorker{}, &blockingWorker{}
	ctx, cancel := context.WithCancel(context.Background())

	done := runAsync(ctx, NewWorkers(w1, w2, w3))

	require.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1 && w3.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	assert.NoError(t, waitDone(t, done))
}

func TestWorkers_Run_FirstErrorStopsOthers(t *testing.T) {
	boom := errors.New("boom")
	blocking := &blockingWorker{}

	done := runAsync(context.Background(), NewWorkers(blocking, &failingWorker{err: boom}))

	assert.ErrorIs(t, waitDone(t, done), boom)
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, NewWorkers().Run(context.Background()))
	assert.NoError(t, (&Workers{}).Run(context.Background()))
}

// ─────────────────────────────────────────────
// Service worker
// ─────────────────────────────────────────────

func TestServiceWorker_StartsAndStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	orch := mock.NewMockSyncOrchestrator(ctrl)

	var started sync.WaitGroup
	started.Add(1)
	gomock.InOrder(
		orch.EXPECT().Start(gomock.Any()).Do(func(context.Context) { started.Done() }),
		orch.EXPECT().Stop(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(ctx, NewWorkers(NewServiceWorker(orch)))

	started.Wait()
	cancel()
	assert.NoError(t, waitDone(t, done))
}

// ─────────────────────────────────────────────
// Sync job worker
// ─────────────────────────────────────────────

func TestSyncJobWorker(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockClientSyncJob(ctrl)

	var started sync.WaitGroup
	started.Add(1)
	gomock.InOrder(
		job.EXPECT().
			Start(gomock.Any(), models.TriggerBackground, 15*time.Minute).
			Do(func(context.Context, models.SyncTrigger, time.Duration) { started.Done() }),
		job.EXPECT().Stop(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(ctx, NewWorkers(NewSyncJobWorker(job, models.TriggerBackground, 15*time.Minute)))

	started.Wait()
	cancel()
	assert.NoError(t, waitDone(t, done))
}
