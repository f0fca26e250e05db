// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/MKhiriev/resto-sync/internal/adapter"
	"github.com/MKhiriev/resto-sync/internal/config"
	"github.com/MKhiriev/resto-sync/internal/logger"
	"github.com/MKhiriev/resto-sync/internal/store"
	"github.com/MKhiriev/resto-sync/internal/utils"
	"github.com/MKhiriev/resto-sync/models"
)

type syncOrchestrator struct {
	tx        store.Transactor
	records   store.RecordRepository
	syncState store.SyncStateRepository
	syncLogs  store.SyncLogRepository
	conflicts store.ConflictRepository

	queue    SyncQueue
	resolver ConflictResolver
	recovery Recovery
	adapter  adapter.SyncAdapter
	monitor  NetworkMonitor

	batchSize     int
	schemaVersion int
	syncTimeout   time.Duration
	probeURL      string

	ids utils.IDGenerator
	now func() time.Time

	// sem allows a single cycle at a time.
	sem *semaphore.Weighted

	stateMu sync.RWMutex
	state   models.SyncState

	notifyMu   sync.Mutex
	notifySubs map[uint64]func(models.Notification)
	nextNotify uint64

	runMu  sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// OrchestratorDeps groups the collaborators of the sync orchestrator.
type OrchestratorDeps struct {
	Storages *store.ClientStorages
	Queue    SyncQueue
	Resolver ConflictResolver
	Recovery Recovery
	Adapter  adapter.SyncAdapter
	Monitor  NetworkMonitor
}

// NewSyncOrchestrator wires the sync state machine.
func NewSyncOrchestrator(deps OrchestratorDeps, cfg *config.ClientConfig, logger *logger.Logger) SyncOrchestrator {
	batchSize := cfg.Sync.BatchSize
	if batchSize <= 0 {
		batchSize = config.DefaultBatchSize
	}
	syncTimeout := cfg.Adapter.SyncTimeout
	if syncTimeout <= 0 {
		syncTimeout = config.DefaultSyncTimeout
	}

	return &syncOrchestrator{
		tx:            deps.Storages.Transactor,
		records:       deps.Storages.Records,
		syncState:     deps.Storages.SyncState,
		syncLogs:      deps.Storages.SyncLogs,
		conflicts:     deps.Storages.Conflicts,
		queue:         deps.Queue,
		resolver:      deps.Resolver,
		recovery:      deps.Recovery,
		adapter:       deps.Adapter,
		monitor:       deps.Monitor,
		batchSize:     batchSize,
		schemaVersion: cfg.App.SchemaVersion,
		syncTimeout:   syncTimeout,
		probeURL:      cfg.Adapter.ProbeURL,
		ids:           utils.NewUUIDGenerator(),
		now:           time.Now,
		sem:           semaphore.NewWeighted(1),
		state:         models.SyncStateIdle,
		notifySubs:    make(map[uint64]func(models.Notification)),
		logger:        logger,
	}
}

// cycleStats accumulates the counters of one cycle.
type cycleStats struct {
	pushed            int
	pulled            int
	conflictsResolved int
	rejected          int
	manual            int
	errors            []models.SyncError
}

func (o *syncOrchestrator) State() models.SyncState {
	o.stateMu.RLock()
	defer o.stateMu.RUnlock()
	return o.state
}

func (o *syncOrchestrator) setState(ctx context.Context, state models.SyncState) {
	o.stateMu.Lock()
	prev := o.state
	o.state = state
	o.stateMu.Unlock()

	if prev != state {
		logger.FromContext(ctx).Debug().
			Str("func", "syncOrchestrator.setState").
			Str("from", string(prev)).
			Str("to", string(state)).
			Msg("sync state changed")
	}
}

func (o *syncOrchestrator) Sync(ctx context.Context, opts models.SyncOptions) (models.SyncLog, error) {
	if opts.Type == "" {
		opts.Type = models.SyncTypeFull
	}
	if !opts.Type.IsValid() {
		return models.SyncLog{}, fmt.Errorf("%w: %q", ErrInvalidSyncType, opts.Type)
	}
	if opts.Trigger == "" {
		opts.Trigger = models.TriggerManual
	}

	if opts.Force {
		if err := o.sem.Acquire(ctx, 1); err != nil {
			return models.SyncLog{}, err
		}
	} else if !o.sem.TryAcquire(1) {
		return models.SyncLog{}, ErrSyncInProgress
	}
	defer o.sem.Release(1)

	return o.runCycle(ctx, opts)
}

func (o *syncOrchestrator) runCycle(ctx context.Context, opts models.SyncOptions) (models.SyncLog, error) {
	log := logger.FromContext(ctx)

	entry := models.SyncLog{
		Type:      opts.Type,
		Trigger:   opts.Trigger,
		Status:    models.SyncLogStarted,
		StartedAt: o.now().UTC(),
	}
	id, err := o.syncLogs.Create(ctx, entry)
	if err != nil {
		log.Err(err).Str("func", "syncOrchestrator.runCycle").Msg("failed to open sync log")
		return models.SyncLog{}, fmt.Errorf("%w: %w", ErrSyncLogFailed, err)
	}
	entry.ID = id

	log.Info().
		Str("func", "syncOrchestrator.runCycle").
		Int64("sync_log_id", id).
		Str("type", string(opts.Type)).
		Str("trigger", string(opts.Trigger)).
		Msg("sync started")

	var stats cycleStats
	cycleErr := o.ensureOnline(ctx)
	if cycleErr == nil && opts.Type.Pulls() {
		o.setState(ctx, models.SyncStatePulling)
		cycleErr = o.pull(ctx, &stats)
	}
	if cycleErr == nil && opts.Type.Pushes() {
		o.setState(ctx, models.SyncStatePushing)
		cycleErr = o.push(ctx, &stats)
	}

	finished := o.now().UTC()
	entry.FinishedAt = &finished
	entry.Pushed = stats.pushed
	entry.Pulled = stats.pulled
	entry.ConflictsResolved = stats.conflictsResolved
	entry.Rejected = stats.rejected
	entry.Errors = stats.errors
	entry.Status = models.SyncLogCompleted
	if cycleErr != nil {
		entry.Status = models.SyncLogFailed
		entry.Errors = append(entry.Errors, o.recovery.Classify(cycleErr))
		o.setState(ctx, models.SyncStateFailed)
	}

	// the log is finalized even when ctx was canceled mid-cycle
	if err = o.syncLogs.Finalize(context.WithoutCancel(ctx), entry); err != nil {
		log.Err(err).Str("func", "syncOrchestrator.runCycle").Int64("sync_log_id", id).Msg("failed to finalize sync log")
		cycleErr = errors.Join(cycleErr, fmt.Errorf("%w: %w", ErrSyncLogFailed, err))
	}
	o.setState(ctx, models.SyncStateIdle)

	event := log.Info()
	if cycleErr != nil {
		event = log.Warn().Err(cycleErr)
	}
	event.
		Str("func", "syncOrchestrator.runCycle").
		Int64("sync_log_id", id).
		Str("status", string(entry.Status)).
		Int("pulled", entry.Pulled).
		Int("pushed", entry.Pushed).
		Int("conflicts_resolved", entry.ConflictsResolved).
		Int("rejected", entry.Rejected).
		Int("manual_conflicts", stats.manual).
		Dur("duration", entry.Duration()).
		Msg("sync finished")

	o.notify(entry, stats, cycleErr != nil)

	return entry, cycleErr
}

// ensureOnline gates a cycle on connectivity. A probe gives probe-only
// monitors the chance to learn the link is up.
func (o *syncOrchestrator) ensureOnline(ctx context.Context) error {
	if o.monitor == nil || o.monitor.GetState().Connected {
		return nil
	}
	o.monitor.TestConnectivity(ctx, o.probeURL)
	if !o.monitor.GetState().Connected {
		return ErrOffline
	}
	return nil
}

func (o *syncOrchestrator) ensureReachable(ctx context.Context) error {
	if o.monitor == nil {
		return nil
	}
	if !o.monitor.TestConnectivity(ctx, o.probeURL) {
		return ErrServerUnreachable
	}
	return nil
}

func (o *syncOrchestrator) cursor(ctx context.Context) (int64, error) {
	value, err := o.syncState.Get(ctx, store.CursorKey)
	if err != nil {
		return 0, err
	}
	if value == "" {
		return 0, nil
	}
	cursor, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "syncOrchestrator.cursor").
			Str("cursor", value).
			Msg("malformed cursor, pulling from the beginning")
		return 0, nil
	}
	return cursor, nil
}

func (o *syncOrchestrator) pull(ctx context.Context, stats *cycleStats) error {
	cursor, err := o.cursor(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrApplyFailed, err)
	}

	for {
		request := models.PullRequest{
			LastPulledAt:  cursor,
			SchemaVersion: o.schemaVersion,
			Limit:         o.batchSize,
		}

		var response models.PullResponse
		err = o.recovery.Do(ctx, func(ctx context.Context) error {
			if err := o.ensureReachable(ctx); err != nil {
				return err
			}
			callCtx, cancel := context.WithTimeout(ctx, o.syncTimeout)
			defer cancel()

			var err error
			response, err = o.adapter.Pull(callCtx, request)
			return err
		})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrPullFailed, err)
		}

		o.setState(ctx, models.SyncStateReconciling)

		detection, err := o.resolver.DetectConflicts(ctx, response.Changes)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrApplyFailed, err)
		}
		resolutions := append(detection.Resolved, o.resolver.ResolveConflicts(detection.Conflicts)...)

		next := max(cursor, response.Timestamp)
		var applied applyResult
		err = o.tx.WithinTx(ctx, func(ctx context.Context) error {
			var err error
			if applied, err = o.apply(ctx, resolutions); err != nil {
				return err
			}
			return o.syncState.Set(ctx, store.CursorKey, strconv.FormatInt(next, 10))
		})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrApplyFailed, err)
		}

		stats.pulled += response.Changes.Len()
		stats.conflictsResolved += len(detection.Conflicts) - applied.manual
		stats.manual += applied.manual

		// a server that reports more without advancing would loop forever
		if !response.HasMore || next == cursor {
			return nil
		}
		cursor = next
		o.setState(ctx, models.SyncStatePulling)
	}
}

func (o *syncOrchestrator) push(ctx context.Context, stats *cycleStats) error {
	log := logger.FromContext(ctx)

	reset, err := o.records.ResetSyncing(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrApplyFailed, err)
	}
	if reset > 0 {
		log.Warn().Str("func", "syncOrchestrator.push").Int64("records", reset).Msg("records left syncing by an interrupted cycle reset to pending")
	}

	pending, err := o.queue.CollectPending(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrApplyFailed, err)
	}
	if pending.Len() == 0 {
		return nil
	}

	cursor, err := o.cursor(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrApplyFailed, err)
	}

	for _, batch := range pending.Batches(o.batchSize) {
		ids := make([]string, len(batch))
		for i, e := range batch {
			ids[i] = e.LocalID
		}

		err = o.tx.WithinTx(ctx, func(ctx context.Context) error {
			if _, err := o.records.SetStatus(ctx, models.SyncStatusPending, models.SyncStatusSyncing, ids...); err != nil {
				return err
			}
			_, err := o.records.SetStatus(ctx, models.SyncStatusConflict, models.SyncStatusSyncing, ids...)
			return err
		})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrApplyFailed, err)
		}

		request := models.PushRequest{
			Changes:      models.ChangeSetFromEntries(batch),
			LastPulledAt: cursor,
		}

		var response models.PushResponse
		err = o.recovery.Do(ctx, func(ctx context.Context) error {
			if err := o.ensureReachable(ctx); err != nil {
				return err
			}
			callCtx, cancel := context.WithTimeout(ctx, o.syncTimeout)
			defer cancel()

			var err error
			response, err = o.adapter.Push(callCtx, request)
			return err
		})
		if err != nil {
			if _, resetErr := o.records.SetStatus(context.WithoutCancel(ctx), models.SyncStatusSyncing, models.SyncStatusPending, ids...); resetErr != nil {
				log.Err(resetErr).Str("func", "syncOrchestrator.push").Msg("failed to return batch to pending")
			}
			return fmt.Errorf("%w: %w", ErrPushFailed, err)
		}

		o.setState(ctx, models.SyncStatePushReconciling)
		if err = o.reconcilePush(ctx, batch, response, stats); err != nil {
			return fmt.Errorf("%w: %w", ErrApplyFailed, err)
		}
		o.setState(ctx, models.SyncStatePushing)
	}

	return nil
}

// reconcilePush applies the outcome classes of one batch in a single
// transaction. Records the server did not mention go back to pending.
func (o *syncOrchestrator) reconcilePush(ctx context.Context, batch []models.QueueEntry, response models.PushResponse, stats *cycleStats) error {
	log := logger.FromContext(ctx)

	entries := make(map[string]models.QueueEntry, len(batch))
	ids := make([]string, len(batch))
	for i, e := range batch {
		entries[e.LocalID] = e
		ids[i] = e.LocalID
	}

	var local cycleStats
	err := o.tx.WithinTx(ctx, func(ctx context.Context) error {
		local = cycleStats{}

		for _, accepted := range response.Accepted {
			entry, ok := entries[accepted.LocalID]
			if !ok {
				log.Warn().Str("func", "syncOrchestrator.reconcilePush").Str("local_id", accepted.LocalID).Msg("server accepted a record outside the batch")
				continue
			}

			var updatedAt *time.Time
			if accepted.UpdatedAt > 0 {
				updatedAt = models.TimePtr(time.UnixMilli(accepted.UpdatedAt).UTC())
			}

			_, err := o.queue.MarkSynced(ctx, accepted.LocalID, accepted.ServerID, updatedAt, entry.Fields, entry.LastModified)
			if errors.Is(err, store.ErrRecordNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			local.pushed++
		}

		for _, rejected := range response.Rejected {
			if _, ok := entries[rejected.LocalID]; !ok {
				continue
			}
			if err := o.queue.MarkRejected(ctx, rejected.LocalID, rejected.Reason); err != nil {
				return err
			}
			local.rejected++
			local.errors = append(local.errors, models.SyncError{
				Code:    models.ErrorCodeValidation,
				Message: fmt.Sprintf("%s/%s: %s", rejected.Collection, rejected.LocalID, rejected.Reason),
			})
		}

		conflicts := make([]models.Conflict, 0, len(response.Conflicts))
		for _, c := range response.Conflicts {
			if _, ok := entries[c.LocalID]; !ok {
				continue
			}
			record, err := o.records.Get(ctx, c.LocalID)
			if err != nil {
				return err
			}
			conflicts = append(conflicts, models.Conflict{
				Collection: c.Collection,
				Local:      record,
				Server:     c.ServerData,
			})
		}
		if len(conflicts) > 0 {
			applied, err := o.apply(ctx, o.resolver.ResolveConflicts(conflicts))
			if err != nil {
				return err
			}
			local.manual += applied.manual
			local.conflictsResolved += len(conflicts) - applied.manual
		}

		_, err := o.records.SetStatus(ctx, models.SyncStatusSyncing, models.SyncStatusPending, ids...)
		return err
	})
	if err != nil {
		return err
	}

	stats.pushed += local.pushed
	stats.rejected += local.rejected
	stats.manual += local.manual
	stats.conflictsResolved += local.conflictsResolved
	stats.errors = append(stats.errors, local.errors...)
	return nil
}

func (o *syncOrchestrator) ListConflicts(ctx context.Context) ([]models.OpenConflict, error) {
	return o.conflicts.ListOpen(ctx)
}

func (o *syncOrchestrator) LastSuccessfulSync(ctx context.Context) (models.SyncLog, error) {
	return o.syncLogs.LastSuccessful(ctx)
}

func (o *syncOrchestrator) History(ctx context.Context, limit uint64) ([]models.SyncLog, error) {
	return o.syncLogs.List(ctx, limit)
}

func (o *syncOrchestrator) OnNotification(fn func(models.Notification)) func() {
	o.notifyMu.Lock()
	id := o.nextNotify
	o.nextNotify++
	o.notifySubs[id] = fn
	o.notifyMu.Unlock()

	return func() {
		o.notifyMu.Lock()
		delete(o.notifySubs, id)
		o.notifyMu.Unlock()
	}
}

// notify emits a single notification for a cycle that needs attention.
func (o *syncOrchestrator) notify(entry models.SyncLog, stats cycleStats, failed bool) {
	if !failed && stats.rejected == 0 && stats.manual == 0 {
		return
	}

	n := models.Notification{
		Level:           models.NotificationWarning,
		SyncLogID:       entry.ID,
		Failed:          failed,
		Rejected:        stats.rejected,
		ManualConflicts: stats.manual,
		At:              o.now().UTC(),
	}
	if failed {
		n.Level = models.NotificationError
	}

	o.notifyMu.Lock()
	subs := make([]func(models.Notification), 0, len(o.notifySubs))
	for _, fn := range o.notifySubs {
		subs = append(subs, fn)
	}
	o.notifyMu.Unlock()

	for _, fn := range subs {
		fn(n)
	}
}

// Start subscribes to stable reconnects and queue pressure. Both start
// non-forced syncs, so a running cycle absorbs them.
func (o *syncOrchestrator) Start(ctx context.Context) {
	o.Stop()

	var (
		events      <-chan models.NetworkEvent
		unsubscribe = func() {}
	)
	if o.monitor != nil {
		events, unsubscribe = o.monitor.Subscribe(16)
	}

	pressure := make(chan models.QueuePressure, 1)
	unsubscribePressure := o.queue.OnPressure(func(p models.QueuePressure) {
		select {
		case pressure <- p:
		default:
		}
	})

	o.runMu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel
	o.wg.Add(1)
	o.runMu.Unlock()

	go func() {
		defer o.wg.Done()
		defer unsubscribe()
		defer unsubscribePressure()

		for {
			select {
			case <-runCtx.Done():
				return
			case e, ok := <-events:
				if !ok {
					events = nil
					continue
				}
				if e.Type == models.EventStableConnection {
					o.trigger(runCtx, models.TriggerReconnect)
				}
			case <-pressure:
				o.trigger(runCtx, models.TriggerQueuePressure)
			}
		}
	}()
}

func (o *syncOrchestrator) Stop() {
	o.runMu.Lock()
	cancel := o.cancel
	o.cancel = nil
	o.runMu.Unlock()

	if cancel != nil {
		cancel()
	}
	o.wg.Wait()
}

func (o *syncOrchestrator) trigger(ctx context.Context, trigger models.SyncTrigger) {
	log := logger.FromContext(ctx)

	_, err := o.Sync(ctx, models.SyncOptions{Type: models.SyncTypeFull, Trigger: trigger})
	switch {
	case errors.Is(err, ErrSyncInProgress):
		log.Debug().Str("func", "syncOrchestrator.trigger").Str("trigger", string(trigger)).Msg("sync already running")
	case err != nil:
		log.Warn().Err(err).Str("func", "syncOrchestrator.trigger").Str("trigger", string(trigger)).Msg("triggered sync failed")
	}
}
