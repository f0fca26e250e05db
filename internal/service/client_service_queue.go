// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/resto-sync/internal/config"
	"github.com/MKhiriev/resto-sync/internal/logger"
	"github.com/MKhiriev/resto-sync/internal/store"
	"github.com/MKhiriev/resto-sync/internal/utils"
	"github.com/MKhiriev/resto-sync/models"
)

const (
	queueEventRetention   = 500
	networkEventRetention = 500
)

type syncQueue struct {
	tx            store.Transactor
	records       store.RecordRepository
	conflicts     store.ConflictRepository
	events        store.QueueEventRepository
	networkEvents store.NetworkEventRepository
	syncLogs      store.SyncLogRepository

	cfg config.ClientSync
	ids utils.IDGenerator
	now func() time.Time

	stampMu   sync.Mutex
	lastStamp time.Time

	pressureMu sync.Mutex
	pressure   map[uint64]func(models.QueuePressure)
	nextSub    uint64
	lastLevel  models.PressureLevel

	logger *logger.Logger
}

// NewSyncQueue creates the sync queue on top of the client storages.
func NewSyncQueue(storages *store.ClientStorages, cfg config.ClientSync, logger *logger.Logger) SyncQueue {
	return &syncQueue{
		tx:            storages.Transactor,
		records:       storages.Records,
		conflicts:     storages.Conflicts,
		events:        storages.QueueEvents,
		networkEvents: storages.NetworkEvents,
		syncLogs:      storages.SyncLogs,
		cfg:           cfg,
		ids:           utils.NewUUIDGenerator(),
		now:           time.Now,
		pressure:      make(map[uint64]func(models.QueuePressure)),
		lastLevel:     models.PressureNormal,
		logger:        logger,
	}
}

// stamp returns a timestamp strictly after both previous and every stamp
// handed out before.
func (q *syncQueue) stamp(previous time.Time) time.Time {
	q.stampMu.Lock()
	defer q.stampMu.Unlock()

	floor := previous
	if q.lastStamp.After(floor) {
		floor = q.lastStamp
	}

	now := q.now().UTC()
	if !now.After(floor) {
		now = floor.Add(time.Nanosecond)
	}
	q.lastStamp = now
	return now
}

func (q *syncQueue) Enqueue(ctx context.Context, records ...models.Record) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	for _, r := range records {
		if !r.Collection.IsValid() {
			return nil, fmt.Errorf("%w: unknown collection %q", ErrInvalidRecord, r.Collection)
		}
	}

	stored := make([]models.Record, 0, len(records))
	err := q.tx.WithinTx(ctx, func(ctx context.Context) error {
		stats, err := q.records.Stats(ctx)
		if err != nil {
			return err
		}
		queued := stats.Pending + stats.Syncing

		for _, r := range records {
			r = r.Clone()

			var previous time.Time
			existing, err := q.getExisting(ctx, r.LocalID)
			if err != nil {
				return err
			}

			alreadyQueued := false
			if existing != nil {
				previous = existing.LastModified
				if r.ServerID == nil {
					r.ServerID = existing.ServerID
				}
				if r.ServerUpdatedAt == nil {
					r.ServerUpdatedAt = existing.ServerUpdatedAt
				}
				r.CreatedAt = existing.CreatedAt
				r.BaseFields = existing.BaseFields.Clone()
				r.Deferred = existing.Deferred
				// pending and in-flight records already count against the queue
				alreadyQueued = !existing.Deferred &&
					(existing.SyncStatus == models.SyncStatusPending || existing.SyncStatus == models.SyncStatusSyncing)
			} else {
				if r.LocalID == "" {
					r.LocalID = q.ids.Generate()
				}
				r.CreatedAt = q.now().UTC()
				r.BaseFields = nil
				r.Deferred = false
			}

			r.LastModified = q.stamp(previous)
			r.SyncStatus = models.SyncStatusPending
			r.NeedsReview = false
			r.RejectReason = nil

			if !alreadyQueued && !r.Deferred {
				if q.cfg.MaxQueueSize > 0 && queued >= q.cfg.MaxQueueSize {
					r.Deferred = true
					if err = q.events.Add(ctx, models.QueueEvent{
						Kind:       models.QueueEventOverflow,
						LocalID:    r.LocalID,
						Collection: r.Collection,
						Detail:     fmt.Sprintf("queue full at %d entries, mutation deferred", queued),
						CreatedAt:  r.LastModified,
					}); err != nil {
						return err
					}
				} else {
					queued++
				}
			}

			if err = q.records.Save(ctx, r); err != nil {
				return err
			}
			stored = append(stored, r)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "syncQueue.Enqueue").Int("records", len(records)).Msg("failed to enqueue records")
		return nil, err
	}

	q.checkPressure(ctx)

	return stored, nil
}

func (q *syncQueue) getExisting(ctx context.Context, localID string) (*models.Record, error) {
	if localID == "" {
		return nil, nil
	}
	existing, err := q.records.Get(ctx, localID)
	if errors.Is(err, store.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

func (q *syncQueue) CollectPending(ctx context.Context, collections []models.Collection) (models.PendingChanges, error) {
	log := logger.FromContext(ctx)

	if len(collections) == 0 {
		collections = models.AllCollections
	}

	if _, err := q.releaseDeferred(ctx); err != nil {
		return models.PendingChanges{}, err
	}
	if _, err := q.flagStale(ctx); err != nil {
		return models.PendingChanges{}, err
	}

	open, err := q.conflicts.OpenLocalIDs(ctx)
	if err != nil {
		return models.PendingChanges{}, err
	}

	notDeferred := false
	records, err := q.records.List(ctx, store.RecordFilter{
		Collections: collections,
		Statuses:    []models.SyncStatus{models.SyncStatusPending, models.SyncStatusConflict},
		Deferred:    &notDeferred,
	})
	if err != nil {
		return models.PendingChanges{}, err
	}

	var (
		pending models.PendingChanges
		never   []string
	)
	for _, r := range records {
		if _, ok := open[r.LocalID]; ok {
			continue
		}
		if r.IsDeleted && !r.HasServerID() {
			never = append(never, r.LocalID)
			continue
		}
		pending.Entries = append(pending.Entries, models.NewQueueEntry(r))
	}

	if len(never) > 0 {
		if err = q.records.Delete(ctx, never...); err != nil {
			return models.PendingChanges{}, err
		}
		log.Debug().
			Str("func", "syncQueue.CollectPending").
			Int("removed", len(never)).
			Msg("removed records deleted before reaching the server")
	}

	order := make(map[models.Collection]int, len(models.AllCollections))
	for i, c := range models.AllCollections {
		order[c] = i
	}
	sort.SliceStable(pending.Entries, func(i, j int) bool {
		return order[pending.Entries[i].Collection] < order[pending.Entries[j].Collection]
	})

	return pending, nil
}

// releaseDeferred un-defers the oldest deferred records while the queue has
// room for them.
func (q *syncQueue) releaseDeferred(ctx context.Context) (int, error) {
	stats, err := q.records.Stats(ctx)
	if err != nil {
		return 0, err
	}
	if stats.Deferred == 0 {
		return 0, nil
	}

	room := stats.Deferred
	if q.cfg.MaxQueueSize > 0 {
		room = q.cfg.MaxQueueSize - (stats.Pending + stats.Syncing)
	}
	if room <= 0 {
		return 0, nil
	}

	deferred := true
	records, err := q.records.List(ctx, store.RecordFilter{
		Deferred: &deferred,
		Limit:    uint64(room),
	})
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.LocalID
	}

	err = q.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := q.records.SetDeferred(ctx, false, ids...); err != nil {
			return err
		}
		return q.events.Add(ctx, models.QueueEvent{
			Kind:      models.QueueEventReleased,
			Detail:    fmt.Sprintf("released %d deferred mutation(s)", len(ids)),
			CreatedAt: q.now(),
		})
	})
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info().
		Str("func", "syncQueue.releaseDeferred").
		Int("released", len(ids)).
		Msg("deferred mutations released")

	return len(ids), nil
}

// flagStale marks pending records older than the queue TTL for review. They
// are still pushed.
func (q *syncQueue) flagStale(ctx context.Context) (int, error) {
	if q.cfg.QueueItemTTL <= 0 {
		return 0, nil
	}

	notFlagged := false
	stale, err := q.records.List(ctx, store.RecordFilter{
		Statuses:       []models.SyncStatus{models.SyncStatusPending, models.SyncStatusConflict},
		NeedsReview:    &notFlagged,
		ModifiedBefore: q.now().Add(-q.cfg.QueueItemTTL),
	})
	if err != nil || len(stale) == 0 {
		return 0, err
	}

	ids := make([]string, len(stale))
	err = q.tx.WithinTx(ctx, func(ctx context.Context) error {
		for i, r := range stale {
			ids[i] = r.LocalID
			if err := q.events.Add(ctx, models.QueueEvent{
				Kind:       models.QueueEventStale,
				LocalID:    r.LocalID,
				Collection: r.Collection,
				Detail:     fmt.Sprintf("pending since %s", r.LastModified.Format(time.RFC3339)),
				CreatedAt:  q.now(),
			}); err != nil {
				return err
			}
		}
		return q.records.SetNeedsReview(ctx, true, ids...)
	})
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Warn().
		Str("func", "syncQueue.flagStale").
		Int("stale", len(ids)).
		Msg("pending mutations outlived the queue TTL")

	return len(ids), nil
}

func (q *syncQueue) MarkSynced(ctx context.Context, localID, serverID string, serverUpdatedAt *time.Time, acked models.Fields, snapshot time.Time) (bool, error) {
	var flipped bool
	err := q.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		flipped, err = q.records.MarkSynced(ctx, localID, serverID, serverUpdatedAt, acked, snapshot)
		if err != nil || !flipped {
			return err
		}

		record, err := q.records.Get(ctx, localID)
		if err != nil {
			return err
		}
		if record.IsDeleted {
			return q.records.Delete(ctx, localID)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncQueue.MarkSynced").
			Str("local_id", localID).
			Msg("failed to mark record synced")
		return false, err
	}
	return flipped, nil
}

func (q *syncQueue) MarkRejected(ctx context.Context, localID, reason string) error {
	err := q.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := q.records.MarkRejected(ctx, localID, reason); err != nil {
			return err
		}
		record, err := q.records.Get(ctx, localID)
		if err != nil {
			return err
		}
		return q.conflicts.Open(ctx, models.OpenConflict{
			LocalID:    localID,
			Collection: record.Collection,
			Reason:     models.ConflictReasonRejected,
			Detail:     reason,
			ServerID:   record.ServerID,
			DetectedAt: q.now(),
		})
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncQueue.MarkRejected").
			Str("local_id", localID).
			Msg("failed to mark record rejected")
	}
	return err
}

func (q *syncQueue) Stats(ctx context.Context) (models.QueueStats, error) {
	return q.records.Stats(ctx)
}

func (q *syncQueue) Events(ctx context.Context, limit uint64) ([]models.QueueEvent, error) {
	return q.events.List(ctx, limit)
}

func (q *syncQueue) OnPressure(fn func(models.QueuePressure)) func() {
	q.pressureMu.Lock()
	id := q.nextSub
	q.nextSub++
	q.pressure[id] = fn
	q.pressureMu.Unlock()

	return func() {
		q.pressureMu.Lock()
		delete(q.pressure, id)
		q.pressureMu.Unlock()
	}
}

func (q *syncQueue) levelFor(pending int) models.PressureLevel {
	switch {
	case q.cfg.MaxQueueSize > 0 && pending >= q.cfg.MaxQueueSize:
		return models.PressureOverflow
	case q.cfg.QueueCleanupThreshold > 0 && pending > q.cfg.QueueCleanupThreshold:
		return models.PressureCleanup
	case q.cfg.QueueWarningThreshold > 0 && pending > q.cfg.QueueWarningThreshold:
		return models.PressureWarning
	default:
		return models.PressureNormal
	}
}

// checkPressure signals subscribers when the pressure band changes to a
// non-normal level and purges residue past the cleanup threshold.
func (q *syncQueue) checkPressure(ctx context.Context) {
	log := logger.FromContext(ctx)

	stats, err := q.records.Stats(ctx)
	if err != nil {
		log.Warn().Err(err).Str("func", "syncQueue.checkPressure").Msg("failed to read queue stats")
		return
	}
	pending := stats.Pending + stats.Syncing
	level := q.levelFor(pending)

	q.pressureMu.Lock()
	changed := level != q.lastLevel
	q.lastLevel = level
	subs := make([]func(models.QueuePressure), 0, len(q.pressure))
	for _, fn := range q.pressure {
		subs = append(subs, fn)
	}
	q.pressureMu.Unlock()

	if !changed || level == models.PressureNormal {
		return
	}

	log.Warn().
		Str("func", "syncQueue.checkPressure").
		Str("level", string(level)).
		Int("pending", pending).
		Msg("sync queue pressure")

	if err = q.events.Add(ctx, models.QueueEvent{
		Kind:      models.QueueEventWarning,
		Detail:    fmt.Sprintf("%d pending mutation(s), level %s", pending, level),
		CreatedAt: q.now(),
	}); err != nil {
		log.Warn().Err(err).Str("func", "syncQueue.checkPressure").Msg("failed to record queue warning")
	}

	if level == models.PressureCleanup || level == models.PressureOverflow {
		if _, err = q.Cleanup(ctx); err != nil {
			log.Warn().Err(err).Str("func", "syncQueue.checkPressure").Msg("queue cleanup failed")
		}
	}

	p := models.QueuePressure{Level: level, Pending: pending}
	for _, fn := range subs {
		fn(p)
	}
}

func (q *syncQueue) Cleanup(ctx context.Context) (models.QueueCleanup, error) {
	var report models.QueueCleanup

	err := q.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		if report.Tombstones, err = q.records.PurgeSyncedTombstones(ctx); err != nil {
			return err
		}
		if report.ResolvedConflicts, err = q.conflicts.PurgeResolved(ctx); err != nil {
			return err
		}
		if report.QueueEvents, err = q.events.Purge(ctx, queueEventRetention); err != nil {
			return err
		}
		if report.NetworkEvents, err = q.networkEvents.Purge(ctx, networkEventRetention); err != nil {
			return err
		}
		if q.cfg.LogRetention > 0 {
			if report.SyncLogs, err = q.syncLogs.Purge(ctx, q.cfg.LogRetention); err != nil {
				return err
			}
		}
		return q.events.Add(ctx, models.QueueEvent{
			Kind:      models.QueueEventCleanup,
			Detail:    fmt.Sprintf("purged %d residue row(s)", report.Total()),
			CreatedAt: q.now(),
		})
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "syncQueue.Cleanup").Msg("failed to purge queue residue")
		return models.QueueCleanup{}, err
	}

	logger.FromContext(ctx).Info().
		Str("func", "syncQueue.Cleanup").
		Int64("purged", report.Total()).
		Msg("queue residue purged")

	return report, nil
}
