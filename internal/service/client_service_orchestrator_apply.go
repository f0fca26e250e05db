// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/resto-sync/internal/logger"
	"github.com/MKhiriev/resto-sync/internal/store"
	"github.com/MKhiriev/resto-sync/models"
)

type applyResult struct {
	applied int
	manual  int
}

// apply writes resolutions to the replica. It must run inside a transaction.
// A record mutated locally after its resolution was computed is resolved
// again against its current state.
func (o *syncOrchestrator) apply(ctx context.Context, resolutions []models.Resolution) (applyResult, error) {
	var result applyResult

	for _, res := range resolutions {
		current, found, err := o.currentLocal(ctx, res)
		if err != nil {
			return result, err
		}

		if found && current.SyncStatus.HasLocalIntent() &&
			(!res.HadLocal || !current.LastModified.Equal(res.BaseModified)) {
			logger.FromContext(ctx).Debug().
				Str("func", "syncOrchestrator.apply").
				Str("local_id", current.LocalID).
				Msg("record changed during sync, resolving again")

			res = o.resolver.ResolveConflicts([]models.Conflict{{
				Collection: res.Collection,
				Local:      current,
				Server:     res.Server,
			}})[0]
		} else if found && !res.HadLocal {
			// an earlier page already created the row
			res.HadLocal = true
			if res.Outcome == models.OutcomeServer {
				res.Record.LocalID = current.LocalID
				res.Record.CreatedAt = current.CreatedAt
			} else {
				res.Record = current
			}
		}

		manual, err := o.applyOne(ctx, res)
		if err != nil {
			return result, err
		}
		result.applied++
		if manual {
			result.manual++
		}
	}

	return result, nil
}

// currentLocal re-reads the local side of a resolution.
func (o *syncOrchestrator) currentLocal(ctx context.Context, res models.Resolution) (models.Record, bool, error) {
	var (
		record models.Record
		err    error
	)
	switch {
	case res.Record.LocalID != "":
		record, err = o.records.Get(ctx, res.Record.LocalID)
	case res.Server.ID != "":
		record, err = o.records.GetByServerID(ctx, res.Collection, res.Server.ID)
	default:
		return models.Record{}, false, nil
	}

	if errors.Is(err, store.ErrRecordNotFound) {
		return models.Record{}, false, nil
	}
	if err != nil {
		return models.Record{}, false, err
	}
	return record, true, nil
}

func (o *syncOrchestrator) applyOne(ctx context.Context, res models.Resolution) (bool, error) {
	record := res.Record

	switch res.Outcome {
	case models.OutcomeServer:
		if record.LocalID == "" {
			record.LocalID = o.ids.Generate()
		}
		if record.CreatedAt.IsZero() {
			record.CreatedAt = o.now().UTC()
		}
		if err := o.records.Save(ctx, record); err != nil {
			return false, err
		}
		return false, o.closeConflict(ctx, record.LocalID)

	case models.OutcomeDelete:
		if !res.HadLocal || record.LocalID == "" {
			return false, nil
		}
		if err := o.records.Delete(ctx, record.LocalID); err != nil {
			return false, err
		}
		return false, o.closeConflict(ctx, record.LocalID)

	case models.OutcomeSynced:
		var err error
		if record.IsDeleted {
			err = o.records.Delete(ctx, record.LocalID)
		} else {
			err = o.records.Save(ctx, record)
		}
		if err != nil {
			return false, err
		}
		return false, o.closeConflict(ctx, record.LocalID)

	case models.OutcomeLocal, models.OutcomeMerged:
		if err := o.records.Save(ctx, record); err != nil {
			return false, err
		}
		return false, o.closeConflict(ctx, record.LocalID)

	case models.OutcomeManual:
		record.SyncStatus = models.SyncStatusConflict
		if err := o.records.Save(ctx, record); err != nil {
			return false, err
		}

		conflict := models.OpenConflict{
			LocalID:       record.LocalID,
			Collection:    res.Collection,
			Reason:        models.ConflictReasonManual,
			ServerFields:  res.Server.Fields,
			ServerDeleted: res.Server.Deleted,
			DetectedAt:    o.now().UTC(),
		}
		if res.Server.ID != "" {
			conflict.ServerID = models.StringPtr(res.Server.ID)
		}
		if res.Server.UpdatedAt > 0 {
			conflict.ServerUpdatedAt = models.TimePtr(res.Server.UpdatedTime())
		}
		return true, o.conflicts.Open(ctx, conflict)
	}

	return false, fmt.Errorf("%w: unknown outcome %q", ErrApplyFailed, res.Outcome)
}

func (o *syncOrchestrator) closeConflict(ctx context.Context, localID string) error {
	err := o.conflicts.Resolve(ctx, localID, o.now().UTC())
	if errors.Is(err, store.ErrConflictNotFound) {
		return nil
	}
	return err
}

// ResolveManual settles an open conflict with the operator's choice. It waits
// for a running cycle to finish.
func (o *syncOrchestrator) ResolveManual(ctx context.Context, localID string, choice models.ManualChoice) error {
	log := logger.FromContext(ctx)

	if !choice.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidChoice, choice)
	}

	if err := o.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer o.sem.Release(1)

	err := o.tx.WithinTx(ctx, func(ctx context.Context) error {
		conflict, err := o.conflicts.GetOpen(ctx, localID)
		if errors.Is(err, store.ErrConflictNotFound) {
			return fmt.Errorf("%w: %s", ErrNoOpenConflict, localID)
		}
		if err != nil {
			return err
		}

		record, err := o.records.Get(ctx, localID)
		if errors.Is(err, store.ErrRecordNotFound) {
			return o.conflicts.Resolve(ctx, localID, o.now().UTC())
		}
		if err != nil {
			return err
		}

		switch choice {
		case models.KeepLocal:
			err = o.keepLocal(ctx, record, conflict)
		case models.KeepServer:
			err = o.keepServer(ctx, record, conflict)
		}
		if err != nil {
			return err
		}

		return o.conflicts.Resolve(ctx, localID, o.now().UTC())
	})
	if err != nil {
		log.Err(err).
			Str("func", "syncOrchestrator.ResolveManual").
			Str("local_id", localID).
			Str("choice", string(choice)).
			Msg("failed to resolve conflict")
		return err
	}

	log.Info().
		Str("func", "syncOrchestrator.ResolveManual").
		Str("local_id", localID).
		Str("choice", string(choice)).
		Msg("conflict resolved")
	return nil
}

// keepLocal re-queues the local version. A record the server deleted is
// pushed again as a create.
func (o *syncOrchestrator) keepLocal(ctx context.Context, record models.Record, conflict models.OpenConflict) error {
	record.SyncStatus = models.SyncStatusPending
	record.RejectReason = nil
	record.NeedsReview = false
	record.LastModified = laterOf(o.now().UTC(), record.LastModified.Add(time.Nanosecond))

	switch {
	case conflict.ServerDeleted:
		record.ServerID = nil
		record.ServerUpdatedAt = nil
		record.BaseFields = nil
	case conflict.ServerID != nil:
		record.ServerID = conflict.ServerID
		if conflict.ServerUpdatedAt != nil {
			record.ServerUpdatedAt = conflict.ServerUpdatedAt
		}
		if conflict.Reason == models.ConflictReasonManual {
			record.BaseFields = nonNil(conflict.ServerFields).Clone()
		}
	}

	return o.records.Save(ctx, record)
}

// keepServer drops the local intent. For a rejected push the server copy is
// the last acknowledged version: a record the server never accepted is
// removed, any other one returns to its base fields.
func (o *syncOrchestrator) keepServer(ctx context.Context, record models.Record, conflict models.OpenConflict) error {
	if conflict.Reason == models.ConflictReasonRejected {
		if !record.HasServerID() {
			return o.records.Delete(ctx, record.LocalID)
		}
		if record.BaseFields == nil {
			// rows written before base tracking: the server copy is unknown,
			// so keep the record queued rather than claim it is synced
			logger.FromContext(ctx).Warn().
				Str("func", "syncOrchestrator.keepServer").
				Str("local_id", record.LocalID).
				Msg("no acknowledged server version, record stays pending")
			record.SyncStatus = models.SyncStatusPending
			record.RejectReason = nil
			return o.records.Save(ctx, record)
		}
		record.Fields = record.BaseFields.Clone()
		record.IsDeleted = false
		record.SyncStatus = models.SyncStatusSynced
		record.RejectReason = nil
		record.NeedsReview = false
		record.Deferred = false
		return o.records.Save(ctx, record)
	}

	if conflict.ServerDeleted || conflict.ServerID == nil {
		return o.records.Delete(ctx, record.LocalID)
	}

	record.ServerID = conflict.ServerID
	record.Fields = nonNil(conflict.ServerFields).Clone()
	record.BaseFields = record.Fields.Clone()
	record.IsDeleted = false
	record.SyncStatus = models.SyncStatusSynced
	record.RejectReason = nil
	record.NeedsReview = false
	record.ServerUpdatedAt = conflict.ServerUpdatedAt
	if conflict.ServerUpdatedAt != nil {
		record.LastModified = laterOf(record.LastModified, *conflict.ServerUpdatedAt)
	}

	return o.records.Save(ctx, record)
}

func laterOf(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
