// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/resto-sync/internal/config"
	"github.com/MKhiriev/resto-sync/internal/logger"
	"github.com/MKhiriev/resto-sync/internal/store"
	"github.com/MKhiriev/resto-sync/models"
)

type conflictResolver struct {
	records store.RecordRepository

	defaultStrategy models.Strategy
	strategies      map[models.Collection]models.Strategy

	logger *logger.Logger
}

// NewConflictResolver builds a resolver with the configured default strategy
// and per-collection overrides.
func NewConflictResolver(records store.RecordRepository, cfg config.ClientSync, logger *logger.Logger) (ConflictResolver, error) {
	defaultStrategy := models.Strategy(cfg.DefaultStrategy)
	if defaultStrategy == "" {
		defaultStrategy = models.StrategyLastWriteWins
	}
	if !defaultStrategy.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStrategy, cfg.DefaultStrategy)
	}

	strategies := make(map[models.Collection]models.Strategy, len(cfg.Strategies))
	for name, value := range cfg.Strategies {
		collection, strategy := models.Collection(name), models.Strategy(value)
		if !collection.IsValid() {
			return nil, fmt.Errorf("%w: unknown collection %q", ErrInvalidStrategy, name)
		}
		if !strategy.IsValid() {
			return nil, fmt.Errorf("%w: %q for %s", ErrInvalidStrategy, value, name)
		}
		strategies[collection] = strategy
	}

	return &conflictResolver{
		records:         records,
		defaultStrategy: defaultStrategy,
		strategies:      strategies,
		logger:          logger,
	}, nil
}

func (r *conflictResolver) StrategyFor(collection models.Collection) models.Strategy {
	if s, ok := r.strategies[collection]; ok {
		return s
	}
	return r.defaultStrategy
}

func (r *conflictResolver) DetectConflicts(ctx context.Context, changes models.ChangeSet) (models.DetectionResult, error) {
	log := logger.FromContext(ctx)

	var result models.DetectionResult
	for _, collection := range changes.Collections() {
		bucket := changes[collection]
		for _, list := range [][]models.ChangeRecord{bucket.Created, bucket.Updated, bucket.Deleted} {
			for _, change := range list {
				if err := ctx.Err(); err != nil {
					return models.DetectionResult{}, err
				}

				local, found, err := r.findLocal(ctx, collection, change)
				if err != nil {
					log.Warn().Err(err).
						Str("func", "conflictResolver.DetectConflicts").
						Str("collection", string(collection)).
						Str("server_id", change.ID).
						Msg("local lookup failed, accepting server version")
					result.Resolved = append(result.Resolved, acceptServer(collection, change, models.Record{}, false))
					continue
				}

				switch {
				case !found:
					result.Resolved = append(result.Resolved, acceptServer(collection, change, models.Record{}, false))
				case !local.SyncStatus.HasLocalIntent():
					result.Resolved = append(result.Resolved, acceptServer(collection, change, local, true))
				case sameContent(local, change):
					result.Resolved = append(result.Resolved, markIdentical(collection, change, local))
				case acknowledged(local, change):
					// our own write coming back; the newer local edit stays queued
					log.Debug().
						Str("func", "conflictResolver.DetectConflicts").
						Str("local_id", local.LocalID).
						Msg("server echoed an acknowledged version")
				default:
					result.Conflicts = append(result.Conflicts, models.Conflict{
						Collection: collection,
						Local:      local,
						Server:     change,
					})
				}
			}
		}
	}

	return result, nil
}

// findLocal looks the record up by the echoed local id first, then by
// server id.
func (r *conflictResolver) findLocal(ctx context.Context, collection models.Collection, change models.ChangeRecord) (models.Record, bool, error) {
	if change.LocalID != "" {
		local, err := r.records.Get(ctx, change.LocalID)
		switch {
		case err == nil && local.Collection == collection:
			return local, true, nil
		case err != nil && !errors.Is(err, store.ErrRecordNotFound):
			return models.Record{}, false, err
		}
	}

	if change.ID == "" {
		return models.Record{}, false, nil
	}

	local, err := r.records.GetByServerID(ctx, collection, change.ID)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.Record{}, false, nil
	}
	if err != nil {
		return models.Record{}, false, err
	}
	return local, true, nil
}

func (r *conflictResolver) ResolveConflicts(conflicts []models.Conflict) []models.Resolution {
	resolutions := make([]models.Resolution, 0, len(conflicts))
	for _, c := range conflicts {
		resolutions = append(resolutions, resolve(c, r.StrategyFor(c.Collection)))
	}
	return resolutions
}

// resolve applies strategy to a single conflict.
func resolve(c models.Conflict, strategy models.Strategy) models.Resolution {
	var res models.Resolution
	switch strategy {
	case models.StrategyServerWins:
		res = serverWins(c)
	case models.StrategyClientWins:
		res = clientWins(c)
	case models.StrategyManual:
		res = models.Resolution{Outcome: models.OutcomeManual, Record: c.Local.Clone()}
	case models.StrategyMerge:
		if c.Local.IsDeleted || c.Server.Deleted {
			res = lastWriteWins(c)
		} else {
			res = merge(c)
		}
	default:
		res = lastWriteWins(c)
	}

	res.Collection = c.Collection
	res.Strategy = strategy
	res.Server = c.Server
	res.HadLocal = true
	res.BaseModified = c.Local.LastModified
	return res
}

func serverWins(c models.Conflict) models.Resolution {
	return acceptServer(c.Collection, c.Server, c.Local, true)
}

// clientWins keeps the local intent pending. A record deleted on the server
// loses its server id so the next push re-creates it.
func clientWins(c models.Conflict) models.Resolution {
	record := c.Local.Clone()
	record.SyncStatus = models.SyncStatusPending
	record.RejectReason = nil

	if c.Server.Deleted {
		record.ServerID = nil
		record.ServerUpdatedAt = nil
		record.BaseFields = nil
	} else {
		if c.Server.ID != "" {
			record.ServerID = models.StringPtr(c.Server.ID)
		}
		record.ServerUpdatedAt = models.TimePtr(c.Server.UpdatedTime())
		record.BaseFields = serverBase(c.Server)
	}

	return models.Resolution{Outcome: models.OutcomeLocal, Record: record}
}

// lastWriteWins keeps the strictly later side; a tie goes to the server.
func lastWriteWins(c models.Conflict) models.Resolution {
	if localIsNewer(c) {
		return clientWins(c)
	}
	return serverWins(c)
}

func localIsNewer(c models.Conflict) bool {
	return c.Local.LastModified.After(c.Server.UpdatedTime())
}

func merge(c models.Conflict) models.Resolution {
	fields := mergeFields(c.Collection, c.Local.Fields, c.Server.Fields, localIsNewer(c))

	if fields.Equal(nonNil(c.Server.Fields)) {
		return serverWins(c)
	}

	record := c.Local.Clone()
	record.Fields = fields
	record.SyncStatus = models.SyncStatusPending
	record.RejectReason = nil
	if c.Server.ID != "" {
		record.ServerID = models.StringPtr(c.Server.ID)
	}
	record.ServerUpdatedAt = models.TimePtr(c.Server.UpdatedTime())
	record.BaseFields = serverBase(c.Server)

	return models.Resolution{Outcome: models.OutcomeMerged, Record: record}
}

// acceptServer adopts the server version. Without a local record the
// resulting record has no LocalID yet; one is assigned when it is applied.
func acceptServer(collection models.Collection, change models.ChangeRecord, local models.Record, hadLocal bool) models.Resolution {
	res := models.Resolution{
		Collection: collection,
		Server:     change,
		HadLocal:   hadLocal,
	}
	if hadLocal {
		res.BaseModified = local.LastModified
	}

	if change.Deleted {
		res.Outcome = models.OutcomeDelete
		res.Record = local.Clone()
		return res
	}

	updatedAt := change.UpdatedTime()
	record := models.Record{
		LocalID:         local.LocalID,
		Collection:      collection,
		ServerID:        models.StringPtr(change.ID),
		SyncStatus:      models.SyncStatusSynced,
		LastModified:    updatedAt,
		ServerUpdatedAt: models.TimePtr(updatedAt),
		Fields:          change.Fields.Clone(),
		BaseFields:      serverBase(change),
		CreatedAt:       local.CreatedAt,
	}
	if local.LastModified.After(record.LastModified) {
		record.LastModified = local.LastModified
	}
	if record.Fields == nil {
		record.Fields = models.Fields{}
	}

	res.Outcome = models.OutcomeServer
	res.Record = record
	return res
}

// acknowledged reports whether change is a server version this replica has
// already seen, typically the echo of its own accepted push.
func acknowledged(local models.Record, change models.ChangeRecord) bool {
	if change.Deleted || local.ServerUpdatedAt == nil || change.UpdatedAt <= 0 {
		return false
	}
	return !change.UpdatedTime().After(*local.ServerUpdatedAt)
}

// sameContent reports whether the local intent already equals the server
// version, so a round-trip never re-flags a conflict.
func sameContent(local models.Record, change models.ChangeRecord) bool {
	if local.IsDeleted != change.Deleted {
		return false
	}
	if local.IsDeleted {
		return true
	}

	localHash, err := nonNil(local.Fields).Hash()
	if err != nil {
		return false
	}
	serverHash, err := nonNil(change.Fields).Hash()
	if err != nil {
		return false
	}
	return localHash == serverHash
}

func markIdentical(collection models.Collection, change models.ChangeRecord, local models.Record) models.Resolution {
	record := local.Clone()
	record.SyncStatus = models.SyncStatusSynced
	record.RejectReason = nil
	record.Deferred = false
	record.NeedsReview = false
	if change.ID != "" {
		record.ServerID = models.StringPtr(change.ID)
	}
	record.ServerUpdatedAt = models.TimePtr(change.UpdatedTime())
	record.BaseFields = serverBase(change)

	return models.Resolution{
		Collection:   collection,
		Outcome:      models.OutcomeSynced,
		Record:       record,
		Server:       change,
		HadLocal:     true,
		BaseModified: local.LastModified,
	}
}

func serverBase(change models.ChangeRecord) models.Fields {
	return nonNil(change.Fields).Clone()
}

func nonNil(f models.Fields) models.Fields {
	if f == nil {
		return models.Fields{}
	}
	return f
}
