// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/resto-sync/internal/logger"
	"github.com/MKhiriev/resto-sync/internal/store"
	"github.com/MKhiriev/resto-sync/internal/utils"
	"github.com/MKhiriev/resto-sync/internal/validators"
	"github.com/MKhiriev/resto-sync/models"
)

// anonymousDevice owns writes made while authentication is disabled.
const anonymousDevice = "anonymous"

// defaultPullLimit caps a pull page when the client does not ask for one.
const defaultPullLimit = 500

// syncService is the reference implementation of the pull/push contract on
// top of a RemoteRepository.
type syncService struct {
	remote    store.RemoteRepository
	validator validators.Validator
	ids       utils.IDGenerator

	logger *logger.Logger
}

func NewSyncService(remote store.RemoteRepository, logger *logger.Logger) SyncService {
	return &syncService{
		remote:    remote,
		validator: validators.NewChangeValidator(),
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

// Pull implements SyncService. Rows created after the watermark are
// reported as created, other live rows as updated.
func (s *syncService) Pull(ctx context.Context, request models.PullRequest) (models.PullResponse, error) {
	log := logger.FromContext(ctx)

	limit := request.Limit
	if limit <= 0 {
		limit = defaultPullLimit
	}

	page, err := s.remote.ChangesSince(ctx, request.LastPulledAt, limit)
	if err != nil {
		log.Err(err).Str("func", "syncService.Pull").Int64("since", request.LastPulledAt).Msg("failed to read changes")
		return models.PullResponse{}, err
	}

	changes := make(models.ChangeSet)
	for _, row := range page.Rows {
		switch {
		case row.Deleted:
			changes.Add(row.Collection, models.OperationDeleted, row.Change())
		case row.CreatedAt > request.LastPulledAt:
			changes.Add(row.Collection, models.OperationCreated, row.Change())
		default:
			changes.Add(row.Collection, models.OperationUpdated, row.Change())
		}
	}

	log.Debug().
		Str("func", "syncService.Pull").
		Int64("since", request.LastPulledAt).
		Int("changes", len(page.Rows)).
		Bool("has_more", page.HasMore).
		Msg("pull served")

	return models.PullResponse{
		Changes:   changes,
		Timestamp: page.Timestamp,
		HasMore:   page.HasMore,
	}, nil
}

// Push implements SyncService. Each change is accepted, rejected or
// reported as a conflict; an update or delete conflicts when another device
// wrote the row after the client's last pull.
func (s *syncService) Push(ctx context.Context, request models.PushRequest) (models.PushResponse, error) {
	log := logger.FromContext(ctx)

	device, ok := utils.GetDeviceIDFromContext(ctx)
	if !ok {
		device = anonymousDevice
	}

	response := models.PushResponse{
		Accepted:  []models.PushAccepted{},
		Rejected:  []models.PushRejected{},
		Conflicts: []models.PushConflict{},
	}

	for _, collection := range request.Changes.Collections() {
		bucket := request.Changes[collection]
		ops := []struct {
			op   models.Operation
			list []models.ChangeRecord
		}{
			{models.OperationCreated, bucket.Created},
			{models.OperationUpdated, bucket.Updated},
			{models.OperationDeleted, bucket.Deleted},
		}

		for _, group := range ops {
			for _, change := range group.list {
				if err := ctx.Err(); err != nil {
					return models.PushResponse{}, err
				}

				err := s.validator.Validate(ctx, validators.Change{
					Collection: collection,
					Operation:  group.op,
					Record:     change,
				})
				if err != nil {
					response.Rejected = append(response.Rejected, models.PushRejected{
						Collection: collection,
						LocalID:    change.LocalID,
						Reason:     err.Error(),
					})
					continue
				}

				if err = s.pushOne(ctx, device, request.LastPulledAt, collection, group.op, change, &response); err != nil {
					log.Err(err).
						Str("func", "syncService.Push").
						Str("collection", string(collection)).
						Str("local_id", change.LocalID).
						Msg("failed to apply change")
					return models.PushResponse{}, err
				}
			}
		}
	}

	log.Info().
		Str("func", "syncService.Push").
		Str("device", device).
		Int("accepted", len(response.Accepted)).
		Int("rejected", len(response.Rejected)).
		Int("conflicts", len(response.Conflicts)).
		Msg("push served")

	return response, nil
}

func (s *syncService) pushOne(ctx context.Context, device string, lastPulledAt int64, collection models.Collection, op models.Operation, change models.ChangeRecord, response *models.PushResponse) error {
	accept := func(row store.RemoteRow) {
		response.Accepted = append(response.Accepted, models.PushAccepted{
			Collection: collection,
			LocalID:    change.LocalID,
			ServerID:   row.ID,
			UpdatedAt:  row.UpdatedAt,
		})
	}

	if op == models.OperationCreated {
		// a retried push of the same create returns the first result
		existing, err := s.remote.FindByOrigin(ctx, collection, device, change.LocalID)
		if err == nil {
			accept(existing)
			return nil
		}
		if !errors.Is(err, store.ErrRemoteRecordNotFound) {
			return err
		}

		row, err := s.remote.Save(ctx, store.RemoteRow{
			Collection:   collection,
			ID:           s.ids.Generate(),
			LocalID:      change.LocalID,
			OriginDevice: device,
			LastWriter:   device,
			Fields:       change.Fields,
		})
		if err != nil {
			return err
		}
		accept(row)
		return nil
	}

	row, err := s.remote.Get(ctx, collection, change.ID)
	if errors.Is(err, store.ErrRemoteRecordNotFound) {
		if op == models.OperationDeleted {
			accept(store.RemoteRow{ID: change.ID})
			return nil
		}
		response.Rejected = append(response.Rejected, models.PushRejected{
			Collection: collection,
			LocalID:    change.LocalID,
			Reason:     fmt.Sprintf("record %s does not exist", change.ID),
		})
		return nil
	}
	if err != nil {
		return err
	}

	if op == models.OperationDeleted && row.Deleted {
		accept(row)
		return nil
	}

	if row.Deleted || (row.UpdatedAt > lastPulledAt && row.LastWriter != device) {
		response.Conflicts = append(response.Conflicts, models.PushConflict{
			Collection: collection,
			LocalID:    change.LocalID,
			ServerData: row.Change(),
		})
		return nil
	}

	row.LastWriter = device
	if op == models.OperationDeleted {
		row.Deleted = true
	} else {
		row.Fields = change.Fields
	}

	saved, err := s.remote.Save(ctx, row)
	if err != nil {
		return err
	}
	accept(saved)
	return nil
}
