// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/resto-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Transactor runs a function inside one database transaction. Repository
// calls made with the context handed to fn join that transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// RecordRepository is the local replica of synchronized records.
type RecordRepository interface {
	Get(ctx context.Context, localID string) (models.Record, error)
	GetByServerID(ctx context.Context, collection models.Collection, serverID string) (models.Record, error)
	Save(ctx context.Context, records ...models.Record) error
	Delete(ctx context.Context, localIDs ...string) error
	List(ctx context.Context, filter RecordFilter) ([]models.Record, error)
	Count(ctx context.Context, filter RecordFilter) (int, error)
	Stats(ctx context.Context) (models.QueueStats, error)
	SetStatus(ctx context.Context, from, to models.SyncStatus, localIDs ...string) (int64, error)
	ResetSyncing(ctx context.Context) (int64, error)
	MarkSynced(ctx context.Context, localID, serverID string, serverUpdatedAt *time.Time, acked models.Fields, snapshot time.Time) (bool, error)
	MarkRejected(ctx context.Context, localID, reason string) error
	SetDeferred(ctx context.Context, deferred bool, localIDs ...string) error
	SetNeedsReview(ctx context.Context, needsReview bool, localIDs ...string) error
	PurgeSyncedTombstones(ctx context.Context) (int64, error)
}

// SyncStateRepository stores small key/value sync bookkeeping such as the
// pull cursor.
type SyncStateRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// SyncLogRepository is the append-only sync history.
type SyncLogRepository interface {
	Create(ctx context.Context, entry models.SyncLog) (int64, error)
	Finalize(ctx context.Context, entry models.SyncLog) error
	Get(ctx context.Context, id int64) (models.SyncLog, error)
	LastSuccessful(ctx context.Context) (models.SyncLog, error)
	List(ctx context.Context, limit uint64) ([]models.SyncLog, error)
	Purge(ctx context.Context, keep int) (int64, error)
}

// ConflictRepository persists conflicts awaiting an operator.
type ConflictRepository interface {
	Open(ctx context.Context, conflict models.OpenConflict) error
	GetOpen(ctx context.Context, localID string) (models.OpenConflict, error)
	ListOpen(ctx context.Context) ([]models.OpenConflict, error)
	OpenLocalIDs(ctx context.Context) (map[string]struct{}, error)
	Resolve(ctx context.Context, localID string, at time.Time) error
	PurgeResolved(ctx context.Context) (int64, error)
}

type QueueEventRepository interface {
	Add(ctx context.Context, event models.QueueEvent) error
	List(ctx context.Context, limit uint64) ([]models.QueueEvent, error)
	Purge(ctx context.Context, keep int) (int64, error)
}

type NetworkEventRepository interface {
	Add(ctx context.Context, event models.NetworkEvent) error
	List(ctx context.Context, limit uint64) ([]models.NetworkEvent, error)
	LastOf(ctx context.Context, eventType models.NetworkEventType) (models.NetworkEvent, error)
	Purge(ctx context.Context, keep int) (int64, error)
}

// RemoteRepository is the authoritative store of the reference sync server.
type RemoteRepository interface {
	Get(ctx context.Context, collection models.Collection, id string) (RemoteRow, error)
	FindByOrigin(ctx context.Context, collection models.Collection, device, localID string) (RemoteRow, error)
	Save(ctx context.Context, row RemoteRow) (RemoteRow, error)
	ChangesSince(ctx context.Context, since int64, limit int) (RemoteChanges, error)
	Now() int64
}
