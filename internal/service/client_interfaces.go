// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/resto-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SyncQueue tracks local mutations awaiting the server. Records stay the
// source of truth; queue entries are projections built at collection time.
type SyncQueue interface {
	// Enqueue stamps each record with a strictly increasing LastModified,
	// marks it pending and persists it. Records without a LocalID receive a
	// new UUIDv7. Past MaxQueueSize records are stored deferred, never
	// dropped. Returns the stored records.
	Enqueue(ctx context.Context, records ...models.Record) ([]models.Record, error)

	// CollectPending releases deferred records when capacity allows, flags
	// stale entries and returns the pushable entries of the given
	// collections (all when empty). Records created and deleted before ever
	// reaching the server are removed here.
	CollectPending(ctx context.Context, collections []models.Collection) (models.PendingChanges, error)

	// MarkSynced records the server acknowledgement of a pushed record. The
	// status flips only if the record is still syncing with the snapshot
	// LastModified; otherwise only the server id is kept. acked becomes the
	// record's base server version either way. Acknowledged soft deletes are
	// removed physically.
	MarkSynced(ctx context.Context, localID, serverID string, serverUpdatedAt *time.Time, acked models.Fields, snapshot time.Time) (bool, error)

	// MarkRejected moves the record to conflict, keeps its data and opens a
	// rejected conflict for the operator.
	MarkRejected(ctx context.Context, localID, reason string) error

	Stats(ctx context.Context) (models.QueueStats, error)

	// OnPressure registers fn for queue pressure changes at or above the
	// warning level and returns a function that removes it.
	OnPressure(fn func(models.QueuePressure)) (unsubscribe func())

	// Cleanup purges synced residue: acknowledged tombstones, resolved
	// conflicts and bookkeeping rows beyond their retention.
	Cleanup(ctx context.Context) (models.QueueCleanup, error)

	// Events returns the newest queue events first.
	Events(ctx context.Context, limit uint64) ([]models.QueueEvent, error)
}

// ConflictResolver decides what happens to local records when server changes
// arrive.
type ConflictResolver interface {
	// DetectConflicts splits server changes into conflicts with local intent
	// and directly accepted changes. A failed local lookup accepts the server
	// version.
	DetectConflicts(ctx context.Context, changes models.ChangeSet) (models.DetectionResult, error)

	// ResolveConflicts applies the configured strategy to each conflict. It
	// is a pure function of its input.
	ResolveConflicts(conflicts []models.Conflict) []models.Resolution

	// StrategyFor returns the strategy configured for collection.
	StrategyFor(collection models.Collection) models.Strategy
}

// Recovery classifies failures and retries operations.
type Recovery interface {
	Classify(err error) models.SyncError
	// Recover tries to make a failed operation retryable: it refreshes
	// credentials after auth failures and waits for connectivity after
	// network failures.
	Recover(ctx context.Context, err error) error
	Backoff(attempt int) time.Duration
	// Do runs op until it succeeds, fails with a non-retryable error or the
	// retry budget is spent.
	Do(ctx context.Context, op func(ctx context.Context) error) error
}

// CredentialRefresher obtains a fresh bearer credential.
type CredentialRefresher interface {
	Refresh(ctx context.Context) error
}

// NetworkMonitor is the view of the connectivity monitor the sync engine
// depends on.
type NetworkMonitor interface {
	GetState() models.NetworkState
	TestConnectivity(ctx context.Context, url string) bool
	WaitForConnection(ctx context.Context, timeout time.Duration) bool
	Subscribe(buffer int) (<-chan models.NetworkEvent, func())
}

// SyncOrchestrator runs sync cycles and exposes the operator surface.
type SyncOrchestrator interface {
	// Sync runs one cycle. A non-forced call while a cycle runs returns
	// ErrSyncInProgress; a forced call waits for it.
	Sync(ctx context.Context, opts models.SyncOptions) (models.SyncLog, error)
	State() models.SyncState

	ResolveManual(ctx context.Context, localID string, choice models.ManualChoice) error
	ListConflicts(ctx context.Context) ([]models.OpenConflict, error)
	LastSuccessfulSync(ctx context.Context) (models.SyncLog, error)
	History(ctx context.Context, limit uint64) ([]models.SyncLog, error)

	// OnNotification registers fn for cycle outcomes that need attention.
	OnNotification(fn func(models.Notification)) (unsubscribe func())

	// Start listens for stable reconnects and queue pressure and starts
	// non-forced syncs on them. Stop ends it.
	Start(ctx context.Context)
	Stop()
}

// ClientSyncJob periodically starts non-forced syncs.
type ClientSyncJob interface {
	// Start launches the ticker. Interval defaults to 5 minutes. A running
	// job is stopped first.
	Start(ctx context.Context, trigger models.SyncTrigger, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
