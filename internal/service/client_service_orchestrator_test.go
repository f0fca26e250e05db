// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"math/rand"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/resto-sync/internal/adapter"
	"github.com/MKhiriev/resto-sync/internal/config"
	"github.com/MKhiriev/resto-sync/internal/logger"
	"github.com/MKhiriev/resto-sync/internal/mock"
	"github.com/MKhiriev/resto-sync/internal/store"
	"github.com/MKhiriev/resto-sync/models"
)

// fakeMonitor is a scriptable NetworkMonitor.
type fakeMonitor struct {
	mu        sync.Mutex
	connected bool
	reachable bool
	events    chan models.NetworkEvent
}

func newFakeMonitor(online bool) *fakeMonitor {
	return &fakeMonitor{
		connected: online,
		reachable: online,
		events:    make(chan models.NetworkEvent, 4),
	}
}

func (m *fakeMonitor) GetState() models.NetworkState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return models.NetworkState{Connected: m.connected, Reachable: m.reachable}
}

func (m *fakeMonitor) TestConnectivity(context.Context, string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reachable
}

func (m *fakeMonitor) WaitForConnection(context.Context, time.Duration) bool {
	return m.GetState().Connected
}

func (m *fakeMonitor) Subscribe(int) (<-chan models.NetworkEvent, func()) {
	return m.events, func() {}
}

type orchestratorFixture struct {
	orch     *syncOrchestrator
	queue    *syncQueue
	storages *store.ClientStorages
	adapter  *mock.MockSyncAdapter
	monitor  *fakeMonitor
	clock    *fakeClock
}

func newTestOrchestrator(t *testing.T, syncCfg config.ClientSync) *orchestratorFixture {
	t.Helper()

	storages := newTestStorages(t)
	clock := newFakeClock(baseTime)
	monitor := newFakeMonitor(true)

	q := NewSyncQueue(storages, syncCfg, logger.Nop()).(*syncQueue)
	q.now = clock.Now
	q.ids = &seqIDs{prefix: "local-"}

	resolver, err := NewConflictResolver(storages.Records, syncCfg, logger.Nop())
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	syncAdapter := mock.NewMockSyncAdapter(ctrl)

	cfg := &config.ClientConfig{Sync: syncCfg}
	cfg.App.SchemaVersion = 1

	o := NewSyncOrchestrator(OrchestratorDeps{
		Storages: storages,
		Queue:    q,
		Resolver: resolver,
		Recovery: NewRecoveryService(syncCfg, nil, monitor, logger.Nop()),
		Adapter:  syncAdapter,
		Monitor:  monitor,
	}, cfg, logger.Nop()).(*syncOrchestrator)
	o.now = clock.Now
	o.ids = &seqIDs{prefix: "gen-"}

	return &orchestratorFixture{
		orch:     o,
		queue:    q,
		storages: storages,
		adapter:  syncAdapter,
		monitor:  monitor,
		clock:    clock,
	}
}

// notifications collects everything the orchestrator emits.
func (f *orchestratorFixture) notifications() *[]models.Notification {
	var (
		mu  sync.Mutex
		got []models.Notification
	)
	f.orch.OnNotification(func(n models.Notification) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, n)
	})
	return &got
}

func (f *orchestratorFixture) expectEmptyPull() {
	f.adapter.EXPECT().Pull(gomock.Any(), gomock.Any()).Return(models.PullResponse{}, nil)
}

func (f *orchestratorFixture) cursor(t *testing.T) string {
	t.Helper()
	v, err := f.storages.SyncState.Get(testContext(), store.CursorKey)
	require.NoError(t, err)
	return v
}

func pullPage(ts int64, hasMore bool, changes ...models.ChangeRecord) models.PullResponse {
	cs := models.ChangeSet{}
	for _, c := range changes {
		cs.Add(models.CollectionOrders, models.OperationCreated, c)
	}
	return models.PullResponse{Changes: cs, Timestamp: ts, HasMore: hasMore}
}

// ── Sync: pull ──────────────────────────────────────────────────────

func TestSyncOrchestrator_PullAppliesServerChanges(t *testing.T) {
	f := newTestOrchestrator(t, testSyncConfig())
	got := f.notifications()
	ctx := testContext()

	ts := baseTime.UnixMilli()
	f.adapter.EXPECT().Pull(gomock.Any(), models.PullRequest{LastPulledAt: 0, SchemaVersion: 1, Limit: 50}).
		Return(pullPage(ts, false, serverChange("srv-1", baseTime, order("open", 5))), nil)

	entry, err := f.orch.Sync(ctx, models.SyncOptions{})
	require.NoError(t, err)

	assert.Equal(t, models.SyncLogCompleted, entry.Status)
	assert.Equal(t, models.SyncTypeFull, entry.Type)
	assert.Equal(t, models.TriggerManual, entry.Trigger)
	assert.Equal(t, 1, entry.Pulled)
	assert.Zero(t, entry.Pushed)
	assert.Equal(t, models.SyncStateIdle, f.orch.State())

	r, err := f.storages.Records.GetByServerID(ctx, models.CollectionOrders, "srv-1")
	require.NoError(t, err)
	assert.Equal(t, "gen-1", r.LocalID)
	assert.Equal(t, models.SyncStatusSynced, r.SyncStatus)
	assert.Equal(t, "open", r.Fields["status"])
	assert.Equal(t, baseTime, r.CreatedAt)

	assert.Equal(t, strconv.FormatInt(ts, 10), f.cursor(t))

	last, err := f.orch.LastSuccessfulSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, last.ID)

	assert.Empty(t, *got, "a clean cycle notifies nobody")
}

func TestSyncOrchestrator_PullPages(t *testing.T) {
	f := newTestOrchestrator(t, testSyncConfig())

	gomock.InOrder(
		f.adapter.EXPECT().Pull(gomock.Any(), models.PullRequest{LastPulledAt: 0, SchemaVersion: 1, Limit: 50}).
			Return(pullPage(100, true, serverChange("srv-1", baseTime, order("open", 1))), nil),
		f.adapter.EXPECT().Pull(gomock.Any(), models.PullRequest{LastPulledAt: 100, SchemaVersion: 1, Limit: 50}).
			Return(pullPage(200, false, serverChange("srv-2", baseTime, order("open", 2))), nil),
	)

	entry, err := f.orch.Sync(testContext(), models.SyncOptions{Type: models.SyncTypePull})
	require.NoError(t, err)

	assert.Equal(t, 2, entry.Pulled)
	assert.Equal(t, "200", f.cursor(t))
}

func TestSyncOrchestrator_PullStopsWhenCursorStalls(t *testing.T) {
	f := newTestOrchestrator(t, testSyncConfig())

	f.adapter.EXPECT().Pull(gomock.Any(), gomock.Any()).
		Return(pullPage(0, true), nil).
		Times(1)

	_, err := f.orch.Sync(testContext(), models.SyncOptions{Type: models.SyncTypePull})
	require.NoError(t, err)
}

func TestSyncOrchestrator_PullUpdatesRecordFromEarlierPage(t *testing.T) {
	f := newTestOrchestrator(t, testSyncConfig())

	gomock.InOrder(
		f.adapter.EXPECT().Pull(gomock.Any(), gomock.Any()).
			Return(pullPage(100, true, serverChange("srv-1", baseTime, order("open", 1))), nil),
		f.adapter.EXPECT().Pull(gomock.Any(), gomock.Any()).
			Return(pullPage(200, false, serverChange("srv-1", baseTime.Add(time.Minute), order("paid", 1))), nil),
	)

	_, err := f.orch.Sync(testContext(), models.SyncOptions{Type: models.SyncTypePull})
	require.NoError(t, err)

	records, err := f.storages.Records.List(testContext(), store.RecordFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "paid", records[0].Fields["status"])
}

// ── Sync: push ──────────────────────────────────────────────────────

func TestSyncOrchestrator_PushAcceptedAndRejected(t *testing.T) {
	f := newTestOrchestrator(t, testSyncConfig())
	got := f.notifications()
	ctx := testContext()

	_, err := f.queue.Enqueue(ctx,
		models.Record{LocalID: "o-a", Collection: models.CollectionOrders, Fields: order("open", 1)},
		models.Record{LocalID: "o-b", Collection: models.CollectionOrders, Fields: order("open", -1)},
	)
	require.NoError(t, err)

	f.expectEmptyPull()
	f.adapter.EXPECT().Push(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.PushRequest) (models.PushResponse, error) {
			assert.Len(t, req.Changes[models.CollectionOrders].Created, 2)
			assert.Equal(t, models.SyncStatusSyncing, getRecord(t, f.storages, "o-a").SyncStatus)

			return models.PushResponse{
				Accepted: []models.PushAccepted{{
					Collection: models.CollectionOrders, LocalID: "o-a", ServerID: "srv-a",
					UpdatedAt: baseTime.Add(time.Second).UnixMilli(),
				}},
				Rejected: []models.PushRejected{{
					Collection: models.CollectionOrders, LocalID: "o-b", Reason: "total must be positive",
				}},
				Conflicts: []models.PushConflict{},
			}, nil
		})

	entry, err := f.orch.Sync(ctx, models.SyncOptions{Trigger: models.TriggerForeground})
	require.NoError(t, err)

	assert.Equal(t, models.SyncLogCompleted, entry.Status)
	assert.Equal(t, 1, entry.Pushed)
	assert.Equal(t, 1, entry.Rejected)
	require.Len(t, entry.Errors, 1)
	assert.Equal(t, models.ErrorCodeValidation, entry.Errors[0].Code)

	a := getRecord(t, f.storages, "o-a")
	assert.Equal(t, models.SyncStatusSynced, a.SyncStatus)
	assert.Equal(t, "srv-a", a.ServerIDValue())
	require.NotNil(t, a.ServerUpdatedAt)
	assert.Equal(t, baseTime.Add(time.Second), *a.ServerUpdatedAt)

	b := getRecord(t, f.storages, "o-b")
	assert.Equal(t, models.SyncStatusConflict, b.SyncStatus)
	require.NotNil(t, b.RejectReason)
	assert.Equal(t, "total must be positive", *b.RejectReason)

	open, err := f.orch.ListConflicts(ctx)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, models.ConflictReasonRejected, open[0].Reason)

	require.Len(t, *got, 1)
	n := (*got)[0]
	assert.Equal(t, models.NotificationWarning, n.Level)
	assert.Equal(t, entry.ID, n.SyncLogID)
	assert.Equal(t, 1, n.Rejected)
	assert.False(t, n.Failed)
}

func TestSyncOrchestrator_PushUnmentionedGoBackToPending(t *testing.T) {
	f := newTestOrchestrator(t, testSyncConfig())
	ctx := testContext()

	_, err := f.queue.Enqueue(ctx, models.Record{LocalID: "o-1", Collection: models.CollectionOrders, Fields: order("open", 1)})
	require.NoError(t, err)

	f.expectEmptyPull()
	f.adapter.EXPECT().Push(gomock.Any(), gomock.Any()).Return(models.PushResponse{}, nil)

	_, err = f.orch.Sync(ctx, models.SyncOptions{})
	require.NoError(t, err)

	assert.Equal(t, models.SyncStatusPending, getRecord(t, f.storages, "o-1").SyncStatus)
}

func TestSyncOrchestrator_PushConflictResolvedByStrategy(t *testing.T) {
	f := newTestOrchestrator(t, testSyncConfig())
	ctx := testContext()

	_, err := f.queue.Enqueue(ctx, models.Record{LocalID: "o-1", Collection: models.CollectionOrders, Fields: order("open", 1)})
	require.NoError(t, err)

	f.expectEmptyPull()
	f.adapter.EXPECT().Push(gomock.Any(), gomock.Any()).Return(models.PushResponse{
		Conflicts: []models.PushConflict{{
			Collection: models.CollectionOrders,
			LocalID:    "o-1",
			ServerData: serverChange("srv-1", baseTime.Add(time.Hour), order("void", 0)),
		}},
	}, nil)

	entry, err := f.orch.Sync(ctx, models.SyncOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, entry.ConflictsResolved)
	assert.Zero(t, entry.Pushed)

	r := getRecord(t, f.storages, "o-1")
	assert.Equal(t, models.SyncStatusSynced, r.SyncStatus)
	assert.Equal(t, "srv-1", r.ServerIDValue())
	assert.Equal(t, "void", r.Fields["status"])
}

func TestSyncOrchestrator_LocalEditSurvivesPullAndIsPushed(t *testing.T) {
	f := newTestOrchestrator(t, testSyncConfig())
	ctx := testContext()

	// локальная правка новее серверной
	seedRecord(t, f.storages, models.Record{
		LocalID: "o-1", Collection: models.CollectionOrders,
		ServerID: models.StringPtr("srv-1"), SyncStatus: models.SyncStatusPending,
		LastModified: baseTime.Add(2 * time.Hour), Fields: order("open", 15),
	})

	serverAt := baseTime.Add(time.Hour)
	update := models.ChangeSet{}
	update.Add(models.CollectionOrders, models.OperationUpdated, serverChange("srv-1", serverAt, order("open", 10)))
	f.adapter.EXPECT().Pull(gomock.Any(), gomock.Any()).
		Return(models.PullResponse{Changes: update, Timestamp: serverAt.UnixMilli()}, nil)

	f.adapter.EXPECT().Push(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.PushRequest) (models.PushResponse, error) {
			assert.Equal(t, serverAt.UnixMilli(), req.LastPulledAt)
			updated := req.Changes[models.CollectionOrders].Updated
			require.Len(t, updated, 1)
			assert.Equal(t, "srv-1", updated[0].ID)
			assert.Equal(t, 15.0, updated[0].Fields["total"])

			return models.PushResponse{Accepted: []models.PushAccepted{{
				Collection: models.CollectionOrders, LocalID: "o-1", ServerID: "srv-1",
			}}}, nil
		})

	entry, err := f.orch.Sync(ctx, models.SyncOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, entry.Pulled)
	assert.Equal(t, 1, entry.Pushed)
	assert.Equal(t, 1, entry.ConflictsResolved)

	r := getRecord(t, f.storages, "o-1")
	assert.Equal(t, models.SyncStatusSynced, r.SyncStatus)
	assert.Equal(t, 15.0, r.Fields["total"])
}

func TestSyncOrchestrator_PushFailureReturnsBatchToPending(t *testing.T) {
	f := newTestOrchestrator(t, testSyncConfig())
	got := f.notifications()
	ctx := testContext()

	_, err := f.queue.Enqueue(ctx, models.Record{LocalID: "o-1", Collection: models.CollectionOrders, Fields: order("open", 1)})
	require.NoError(t, err)

	f.expectEmptyPull()
	f.adapter.EXPECT().Push(gomock.Any(), gomock.Any()).
		Return(models.PushResponse{}, adapter.ErrServiceUnavailable).
		Times(3)

	entry, err := f.orch.Sync(ctx, models.SyncOptions{})
	require.ErrorIs(t, err, ErrPushFailed)
	assert.ErrorIs(t, err, adapter.ErrServiceUnavailable)

	assert.Equal(t, models.SyncLogFailed, entry.Status)
	require.NotEmpty(t, entry.Errors)
	last := entry.Errors[len(entry.Errors)-1]
	assert.Equal(t, models.ErrorCodeServer, last.Code)
	assert.True(t, last.Retryable)

	assert.Equal(t, models.SyncStatusPending, getRecord(t, f.storages, "o-1").SyncStatus)
	assert.Equal(t, models.SyncStateIdle, f.orch.State())

	require.Len(t, *got, 1)
	assert.Equal(t, models.NotificationError, (*got)[0].Level)
	assert.True(t, (*got)[0].Failed)
}

// ── Sync: gating ────────────────────────────────────────────────────

func TestSyncOrchestrator_Offline(t *testing.T) {
	f := newTestOrchestrator(t, testSyncConfig())
	f.monitor.connected, f.monitor.reachable = false, false

	entry, err := f.orch.Sync(testContext(), models.SyncOptions{})
	require.ErrorIs(t, err, ErrOffline)

	assert.Equal(t, models.SyncLogFailed, entry.Status)
	require.Len(t, entry.Errors, 1)
	assert.Equal(t, models.ErrorCodeNetwork, entry.Errors[0].Code)

	history, err := f.orch.History(testContext(), 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, models.SyncLogFailed, history[0].Status)
	assert.NotNil(t, history[0].FinishedAt)
}

func TestSyncOrchestrator_InvalidType(t *testing.T) {
	f := newTestOrchestrator(t, testSyncConfig())

	_, err := f.orch.Sync(testContext(), models.SyncOptions{Type: "sideways"})
	assert.ErrorIs(t, err, ErrInvalidSyncType)
}

func TestSyncOrchestrator_SingleCycle(t *testing.T) {
	f := newTestOrchestrator(t, testSyncConfig())
	ctx := testContext()

	// a cycle is already running
	require.True(t, f.orch.sem.TryAcquire(1))

	_, err := f.orch.Sync(ctx, models.SyncOptions{})
	assert.ErrorIs(t, err, ErrSyncInProgress)

	f.expectEmptyPull()
	done := make(chan error, 1)
	go func() {
		_, err := f.orch.Sync(ctx, models.SyncOptions{Type: models.SyncTypePull, Force: true})
		done <- err
	}()

	select {
	case <-done:
		t.Fatal("forced sync must wait for the running cycle")
	case <-time.After(50 * time.Millisecond):
	}

	f.orch.sem.Release(1)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("forced sync never ran")
	}
}

// ── apply ───────────────────────────────────────────────────────────

func TestSyncOrchestrator_ApplyResolvesStaleResolutionAgain(t *testing.T) {
	f := newTestOrchestrator(t, testSyncConfig())
	ctx := testContext()

	// the record was edited after the resolution was computed
	seedRecord(t, f.storages, models.Record{
		LocalID: "o-1", Collection: models.CollectionOrders,
		ServerID: models.StringPtr("srv-1"), SyncStatus: models.SyncStatusPending,
		LastModified: baseTime.Add(time.Minute), Fields: order("open", 3),
	})

	serverAt := baseTime.Add(30 * time.Second)
	stale := models.Resolution{
		Collection: models.CollectionOrders,
		Strategy:   models.StrategyLastWriteWins,
		Outcome:    models.OutcomeServer,
		Record: models.Record{
			LocalID: "o-1", Collection: models.CollectionOrders,
			ServerID: models.StringPtr("srv-1"), SyncStatus: models.SyncStatusSynced,
			LastModified: serverAt, Fields: order("paid", 3), CreatedAt: baseTime,
		},
		Server:       serverChange("srv-1", serverAt, order("paid", 3)),
		HadLocal:     true,
		BaseModified: baseTime,
	}

	err := f.storages.Transactor.WithinTx(ctx, func(ctx context.Context) error {
		_, err := f.orch.apply(ctx, []models.Resolution{stale})
		return err
	})
	require.NoError(t, err)

	r := getRecord(t, f.storages, "o-1")
	assert.Equal(t, models.SyncStatusPending, r.SyncStatus)
	assert.Equal(t, "open", r.Fields["status"])
	require.NotNil(t, r.ServerUpdatedAt)
	assert.Equal(t, serverAt, *r.ServerUpdatedAt)
}

// ── manual conflicts ────────────────────────────────────────────────

func manualFixture(t *testing.T) *orchestratorFixture {
	t.Helper()

	cfg := testSyncConfig()
	cfg.DefaultStrategy = string(models.StrategyManual)
	f := newTestOrchestrator(t, cfg)

	seedRecord(t, f.storages, models.Record{
		LocalID: "o-1", Collection: models.CollectionOrders,
		ServerID: models.StringPtr("srv-1"), SyncStatus: models.SyncStatusPending,
		LastModified: baseTime, Fields: order("open", 1),
	})

	update := models.ChangeSet{}
	update.Add(models.CollectionOrders, models.OperationUpdated, serverChange("srv-1", baseTime.Add(time.Hour), order("paid", 2)))
	f.adapter.EXPECT().Pull(gomock.Any(), gomock.Any()).
		Return(models.PullResponse{Changes: update, Timestamp: baseTime.Add(time.Hour).UnixMilli()}, nil)

	return f
}

func TestSyncOrchestrator_ManualConflictIsPersisted(t *testing.T) {
	f := manualFixture(t)
	got := f.notifications()
	ctx := testContext()

	entry, err := f.orch.Sync(ctx, models.SyncOptions{Type: models.SyncTypePull})
	require.NoError(t, err)
	assert.Zero(t, entry.ConflictsResolved)

	r := getRecord(t, f.storages, "o-1")
	assert.Equal(t, models.SyncStatusConflict, r.SyncStatus)
	assert.Equal(t, "open", r.Fields["status"], "local data is untouched")

	open, err := f.orch.ListConflicts(ctx)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, models.ConflictReasonManual, open[0].Reason)
	assert.Equal(t, order("paid", 2), open[0].ServerFields)

	require.Len(t, *got, 1)
	assert.Equal(t, models.NotificationWarning, (*got)[0].Level)
	assert.Equal(t, 1, (*got)[0].ManualConflicts)
}

func TestSyncOrchestrator_ResolveManual_KeepServer(t *testing.T) {
	f := manualFixture(t)
	ctx := testContext()

	_, err := f.orch.Sync(ctx, models.SyncOptions{Type: models.SyncTypePull})
	require.NoError(t, err)

	require.NoError(t, f.orch.ResolveManual(ctx, "o-1", models.KeepServer))

	r := getRecord(t, f.storages, "o-1")
	assert.Equal(t, models.SyncStatusSynced, r.SyncStatus)
	assert.Equal(t, order("paid", 2), r.Fields)
	assert.Equal(t, baseTime.Add(time.Hour), r.LastModified)

	open, err := f.orch.ListConflicts(ctx)
	require.NoError(t, err)
	assert.Empty(t, open)
}

func TestSyncOrchestrator_ResolveManual_KeepLocal(t *testing.T) {
	f := manualFixture(t)
	ctx := testContext()

	_, err := f.orch.Sync(ctx, models.SyncOptions{Type: models.SyncTypePull})
	require.NoError(t, err)

	f.clock.Advance(2 * time.Hour)
	require.NoError(t, f.orch.ResolveManual(ctx, "o-1", models.KeepLocal))

	r := getRecord(t, f.storages, "o-1")
	assert.Equal(t, models.SyncStatusPending, r.SyncStatus)
	assert.Equal(t, order("open", 1), r.Fields)
	assert.Equal(t, baseTime.Add(2*time.Hour), r.LastModified)
	require.NotNil(t, r.ServerUpdatedAt)
	assert.Equal(t, baseTime.Add(time.Hour), *r.ServerUpdatedAt)

	// the record is pushable again
	pending, err := f.queue.CollectPending(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"o-1"}, entryIDs(pending))
}

func TestSyncOrchestrator_ResolveManual_Errors(t *testing.T) {
	f := newTestOrchestrator(t, testSyncConfig())
	ctx := testContext()

	assert.ErrorIs(t, f.orch.ResolveManual(ctx, "o-1", "flip_a_coin"), ErrInvalidChoice)
	assert.ErrorIs(t, f.orch.ResolveManual(ctx, "o-1", models.KeepLocal), ErrNoOpenConflict)
}

func TestSyncOrchestrator_ResolveManual_RejectedNeverAccepted(t *testing.T) {
	f := newTestOrchestrator(t, testSyncConfig())
	ctx := testContext()

	_, err := f.queue.Enqueue(ctx, models.Record{LocalID: "o-1", Collection: models.CollectionOrders, Fields: order("open", -1)})
	require.NoError(t, err)
	require.NoError(t, f.queue.MarkRejected(ctx, "o-1", "total must be positive"))

	require.NoError(t, f.orch.ResolveManual(ctx, "o-1", models.KeepServer))

	_, err = f.storages.Records.Get(ctx, "o-1")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

// pushAccepted syncs o-1 once so the server holds order("open", 1) at
// baseTime+1s.
func pushAccepted(t *testing.T, f *orchestratorFixture) time.Time {
	t.Helper()
	ctx := testContext()

	_, err := f.queue.Enqueue(ctx, models.Record{LocalID: "o-1", Collection: models.CollectionOrders, Fields: order("open", 1)})
	require.NoError(t, err)

	acceptedAt := baseTime.Add(time.Second)
	f.expectEmptyPull()
	f.adapter.EXPECT().Push(gomock.Any(), gomock.Any()).Return(models.PushResponse{
		Accepted: []models.PushAccepted{{
			Collection: models.CollectionOrders, LocalID: "o-1", ServerID: "srv-1",
			UpdatedAt: acceptedAt.UnixMilli(),
		}},
	}, nil)

	_, err = f.orch.Sync(ctx, models.SyncOptions{})
	require.NoError(t, err)

	r := getRecord(t, f.storages, "o-1")
	require.Equal(t, models.SyncStatusSynced, r.SyncStatus)
	require.True(t, r.BaseFields.Equal(order("open", 1)))
	return acceptedAt
}

func TestSyncOrchestrator_EchoOfAcceptedPushIsNotAConflict(t *testing.T) {
	cfg := testSyncConfig()
	cfg.DefaultStrategy = string(models.StrategyManual)
	f := newTestOrchestrator(t, cfg)
	ctx := testContext()

	acceptedAt := pushAccepted(t, f)

	f.clock.Advance(time.Minute)
	_, err := f.queue.Enqueue(ctx, models.Record{LocalID: "o-1", Collection: models.CollectionOrders, Fields: order("open", 2)})
	require.NoError(t, err)

	// the pull returns exactly what we pushed
	echo := models.ChangeSet{}
	echo.Add(models.CollectionOrders, models.OperationUpdated, serverChange("srv-1", acceptedAt, order("open", 1)))
	f.adapter.EXPECT().Pull(gomock.Any(), gomock.Any()).
		Return(models.PullResponse{Changes: echo, Timestamp: acceptedAt.UnixMilli()}, nil)

	f.adapter.EXPECT().Push(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.PushRequest) (models.PushResponse, error) {
			updated := req.Changes[models.CollectionOrders].Updated
			require.Len(t, updated, 1)
			assert.Equal(t, "srv-1", updated[0].ID)
			assert.Equal(t, 2.0, updated[0].Fields["total"])

			return models.PushResponse{Accepted: []models.PushAccepted{{
				Collection: models.CollectionOrders, LocalID: "o-1", ServerID: "srv-1",
				UpdatedAt: f.clock.Now().UnixMilli(),
			}}}, nil
		})

	entry, err := f.orch.Sync(ctx, models.SyncOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, entry.Pushed)
	assert.Zero(t, entry.ConflictsResolved)

	r := getRecord(t, f.storages, "o-1")
	assert.Equal(t, models.SyncStatusSynced, r.SyncStatus)
	assert.Equal(t, 2.0, r.Fields["total"])
	assert.True(t, r.BaseFields.Equal(order("open", 2)))

	open, err := f.orch.ListConflicts(ctx)
	require.NoError(t, err)
	assert.Empty(t, open)
}

func TestSyncOrchestrator_NewerServerVersionIsStillAConflict(t *testing.T) {
	cfg := testSyncConfig()
	cfg.DefaultStrategy = string(models.StrategyManual)
	f := newTestOrchestrator(t, cfg)
	ctx := testContext()

	acceptedAt := pushAccepted(t, f)

	f.clock.Advance(time.Minute)
	_, err := f.queue.Enqueue(ctx, models.Record{LocalID: "o-1", Collection: models.CollectionOrders, Fields: order("open", 2)})
	require.NoError(t, err)

	// другой терминал успел изменить заказ
	later := acceptedAt.Add(time.Second)
	update := models.ChangeSet{}
	update.Add(models.CollectionOrders, models.OperationUpdated, serverChange("srv-1", later, order("paid", 1)))
	f.adapter.EXPECT().Pull(gomock.Any(), gomock.Any()).
		Return(models.PullResponse{Changes: update, Timestamp: later.UnixMilli()}, nil)

	_, err = f.orch.Sync(ctx, models.SyncOptions{Type: models.SyncTypePull})
	require.NoError(t, err)

	open, err := f.orch.ListConflicts(ctx)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, models.ConflictReasonManual, open[0].Reason)
}

func TestSyncOrchestrator_ResolveRejected_KeepServerRestoresBase(t *testing.T) {
	f := newTestOrchestrator(t, testSyncConfig())
	ctx := testContext()

	acceptedAt := pushAccepted(t, f)

	f.clock.Advance(time.Minute)
	_, err := f.queue.Enqueue(ctx, models.Record{LocalID: "o-1", Collection: models.CollectionOrders, Fields: order("open", -1)})
	require.NoError(t, err)

	f.expectEmptyPull()
	f.adapter.EXPECT().Push(gomock.Any(), gomock.Any()).Return(models.PushResponse{
		Rejected: []models.PushRejected{{
			Collection: models.CollectionOrders, LocalID: "o-1", Reason: "total must be positive",
		}},
	}, nil)

	entry, err := f.orch.Sync(ctx, models.SyncOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, entry.Rejected)

	require.NoError(t, f.orch.ResolveManual(ctx, "o-1", models.KeepServer))

	r := getRecord(t, f.storages, "o-1")
	assert.Equal(t, models.SyncStatusSynced, r.SyncStatus)
	assert.True(t, r.Fields.Equal(order("open", 1)), "the rejected edit is discarded")
	assert.True(t, r.BaseFields.Equal(order("open", 1)))
	assert.Nil(t, r.RejectReason)
	require.NotNil(t, r.ServerUpdatedAt)
	assert.Equal(t, acceptedAt, *r.ServerUpdatedAt)

	pending, err := f.queue.CollectPending(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, pending.Entries)
}

func TestSyncOrchestrator_ResolveRejected_KeepServerWithoutBase(t *testing.T) {
	f := newTestOrchestrator(t, testSyncConfig())
	ctx := testContext()

	// строка из старой схемы: server_id есть, base_fields нет
	seedRecord(t, f.storages, models.Record{
		LocalID: "o-1", Collection: models.CollectionOrders,
		ServerID: models.StringPtr("srv-1"), SyncStatus: models.SyncStatusPending,
		LastModified: baseTime, Fields: order("open", -1),
	})
	require.NoError(t, f.queue.MarkRejected(ctx, "o-1", "total must be positive"))

	require.NoError(t, f.orch.ResolveManual(ctx, "o-1", models.KeepServer))

	r := getRecord(t, f.storages, "o-1")
	assert.Equal(t, models.SyncStatusPending, r.SyncStatus, "never claims a server copy it does not know")
	assert.Nil(t, r.RejectReason)

	open, err := f.orch.ListConflicts(ctx)
	require.NoError(t, err)
	assert.Empty(t, open)
}

// TestSyncOrchestrator_RandomSequences drives enqueue, push, reject and
// resolve in random order against a scripted server and checks that a
// synced record always carries its server id and the acknowledged fields.
func TestSyncOrchestrator_RandomSequences(t *testing.T) {
	f := newTestOrchestrator(t, testSyncConfig())
	ctx := testContext()
	rng := rand.New(rand.NewSource(42))

	f.adapter.EXPECT().Pull(gomock.Any(), gomock.Any()).Return(models.PullResponse{}, nil).AnyTimes()
	f.adapter.EXPECT().Push(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.PushRequest) (models.PushResponse, error) {
			var resp models.PushResponse
			bucket := req.Changes[models.CollectionOrders]
			for _, c := range append(append([]models.ChangeRecord{}, bucket.Created...), bucket.Updated...) {
				if total, _ := c.Fields["total"].(float64); total < 0 {
					resp.Rejected = append(resp.Rejected, models.PushRejected{
						Collection: models.CollectionOrders, LocalID: c.LocalID, Reason: "total must be positive",
					})
					continue
				}
				serverID := c.ID
				if serverID == "" {
					serverID = "srv-" + c.LocalID
				}
				resp.Accepted = append(resp.Accepted, models.PushAccepted{
					Collection: models.CollectionOrders, LocalID: c.LocalID, ServerID: serverID,
					UpdatedAt: f.clock.Now().UnixMilli(),
				})
			}
			return resp, nil
		}).AnyTimes()

	localIDs := []string{"o-1", "o-2", "o-3"}
	for step := range 200 {
		f.clock.Advance(time.Second)

		switch rng.Intn(3) {
		case 0:
			total := float64(rng.Intn(20) - 5)
			_, err := f.queue.Enqueue(ctx, models.Record{
				LocalID:    localIDs[rng.Intn(len(localIDs))],
				Collection: models.CollectionOrders,
				Fields:     order("open", total),
			})
			require.NoError(t, err)
		case 1:
			_, err := f.orch.Sync(ctx, models.SyncOptions{})
			require.NoError(t, err)
		case 2:
			open, err := f.orch.ListConflicts(ctx)
			require.NoError(t, err)
			for _, c := range open {
				choice := models.KeepServer
				if rng.Intn(2) == 0 {
					choice = models.KeepLocal
				}
				require.NoError(t, f.orch.ResolveManual(ctx, c.LocalID, choice))
			}
		}

		records, err := f.storages.Records.List(ctx, store.RecordFilter{})
		require.NoError(t, err)
		for _, r := range records {
			if r.SyncStatus != models.SyncStatusSynced {
				continue
			}
			require.NotEmpty(t, r.ServerIDValue(), "step %d: %s synced without a server id", step, r.LocalID)
			require.True(t, r.Fields.Equal(r.BaseFields), "step %d: %s synced with unacknowledged fields", step, r.LocalID)
		}
	}
}

// ── Start / Stop ────────────────────────────────────────────────────

func TestSyncOrchestrator_StartSyncsOnStableConnection(t *testing.T) {
	f := newTestOrchestrator(t, testSyncConfig())
	f.adapter.EXPECT().Pull(gomock.Any(), gomock.Any()).Return(models.PullResponse{}, nil).AnyTimes()

	f.orch.Start(testContext())
	defer f.orch.Stop()

	f.monitor.events <- models.NetworkEvent{Type: models.EventQualityChange}
	f.monitor.events <- models.NetworkEvent{Type: models.EventStableConnection}

	require.Eventually(t, func() bool {
		history, err := f.orch.History(testContext(), 10)
		return err == nil && len(history) == 1 && history[0].Trigger == models.TriggerReconnect
	}, 5*time.Second, 10*time.Millisecond)
}

func TestSyncOrchestrator_StartSyncsOnQueuePressure(t *testing.T) {
	cfg := testSyncConfig()
	cfg.QueueWarningThreshold = 1
	f := newTestOrchestrator(t, cfg)
	f.adapter.EXPECT().Pull(gomock.Any(), gomock.Any()).Return(models.PullResponse{}, nil).AnyTimes()
	f.adapter.EXPECT().Push(gomock.Any(), gomock.Any()).Return(models.PushResponse{}, nil).AnyTimes()

	f.orch.Start(testContext())
	defer f.orch.Stop()

	_, err := f.queue.Enqueue(testContext(),
		models.Record{LocalID: "o-1", Collection: models.CollectionOrders, Fields: order("open", 1)},
		models.Record{LocalID: "o-2", Collection: models.CollectionOrders, Fields: order("open", 2)},
	)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		history, err := f.orch.History(testContext(), 10)
		return err == nil && len(history) > 0 && history[len(history)-1].Trigger == models.TriggerQueuePressure
	}, 5*time.Second, 10*time.Millisecond)
}
