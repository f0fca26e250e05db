// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/resto-sync/internal/adapter"
	"github.com/MKhiriev/resto-sync/internal/config"
	"github.com/MKhiriev/resto-sync/internal/logger"
	"github.com/MKhiriev/resto-sync/internal/service"
	"github.com/MKhiriev/resto-sync/internal/store"
	"github.com/MKhiriev/resto-sync/models"
)

// Сквозные тесты: настоящий клиентский адаптер против настоящего сервера
// с in-memory хранилищем.

func newSyncServer(t *testing.T, cfg config.ServerConfig) (*httptest.Server, *service.Services) {
	t.Helper()

	if cfg.Version == "" {
		cfg.Version = "test"
	}
	services, err := service.NewServices(store.NewStorages(logger.Nop()), cfg, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(NewHandler(services, cfg, logger.Nop()).Init())
	t.Cleanup(srv.Close)

	return srv, services
}

func newClient(t *testing.T, srv *httptest.Server, hashKey string) adapter.SyncAdapter {
	t.Helper()

	a, err := adapter.NewHTTPSyncAdapter(
		config.ClientAdapter{HTTPAddress: srv.URL, SyncTimeout: 5 * time.Second},
		config.ClientApp{HashKey: hashKey, SchemaVersion: 1},
		logger.Nop(),
	)
	require.NoError(t, err)
	return a
}

func createdOrder(localID, status string) models.PushRequest {
	changes := models.ChangeSet{}
	changes.Add(models.CollectionOrders, models.OperationCreated, models.ChangeRecord{
		LocalID: localID,
		Fields:  models.Fields{"status": status, "total": 18.5},
	})
	return models.PushRequest{Changes: changes}
}

func TestServer_PushThenPull(t *testing.T) {
	srv, services := newSyncServer(t, config.ServerConfig{HashKey: testHashKey, TokenSignKey: "sign-key"})
	ctx := context.Background()

	token, err := services.AuthService.CreateToken(ctx, "till-1", time.Hour)
	require.NoError(t, err)

	client := newClient(t, srv, testHashKey)
	client.SetToken(token)

	pushed, err := client.Push(ctx, createdOrder("o-1", "open"))
	require.NoError(t, err)
	require.Len(t, pushed.Accepted, 1)
	assert.Equal(t, "o-1", pushed.Accepted[0].LocalID)
	assert.NotEmpty(t, pushed.Accepted[0].ServerID)
	assert.Empty(t, pushed.Rejected)
	assert.Empty(t, pushed.Conflicts)

	pulled, err := client.Pull(ctx, models.PullRequest{SchemaVersion: 1})
	require.NoError(t, err)
	assert.False(t, pulled.HasMore)
	assert.Positive(t, pulled.Timestamp)

	created := pulled.Changes[models.CollectionOrders].Created
	require.Len(t, created, 1)
	assert.Equal(t, pushed.Accepted[0].ServerID, created[0].ID)
	assert.Equal(t, "open", created[0].Fields["status"])

	// курсор сдвинулся: повторный pull пустой
	again, err := client.Pull(ctx, models.PullRequest{LastPulledAt: pulled.Timestamp, SchemaVersion: 1})
	require.NoError(t, err)
	assert.Zero(t, again.Changes[models.CollectionOrders].Len())
}

func TestServer_Probe(t *testing.T) {
	srv, _ := newSyncServer(t, config.ServerConfig{TokenSignKey: "sign-key"})

	latency, err := newClient(t, srv, "").Probe(context.Background(), "")

	require.NoError(t, err, "health is reachable without a token")
	assert.Positive(t, latency)
}

func TestServer_RejectsUnauthenticated(t *testing.T) {
	srv, _ := newSyncServer(t, config.ServerConfig{TokenSignKey: "sign-key"})
	client := newClient(t, srv, "")

	_, err := client.Pull(context.Background(), models.PullRequest{SchemaVersion: 1})
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)

	client.SetToken("not-a-jwt")
	_, err = client.Push(context.Background(), createdOrder("o-1", "open"))
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestServer_RejectsWrongHashKey(t *testing.T) {
	srv, _ := newSyncServer(t, config.ServerConfig{HashKey: testHashKey})

	_, err := newClient(t, srv, "another-key").Pull(context.Background(), models.PullRequest{SchemaVersion: 1})
	assert.ErrorIs(t, err, adapter.ErrBadRequest)

	_, err = newClient(t, srv, "").Pull(context.Background(), models.PullRequest{SchemaVersion: 1})
	assert.ErrorIs(t, err, adapter.ErrBadRequest, "unsigned requests are refused")
}

func TestServer_ValidationErrorsAreBadRequests(t *testing.T) {
	srv, _ := newSyncServer(t, config.ServerConfig{})
	client := newClient(t, srv, "")

	_, err := client.Pull(context.Background(), models.PullRequest{SchemaVersion: 0})
	assert.ErrorIs(t, err, adapter.ErrBadRequest)

	_, err = client.Push(context.Background(), models.PushRequest{Changes: models.ChangeSet{}})
	assert.ErrorIs(t, err, adapter.ErrBadRequest)
}

func TestServer_AnonymousWhenAuthDisabled(t *testing.T) {
	srv, _ := newSyncServer(t, config.ServerConfig{})
	client := newClient(t, srv, "")

	pushed, err := client.Push(context.Background(), createdOrder("o-9", "paid"))
	require.NoError(t, err)
	assert.Len(t, pushed.Accepted, 1)
}
