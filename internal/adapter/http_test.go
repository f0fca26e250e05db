// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/resto-sync/internal/config"
	"github.com/MKhiriev/resto-sync/internal/logger"
	"github.com/MKhiriev/resto-sync/internal/utils"
	"github.com/MKhiriev/resto-sync/models"
)

const testHashKey = "testhashkey"

// newTestAdapter создаёт httpSyncAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string, appCfg config.ClientApp) *httpSyncAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, SyncTimeout: 2 * time.Second}

	a, err := NewHTTPSyncAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpSyncAdapter)
}

func assertGoldenJSON(t *testing.T, name string, body []byte) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.Indent(&buf, body, "", "  "))
	buf.WriteByte('\n')

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, buf.Bytes())
}

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func writeToken(t *testing.T, token string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "device.token")
	require.NoError(t, os.WriteFile(path, []byte(token+"\n"), 0o600))
	return path
}

// ── Pull ────────────────────────────────────────────────────────────────────

func TestPull_WireFormat(t *testing.T) {
	fixture := readFixture(t, "pull_response.json")

	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/sync/pull", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get(utils.TraceIDHeader))

		var err error
		body, err = io.ReadAll(r.Body)
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(fixture)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.ClientApp{})
	resp, err := a.Pull(context.Background(), models.PullRequest{
		LastPulledAt:  1699999999000,
		SchemaVersion: 1,
		Limit:         50,
	})
	require.NoError(t, err)

	assertGoldenJSON(t, "pull_request", body)

	assert.True(t, resp.HasMore)
	assert.Equal(t, int64(1700000003000), resp.Timestamp)
	require.Len(t, resp.Changes[models.CollectionOrders].Updated, 1)
	updated := resp.Changes[models.CollectionOrders].Updated[0]
	assert.Equal(t, "srv-1", updated.ID)
	assert.Equal(t, "loc-1", updated.LocalID)
	assert.Equal(t, "ready", updated.Fields["status"])
	assert.Equal(t, 18.5, updated.Fields["total"])
	require.Len(t, resp.Changes[models.CollectionOrders].Deleted, 1)
	assert.True(t, resp.Changes[models.CollectionOrders].Deleted[0].Deleted)
	require.Len(t, resp.Changes[models.CollectionMenuItems].Created, 1)
	assert.Equal(t, []any{"soup"}, resp.Changes[models.CollectionMenuItems].Created[0].Fields["tags"])
}

func TestPull_EmptyChangesDecodeToEmptySet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"timestamp": 5, "hasMore": false}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.ClientApp{})
	resp, err := a.Pull(context.Background(), models.PullRequest{})
	require.NoError(t, err)
	assert.NotNil(t, resp.Changes)
	assert.True(t, resp.Changes.IsEmpty())
	assert.Equal(t, int64(5), resp.Timestamp)
}

func TestPull_InvalidBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.ClientApp{})
	_, err := a.Pull(context.Background(), models.PullRequest{})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

// ── Push ────────────────────────────────────────────────────────────────────

func TestPush_WireFormatAndSignature(t *testing.T) {
	fixture := readFixture(t, "push_response.json")
	signer := utils.NewSigner(testHashKey)

	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sync/push", r.URL.Path)

		var err error
		body, err = io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.True(t, signer.Verify(body, r.Header.Get(utils.HashHeader)), "request must be signed")

		w.Header().Set(utils.HashHeader, signer.Sign(fixture))
		_, _ = w.Write(fixture)
	}))
	defer srv.Close()

	changes := models.ChangeSet{}
	changes.Add(models.CollectionOrders, models.OperationCreated, models.ChangeRecord{
		LocalID:   "loc-1",
		UpdatedAt: 1700000000000,
		Fields:    models.Fields{"status": "preparing", "notes": "Extra spicy"},
	})
	changes.Add(models.CollectionOrders, models.OperationDeleted, models.ChangeRecord{
		ID:        "srv-9",
		LocalID:   "loc-9",
		UpdatedAt: 1700000000500,
		Deleted:   true,
	})

	a := newTestAdapter(t, srv.URL, config.ClientApp{HashKey: testHashKey})
	resp, err := a.Push(context.Background(), models.PushRequest{Changes: changes, LastPulledAt: 1699999999000})
	require.NoError(t, err)

	assertGoldenJSON(t, "push_request", body)

	require.Len(t, resp.Accepted, 2)
	assert.Equal(t, "loc-2", resp.Accepted[0].LocalID, "server order is kept")
	assert.Equal(t, "srv-1", resp.Accepted[1].ServerID)
	require.Len(t, resp.Rejected, 1)
	assert.Equal(t, "price is required", resp.Rejected[0].Reason)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, "Ann", resp.Conflicts[0].ServerData.Fields["name"])
}

func TestPush_BadResponseSignature(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(utils.HashHeader, "deadbeef")
		_, _ = w.Write([]byte(`{"accepted":[],"rejected":[],"conflicts":[]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.ClientApp{HashKey: testHashKey})
	_, err := a.Push(context.Background(), models.PushRequest{Changes: models.ChangeSet{}})
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestPull_UnsignedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"changes":{},"timestamp":0,"hasMore":false}`))
	}))
	defer srv.Close()

	// со включённой подписью ответ без заголовка отклоняется
	signed := newTestAdapter(t, srv.URL, config.ClientApp{HashKey: testHashKey})
	_, err := signed.Pull(context.Background(), models.PullRequest{SchemaVersion: 1})
	assert.ErrorIs(t, err, ErrInvalidSignature)

	plain := newTestAdapter(t, srv.URL, config.ClientApp{})
	_, err = plain.Pull(context.Background(), models.PullRequest{SchemaVersion: 1})
	assert.NoError(t, err)
}

// ── Errors ──────────────────────────────────────────────────────────────────

func TestPost_HTTPErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, ErrForbidden},
		{"not found", http.StatusNotFound, ErrNotFound},
		{"conflict", http.StatusConflict, ErrConflict},
		{"unprocessable", http.StatusUnprocessableEntity, ErrUnprocessable},
		{"too many requests", http.StatusTooManyRequests, ErrTooManyRequests},
		{"internal", http.StatusInternalServerError, ErrInternalServerError},
		{"bad gateway", http.StatusBadGateway, ErrBadGateway},
		{"unavailable", http.StatusServiceUnavailable, ErrServiceUnavailable},
		{"gateway timeout", http.StatusGatewayTimeout, ErrGatewayTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("boom"))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, config.ClientApp{})
			_, err := a.Pull(context.Background(), models.PullRequest{})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPost_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.ClientApp{})
	_, err := a.Push(context.Background(), models.PushRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestPost_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	a := newTestAdapter(t, srv.URL, config.ClientApp{})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := a.Pull(ctx, models.PullRequest{})
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestPost_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	a := newTestAdapter(t, addr, config.ClientApp{})
	_, err := a.Push(context.Background(), models.PushRequest{})
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestPost_Canceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestAdapter(t, srv.URL, config.ClientApp{})
	_, err := a.Pull(ctx, models.PullRequest{})
	assert.ErrorIs(t, err, context.Canceled)
}

// ── Probe ───────────────────────────────────────────────────────────────────

func TestProbe(t *testing.T) {
	status := http.StatusOK
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(status)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.ClientApp{})
	assert.Equal(t, srv.URL+"/api/health", a.probeURL)

	latency, err := a.Probe(context.Background(), "")
	require.NoError(t, err)
	assert.Greater(t, latency, time.Duration(0))

	status = http.StatusNotFound
	_, err = a.Probe(context.Background(), srv.URL+"/anything")
	assert.NoError(t, err, "a reachable server is enough")

	status = http.StatusServiceUnavailable
	_, err = a.Probe(context.Background(), "")
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

// ── Token handling ──────────────────────────────────────────────────────────

func TestToken_LoadedFromFileAndSent(t *testing.T) {
	token, err := utils.GenerateDeviceToken(utils.TokenIssuer, "tablet-1", time.Hour, "sign")
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.ClientApp{TokenFile: writeToken(t, token)})
	assert.Equal(t, token, a.Token())

	_, err = a.Pull(context.Background(), models.PullRequest{})
	require.NoError(t, err)
}

func TestToken_ExpiringTokenReloaded(t *testing.T) {
	expiring, err := utils.GenerateDeviceToken(utils.TokenIssuer, "tablet-1", time.Second, "sign")
	require.NoError(t, err)
	fresh, err := utils.GenerateDeviceToken(utils.TokenIssuer, "tablet-1", time.Hour, "sign")
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+fresh, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	path := writeToken(t, expiring)
	a := newTestAdapter(t, srv.URL, config.ClientApp{TokenFile: path})
	require.NoError(t, os.WriteFile(path, []byte(fresh), 0o600))

	_, err = a.Pull(context.Background(), models.PullRequest{})
	require.NoError(t, err)
	assert.Equal(t, fresh, a.Token())
}

func TestTokenFileRefresher(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1", config.ClientApp{})
	ctx := context.Background()

	assert.ErrorIs(t, NewTokenFileRefresher("", a).Refresh(ctx), ErrNoToken)
	assert.ErrorIs(t, NewTokenFileRefresher(writeToken(t, ""), a).Refresh(ctx), ErrNoToken)
	assert.Error(t, NewTokenFileRefresher(filepath.Join(t.TempDir(), "missing"), a).Refresh(ctx))

	expired, err := utils.GenerateDeviceToken(utils.TokenIssuer, "d", -time.Minute, "sign")
	require.NoError(t, err)
	assert.ErrorIs(t, NewTokenFileRefresher(writeToken(t, expired), a).Refresh(ctx), ErrUnauthorized)

	valid, err := utils.GenerateDeviceToken(utils.TokenIssuer, "d", time.Hour, "sign")
	require.NoError(t, err)
	require.NoError(t, NewTokenFileRefresher(writeToken(t, valid), a).Refresh(ctx))
	assert.Equal(t, valid, a.Token())
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"localhost:8080", "http://localhost:8080", false},
		{"https://sync.example.com/", "https://sync.example.com", false},
		{"  ", "", true},
		{"http://", "", true},
	}
	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.raw)
		if tt.wantErr {
			assert.Error(t, err, tt.raw)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := NewHTTPSyncAdapter(config.ClientAdapter{}, config.ClientApp{}, logger.Nop())
	assert.Error(t, err)
}
