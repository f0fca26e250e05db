// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/resto-sync/internal/config"
	"github.com/MKhiriev/resto-sync/internal/logger"
	"github.com/MKhiriev/resto-sync/internal/store"
	"github.com/MKhiriev/resto-sync/models"
)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// newTestStorages opens a migrated SQLite replica in a temp dir.
func newTestStorages(t *testing.T) *store.ClientStorages {
	t.Helper()

	db, err := store.NewConnectSQLite(testContext(), config.ClientDB{
		DSN: filepath.Join(t.TempDir(), "replica.db"),
	}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { db.Close() })

	return store.NewClientStoragesFromDB(db, logger.Nop())
}

// fakeClock is a settable time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(at time.Time) *fakeClock {
	return &fakeClock{now: at}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// seqIDs hands out predictable ids.
type seqIDs struct {
	mu     sync.Mutex
	prefix string
	n      int
}

func (s *seqIDs) Generate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("%s%d", s.prefix, s.n)
}

func testSyncConfig() config.ClientSync {
	return config.ClientSync{
		BatchSize:             50,
		MaxQueueSize:          100,
		QueueWarningThreshold: 50,
		QueueCleanupThreshold: 80,
		QueueItemTTL:          72 * time.Hour,
		RetryBaseDelay:        time.Millisecond,
		RetryMaxDelay:         5 * time.Millisecond,
		RetryBackoffFactor:    2,
		MaxRetryCount:         3,
		DefaultStrategy:       string(models.StrategyLastWriteWins),
		LogRetention:          200,
	}
}

func order(status string, total float64) models.Fields {
	return models.Fields{"status": status, "total": total}
}

// seedRecord stores r as is, bypassing the queue.
func seedRecord(t *testing.T, storages *store.ClientStorages, r models.Record) {
	t.Helper()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = baseTime
	}
	require.NoError(t, storages.Records.Save(testContext(), r))
}

func getRecord(t *testing.T, storages *store.ClientStorages, localID string) models.Record {
	t.Helper()
	r, err := storages.Records.Get(testContext(), localID)
	require.NoError(t, err)
	return r
}
