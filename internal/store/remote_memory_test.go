// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/resto-sync/internal/logger"
	"github.com/MKhiriev/resto-sync/models"
)

// frozenClock always reports the same instant.
func frozenClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestMemoryRemote_StampsAreStrictlyIncreasing(t *testing.T) {
	repo := newMemoryRemoteRepository(frozenClock(baseTime), logger.Nop())
	ctx := testContext()

	a, err := repo.Save(ctx, RemoteRow{Collection: models.CollectionOrders, ID: "a"})
	require.NoError(t, err)
	b, err := repo.Save(ctx, RemoteRow{Collection: models.CollectionOrders, ID: "b"})
	require.NoError(t, err)
	a2, err := repo.Save(ctx, RemoteRow{Collection: models.CollectionOrders, ID: "a", Fields: models.Fields{"status": "ready"}})
	require.NoError(t, err)

	assert.Equal(t, baseTime.UnixMilli(), a.UpdatedAt)
	assert.Equal(t, a.UpdatedAt+1, b.UpdatedAt)
	assert.Equal(t, b.UpdatedAt+1, a2.UpdatedAt)
	assert.Equal(t, a.CreatedAt, a2.CreatedAt, "updates keep the creation stamp")
	assert.Equal(t, a2.UpdatedAt, repo.Now())
}

func TestMemoryRemote_FindByOriginAndGet(t *testing.T) {
	repo := newMemoryRemoteRepository(frozenClock(baseTime), logger.Nop())
	ctx := testContext()

	_, err := repo.Save(ctx, RemoteRow{
		Collection:   models.CollectionCustomers,
		ID:           "srv-1",
		LocalID:      "loc-1",
		OriginDevice: "tablet-1",
		Fields:       models.Fields{"name": "Ann"},
	})
	require.NoError(t, err)

	row, err := repo.FindByOrigin(ctx, models.CollectionCustomers, "tablet-1", "loc-1")
	require.NoError(t, err)
	assert.Equal(t, "srv-1", row.ID)

	_, err = repo.FindByOrigin(ctx, models.CollectionCustomers, "tablet-2", "loc-1")
	assert.ErrorIs(t, err, ErrRemoteRecordNotFound)

	got, err := repo.Get(ctx, models.CollectionCustomers, "srv-1")
	require.NoError(t, err)
	got.Fields["name"] = "mutated"

	again, err := repo.Get(ctx, models.CollectionCustomers, "srv-1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", again.Fields["name"], "rows are copied out")

	_, err = repo.Get(ctx, models.CollectionOrders, "srv-1")
	assert.ErrorIs(t, err, ErrRemoteRecordNotFound)
}

func TestMemoryRemote_ChangesSincePaging(t *testing.T) {
	repo := newMemoryRemoteRepository(frozenClock(baseTime), logger.Nop())
	ctx := testContext()

	for _, id := range []string{"a", "b", "c", "d", "e"} {
		_, err := repo.Save(ctx, RemoteRow{Collection: models.CollectionMenuItems, ID: id})
		require.NoError(t, err)
	}

	var (
		since int64
		seen  []string
		pages int
	)
	for {
		page, err := repo.ChangesSince(ctx, since, 2)
		require.NoError(t, err)
		for _, row := range page.Rows {
			seen = append(seen, row.ID)
		}
		since = page.Timestamp
		pages++
		if !page.HasMore {
			break
		}
	}

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, seen)
	assert.Equal(t, 3, pages)
	assert.Equal(t, repo.Now(), since)

	empty, err := repo.ChangesSince(ctx, since, 2)
	require.NoError(t, err)
	assert.Empty(t, empty.Rows)
	assert.False(t, empty.HasMore)
	assert.Equal(t, since, empty.Timestamp)
}
