// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeSet_AddAndLen(t *testing.T) {
	cs := ChangeSet{}
	assert.True(t, cs.IsEmpty())

	cs.Add(CollectionOrders, OperationCreated, ChangeRecord{LocalID: "a"})
	cs.Add(CollectionOrders, OperationUpdated, ChangeRecord{ID: "s-1", LocalID: "b"})
	cs.Add(CollectionStaff, OperationDeleted, ChangeRecord{ID: "s-2"})
	cs.Add(CollectionStaff, Operation("bogus"), ChangeRecord{ID: "s-3"})

	assert.Equal(t, 3, cs.Len())
	assert.Equal(t, 2, cs[CollectionOrders].Len())
	assert.Len(t, cs[CollectionStaff].Deleted, 1)
	assert.False(t, cs.IsEmpty())
}

func TestChangeSet_CollectionsInPushOrder(t *testing.T) {
	cs := ChangeSet{
		CollectionOrders:     {},
		CollectionMenuItems:  {},
		Collection("legacy"): {},
		CollectionStaff:      {},
	}

	got := cs.Collections()

	require.Len(t, got, 4)
	assert.Equal(t, []Collection{CollectionMenuItems, CollectionStaff, CollectionOrders}, got[:3])
	assert.Equal(t, Collection("legacy"), got[3], "unknown collections go last")
}

func TestCollectionChanges_MarshalEmptyBuckets(t *testing.T) {
	raw, err := json.Marshal(CollectionChanges{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"created":[],"updated":[],"deleted":[]}`, string(raw))
}

func TestQueueEntry_Change(t *testing.T) {
	modified := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		record  Record
		op      Operation
		id      string
		deleted bool
	}{
		{
			name:   "created",
			record: Record{LocalID: "l-1", Collection: CollectionOrders},
			op:     OperationCreated,
		},
		{
			name:   "updated",
			record: Record{LocalID: "l-1", Collection: CollectionOrders, ServerID: StringPtr("s-1")},
			op:     OperationUpdated,
			id:     "s-1",
		},
		{
			name:    "deleted wins over server id",
			record:  Record{LocalID: "l-1", Collection: CollectionOrders, ServerID: StringPtr("s-1"), IsDeleted: true},
			op:      OperationDeleted,
			id:      "s-1",
			deleted: true,
		},
		{
			name:   "empty server id is a create",
			record: Record{LocalID: "l-1", Collection: CollectionOrders, ServerID: StringPtr("")},
			op:     OperationCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.record.LastModified = modified
			tt.record.Fields = Fields{"status": "open"}

			entry := NewQueueEntry(tt.record)
			assert.Equal(t, tt.op, entry.Operation)

			change := entry.Change()
			assert.Equal(t, tt.id, change.ID)
			assert.Equal(t, "l-1", change.LocalID)
			assert.Equal(t, tt.deleted, change.Deleted)
			assert.Equal(t, modified.UnixMilli(), change.UpdatedAt)
			assert.True(t, modified.Equal(change.UpdatedTime()))
		})
	}
}

func TestPendingChanges_Batches(t *testing.T) {
	entries := make([]QueueEntry, 5)
	for i := range entries {
		entries[i] = QueueEntry{Collection: CollectionOrders, Operation: OperationCreated}
	}
	p := PendingChanges{Entries: entries}

	batches := p.Batches(2)
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 2)
	assert.Len(t, batches[2], 1)

	assert.Len(t, p.Batches(0), 1, "non-positive size means one batch")
	assert.Empty(t, PendingChanges{}.Batches(10))

	assert.Equal(t, 5, p.ChangeSet()[CollectionOrders].Len())
}
