// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Operation is the kind of mutation a queue entry carries.
type Operation string

const (
	OperationCreated Operation = "created"
	OperationUpdated Operation = "updated"
	OperationDeleted Operation = "deleted"
)

// ChangeRecord is the wire representation of a single record exchanged with
// the server in both directions.
//
// On pull, ID is the server id and LocalID is echoed when the server knows the
// originating device id. On push, ID is empty for created records.
type ChangeRecord struct {
	ID        string `json:"id,omitempty"`
	LocalID   string `json:"localId,omitempty"`
	UpdatedAt int64  `json:"updatedAt"`
	Deleted   bool   `json:"deleted,omitempty"`
	Fields    Fields `json:"fields,omitempty"`
}

// UpdatedTime returns UpdatedAt (unix milliseconds) as a time.
func (c ChangeRecord) UpdatedTime() time.Time {
	return time.UnixMilli(c.UpdatedAt).UTC()
}

// CollectionChanges groups the changes of a single collection by operation.
type CollectionChanges struct {
	Created []ChangeRecord `json:"created"`
	Updated []ChangeRecord `json:"updated"`
	Deleted []ChangeRecord `json:"deleted"`
}

// Len returns the number of changes in all buckets.
func (c CollectionChanges) Len() int {
	return len(c.Created) + len(c.Updated) + len(c.Deleted)
}

// MarshalJSON encodes empty buckets as [] instead of null.
func (c CollectionChanges) MarshalJSON() ([]byte, error) {
	type plain CollectionChanges
	p := plain(c)
	if p.Created == nil {
		p.Created = []ChangeRecord{}
	}
	if p.Updated == nil {
		p.Updated = []ChangeRecord{}
	}
	if p.Deleted == nil {
		p.Deleted = []ChangeRecord{}
	}
	return json.Marshal(p)
}

// ChangeSet maps collections to their changes.
type ChangeSet map[Collection]CollectionChanges

// Add appends a change to the bucket of op.
func (cs ChangeSet) Add(collection Collection, op Operation, change ChangeRecord) {
	bucket := cs[collection]
	switch op {
	case OperationCreated:
		bucket.Created = append(bucket.Created, change)
	case OperationUpdated:
		bucket.Updated = append(bucket.Updated, change)
	case OperationDeleted:
		bucket.Deleted = append(bucket.Deleted, change)
	}
	cs[collection] = bucket
}

// Len returns the total number of changes.
func (cs ChangeSet) Len() int {
	n := 0
	for _, c := range cs {
		n += c.Len()
	}
	return n
}

// IsEmpty reports whether the change set carries no changes.
func (cs ChangeSet) IsEmpty() bool {
	return cs.Len() == 0
}

// Collections returns the collections present in cs, known collections first
// in push order, unknown ones last.
func (cs ChangeSet) Collections() []Collection {
	out := make([]Collection, 0, len(cs))
	seen := make(map[Collection]bool, len(cs))
	for _, c := range AllCollections {
		if _, ok := cs[c]; ok {
			out = append(out, c)
			seen[c] = true
		}
	}
	for c := range cs {
		if !seen[c] {
			out = append(out, c)
		}
	}
	return out
}

// QueueEntry is the transient projection of a pending record built at
// collection time. The record itself stays the source of truth.
type QueueEntry struct {
	Collection   Collection
	LocalID      string
	Operation    Operation
	ServerID     string
	Fields       Fields
	LastModified time.Time
}

// NewQueueEntry builds a queue entry from a pending record.
func NewQueueEntry(r Record) QueueEntry {
	return QueueEntry{
		Collection:   r.Collection,
		LocalID:      r.LocalID,
		Operation:    r.Operation(),
		ServerID:     r.ServerIDValue(),
		Fields:       r.Fields.Clone(),
		LastModified: r.LastModified,
	}
}

// Change converts the entry to its wire representation.
func (e QueueEntry) Change() ChangeRecord {
	return ChangeRecord{
		ID:        e.ServerID,
		LocalID:   e.LocalID,
		UpdatedAt: e.LastModified.UnixMilli(),
		Deleted:   e.Operation == OperationDeleted,
		Fields:    e.Fields,
	}
}

// PendingChanges is the result of collecting the pending queue.
type PendingChanges struct {
	Entries []QueueEntry
}

// Len returns the number of entries.
func (p PendingChanges) Len() int {
	return len(p.Entries)
}

// Batches splits the entries into chunks of at most size entries.
func (p PendingChanges) Batches(size int) [][]QueueEntry {
	if size <= 0 {
		size = len(p.Entries)
	}
	var batches [][]QueueEntry
	for start := 0; start < len(p.Entries); start += size {
		end := min(start+size, len(p.Entries))
		batches = append(batches, p.Entries[start:end])
	}
	return batches
}

// ChangeSet groups the entries into a wire change set.
func (p PendingChanges) ChangeSet() ChangeSet {
	return ChangeSetFromEntries(p.Entries)
}

// ChangeSetFromEntries groups entries by collection and operation.
func ChangeSetFromEntries(entries []QueueEntry) ChangeSet {
	cs := make(ChangeSet)
	for _, e := range entries {
		cs.Add(e.Collection, e.Operation, e.Change())
	}
	return cs
}
