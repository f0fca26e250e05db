// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"
)

// SyncStatus is the replication state of a single local record.
type SyncStatus string

const (
	// SyncStatusPending marks a record mutated locally and not yet confirmed
	// by the server.
	SyncStatusPending SyncStatus = "pending"
	// SyncStatusSyncing marks a record that is part of an in-flight push batch.
	SyncStatusSyncing SyncStatus = "syncing"
	// SyncStatusSynced marks a record confirmed by the server. A synced record
	// always carries a server id.
	SyncStatusSynced SyncStatus = "synced"
	// SyncStatusConflict marks a record whose local intent collided with the
	// server (rejected push or manual-strategy conflict).
	SyncStatusConflict SyncStatus = "conflict"
)

// IsValid reports whether s is one of the known statuses.
func (s SyncStatus) IsValid() bool {
	switch s {
	case SyncStatusPending, SyncStatusSyncing, SyncStatusSynced, SyncStatusConflict:
		return true
	}
	return false
}

// HasLocalIntent reports whether a record in this status carries unsynced
// local changes that must never be lost or physically removed.
func (s SyncStatus) HasLocalIntent() bool {
	return s == SyncStatusPending || s == SyncStatusSyncing || s == SyncStatusConflict
}

// Record is any synchronized entity (order, menu item, customer, staff
// member, shift) as stored in the local replica.
//
// Entity-specific attributes live in Fields; typed views are obtained through
// the per-collection mapping tables in entities.go.
type Record struct {
	// LocalID is the stable local identity assigned on creation. Never reused.
	LocalID string `json:"localId"`

	// Collection is the name of the collection the record belongs to.
	Collection Collection `json:"collection"`

	// ServerID is set once the server has accepted the record.
	ServerID *string `json:"serverId,omitempty"`

	// SyncStatus is the current replication state.
	SyncStatus SyncStatus `json:"syncStatus"`

	// LastModified is the monotonic local timestamp of the last local mutation.
	LastModified time.Time `json:"lastModified"`

	// ServerUpdatedAt is the server's updated_at of the last server version
	// applied to (or acknowledged for) this record.
	ServerUpdatedAt *time.Time `json:"serverUpdatedAt,omitempty"`

	// IsDeleted is the soft-delete flag. Deletion is a mutation until synced.
	IsDeleted bool `json:"isDeleted"`

	// Fields holds the entity-specific attributes.
	Fields Fields `json:"fields"`

	// BaseFields is the last server version this replica acknowledged. Nil
	// until the server has held the record.
	BaseFields Fields `json:"baseFields,omitempty"`

	// Deferred is set when the record was mutated while the sync queue was
	// over capacity; it is pushed once capacity returns.
	Deferred bool `json:"deferred,omitempty"`

	// NeedsReview is set when the pending mutation outlived the queue TTL.
	NeedsReview bool `json:"needsReview,omitempty"`

	// RejectReason holds the server's validation message for rejected pushes.
	RejectReason *string `json:"rejectReason,omitempty"`

	// CreatedAt is the local creation time.
	CreatedAt time.Time `json:"createdAt"`
}

// HasServerID reports whether the server has ever accepted the record.
func (r Record) HasServerID() bool {
	return r.ServerID != nil && *r.ServerID != ""
}

// ServerIDValue returns the server id or an empty string.
func (r Record) ServerIDValue() string {
	if r.ServerID == nil {
		return ""
	}
	return *r.ServerID
}

// Operation derives the queue operation a pending record maps to.
func (r Record) Operation() Operation {
	switch {
	case r.IsDeleted:
		return OperationDeleted
	case r.HasServerID():
		return OperationUpdated
	default:
		return OperationCreated
	}
}

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	c := r
	if r.ServerID != nil {
		id := *r.ServerID
		c.ServerID = &id
	}
	if r.ServerUpdatedAt != nil {
		at := *r.ServerUpdatedAt
		c.ServerUpdatedAt = &at
	}
	if r.RejectReason != nil {
		reason := *r.RejectReason
		c.RejectReason = &reason
	}
	c.Fields = r.Fields.Clone()
	c.BaseFields = r.BaseFields.Clone()
	return c
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// TimePtr returns a pointer to t.
func TimePtr(t time.Time) *time.Time {
	return &t
}
