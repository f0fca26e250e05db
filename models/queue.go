// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"
)

// QueueStats is a snapshot of the sync queue accounting.
type QueueStats struct {
	Pending     int `json:"pending"`
	Syncing     int `json:"syncing"`
	Conflict    int `json:"conflict"`
	Synced      int `json:"synced"`
	Deferred    int `json:"deferred"`
	NeedsReview int `json:"needsReview"`
}

// Unsynced returns the number of records carrying local intent.
func (s QueueStats) Unsynced() int {
	return s.Pending + s.Syncing + s.Conflict
}

// QueueEventKind names a queue bookkeeping event.
type QueueEventKind string

const (
	QueueEventWarning  QueueEventKind = "warning"
	QueueEventOverflow QueueEventKind = "overflow"
	QueueEventReleased QueueEventKind = "released"
	QueueEventCleanup  QueueEventKind = "cleanup"
	QueueEventStale    QueueEventKind = "stale"
)

// QueueEvent is a persisted queue bookkeeping event.
type QueueEvent struct {
	ID         int64          `json:"id"`
	Kind       QueueEventKind `json:"kind"`
	LocalID    string         `json:"localId,omitempty"`
	Collection Collection     `json:"collection,omitempty"`
	Detail     string         `json:"detail,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// PressureLevel is the queue size band.
type PressureLevel string

const (
	PressureNormal   PressureLevel = "normal"
	PressureWarning  PressureLevel = "warning"
	PressureCleanup  PressureLevel = "cleanup"
	PressureOverflow PressureLevel = "overflow"
)

// QueuePressure is delivered to pressure subscribers when the queue grows past
// the warning threshold.
type QueuePressure struct {
	Level   PressureLevel
	Pending int
}

// QueueCleanup reports what a residue purge removed.
type QueueCleanup struct {
	Tombstones        int64 `json:"tombstones"`
	ResolvedConflicts int64 `json:"resolvedConflicts"`
	QueueEvents       int64 `json:"queueEvents"`
	NetworkEvents     int64 `json:"networkEvents"`
	SyncLogs          int64 `json:"syncLogs"`
}

// Total returns the number of purged rows.
func (c QueueCleanup) Total() int64 {
	return c.Tombstones + c.ResolvedConflicts + c.QueueEvents + c.NetworkEvents + c.SyncLogs
}
