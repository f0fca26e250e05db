// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"
)

// SyncType is the kind of sync attempt.
type SyncType string

const (
	SyncTypePush SyncType = "push"
	SyncTypePull SyncType = "pull"
	SyncTypeFull SyncType = "full"
)

// IsValid reports whether t is a known sync type.
func (t SyncType) IsValid() bool {
	return t == SyncTypePush || t == SyncTypePull || t == SyncTypeFull
}

// Pulls reports whether the sync type includes a pull phase.
func (t SyncType) Pulls() bool {
	return t == SyncTypePull || t == SyncTypeFull
}

// Pushes reports whether the sync type includes a push phase.
func (t SyncType) Pushes() bool {
	return t == SyncTypePush || t == SyncTypeFull
}

// SyncLogStatus is the lifecycle state of a sync log entry.
type SyncLogStatus string

const (
	SyncLogStarted   SyncLogStatus = "started"
	SyncLogCompleted SyncLogStatus = "completed"
	SyncLogFailed    SyncLogStatus = "failed"
)

// SyncTrigger names what started a sync cycle.
type SyncTrigger string

const (
	TriggerManual        SyncTrigger = "manual"
	TriggerForeground    SyncTrigger = "foreground"
	TriggerBackground    SyncTrigger = "background"
	TriggerReconnect     SyncTrigger = "reconnect"
	TriggerQueuePressure SyncTrigger = "queue_pressure"
)

// ErrorCode classifies a failure.
type ErrorCode string

const (
	ErrorCodeNetwork     ErrorCode = "network"
	ErrorCodeTimeout     ErrorCode = "timeout"
	ErrorCodeDNS         ErrorCode = "dns"
	ErrorCodeUnreachable ErrorCode = "unreachable"
	ErrorCodeAuth        ErrorCode = "auth"
	ErrorCodeValidation  ErrorCode = "validation"
	ErrorCodeConflict    ErrorCode = "conflict"
	ErrorCodeServer      ErrorCode = "server"
	ErrorCodeStorage     ErrorCode = "storage"
	ErrorCodeCanceled    ErrorCode = "canceled"
	ErrorCodeUnknown     ErrorCode = "unknown"
)

// SyncError is a structured error recorded in a sync log.
type SyncError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Retryable bool      `json:"retryable"`
}

// SyncLog is one immutable entry of the sync history.
type SyncLog struct {
	ID                int64         `json:"id"`
	Type              SyncType      `json:"type"`
	Trigger           SyncTrigger   `json:"trigger"`
	Status            SyncLogStatus `json:"status"`
	StartedAt         time.Time     `json:"startedAt"`
	FinishedAt        *time.Time    `json:"finishedAt,omitempty"`
	Pushed            int           `json:"pushed"`
	Pulled            int           `json:"pulled"`
	ConflictsResolved int           `json:"conflictsResolved"`
	Rejected          int           `json:"rejected"`
	Errors            []SyncError   `json:"errors,omitempty"`
}

// Duration returns the time the attempt took, or zero while it is running.
func (l SyncLog) Duration() time.Duration {
	if l.FinishedAt == nil {
		return 0
	}
	return l.FinishedAt.Sub(l.StartedAt)
}

// SyncOptions parametrize a single sync call.
type SyncOptions struct {
	Type    SyncType
	Force   bool
	Trigger SyncTrigger
}

// SyncState is the orchestrator state machine position.
type SyncState string

const (
	SyncStateIdle            SyncState = "idle"
	SyncStatePulling         SyncState = "pulling"
	SyncStateReconciling     SyncState = "reconciling"
	SyncStatePushing         SyncState = "pushing"
	SyncStatePushReconciling SyncState = "pushReconciling"
	SyncStateFailed          SyncState = "failed"
)
