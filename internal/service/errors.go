// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)

// sync engine errors
var (
	// ErrSyncInProgress is returned by a non-forced Sync while a cycle runs.
	ErrSyncInProgress = errors.New("sync already in progress")
	// ErrInvalidSyncType is returned for an unknown SyncOptions.Type.
	ErrInvalidSyncType = errors.New("invalid sync type")
	// ErrOffline is returned when the device has no connectivity.
	ErrOffline = errors.New("device is offline")
	// ErrServerUnreachable is returned when the health probe fails.
	ErrServerUnreachable = errors.New("sync server is unreachable")
	// ErrPullFailed wraps a failed pull call.
	ErrPullFailed = errors.New("pull failed")
	// ErrPushFailed wraps a failed push call.
	ErrPushFailed = errors.New("push failed")
	// ErrApplyFailed wraps a failed local apply transaction.
	ErrApplyFailed = errors.New("applying changes failed")
	// ErrSyncLogFailed wraps a failure to open or finalize the sync log.
	ErrSyncLogFailed = errors.New("sync log write failed")

	// ErrInvalidRecord is returned by Enqueue for records without a known
	// collection.
	ErrInvalidRecord = errors.New("invalid record")
	// ErrInvalidStrategy is returned for unknown conflict strategies.
	ErrInvalidStrategy = errors.New("invalid conflict strategy")
	// ErrInvalidChoice is returned by ResolveManual for unknown choices.
	ErrInvalidChoice = errors.New("invalid manual resolution choice")
	// ErrNoOpenConflict is returned by ResolveManual when the record has no
	// open conflict.
	ErrNoOpenConflict = errors.New("no open conflict for record")

	// ErrCredentialRefreshFailed wraps a failed credential refresh.
	ErrCredentialRefreshFailed = errors.New("credential refresh failed")
	// ErrNotRecoverable is returned by Recover for errors it cannot act on.
	ErrNotRecoverable = errors.New("error is not recoverable")
)
