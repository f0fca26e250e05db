// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when no local record matches the
	// requested local id or server id.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrRecordNotSaved is returned when an upsert of a record completes
	// without error but affects no rows.
	ErrRecordNotSaved = errors.New("record was not saved")

	// ErrSyncedWithoutServerID is returned when a record would be stored as
	// synced without a server id.
	ErrSyncedWithoutServerID = errors.New("synced record must have a server id")

	// ErrSyncLogNotFound is returned when a requested sync log does not exist.
	ErrSyncLogNotFound = errors.New("sync log was not found")

	// ErrSyncLogFinalized is returned when finalizing a sync log that is no
	// longer in the started state. Sync logs are finalized exactly once.
	ErrSyncLogFinalized = errors.New("sync log is already finalized")

	// ErrConflictNotFound is returned when no open conflict exists for a
	// record.
	ErrConflictNotFound = errors.New("open conflict was not found")

	// ErrNetworkEventNotFound is returned when no network event of the
	// requested kind has been persisted yet.
	ErrNetworkEventNotFound = errors.New("network event was not found")

	// ErrRemoteRecordNotFound is returned by the reference server store when
	// a server id is unknown.
	ErrRemoteRecordNotFound = errors.New("remote record was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingColumn is returned when a JSON column cannot be encoded or
	// decoded.
	ErrEncodingColumn = errors.New("failed to encode json column")
)
