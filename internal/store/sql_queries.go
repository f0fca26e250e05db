// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/resto-sync/models"
)

// builder produces SQLite flavoured queries.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

const recordsTable = "records"

var recordColumns = []string{
	"local_id",
	"collection",
	"server_id",
	"sync_status",
	"last_modified",
	"server_updated_at",
	"is_deleted",
	"deferred",
	"needs_review",
	"reject_reason",
	"fields",
	"created_at",
	"base_fields",
}

var recordInsertColumns = append(append([]string{}, recordColumns...), "fields_hash")

const (
	upsertRecordSuffix = `ON CONFLICT(local_id) DO UPDATE SET
			collection        = excluded.collection,
			server_id         = excluded.server_id,
			sync_status       = excluded.sync_status,
			last_modified     = MAX(records.last_modified, excluded.last_modified),
			server_updated_at = excluded.server_updated_at,
			is_deleted        = excluded.is_deleted,
			deferred          = excluded.deferred,
			needs_review      = excluded.needs_review,
			reject_reason     = excluded.reject_reason,
			fields            = excluded.fields,
			fields_hash       = excluded.fields_hash,
			base_fields       = excluded.base_fields`

	flipSyncedQuery = `
		UPDATE records
		SET sync_status = 'synced',
			server_id = ?,
			server_updated_at = ?,
			base_fields = ?,
			reject_reason = NULL,
			deferred = 0,
			needs_review = 0
		WHERE local_id = ? AND sync_status = 'syncing' AND last_modified = ?;`

	assignServerIDQuery = `
		UPDATE records
		SET server_id = ?,
			server_updated_at = ?,
			base_fields = ?
		WHERE local_id = ?;`

	markRejectedQuery = `
		UPDATE records
		SET sync_status = 'conflict',
			reject_reason = ?,
			deferred = 0
		WHERE local_id = ?;`

	resetSyncingQuery = `
		UPDATE records
		SET sync_status = 'pending'
		WHERE sync_status = 'syncing';`

	statsQuery = `
		SELECT
			COALESCE(SUM(CASE WHEN sync_status = 'pending' AND deferred = 0 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN sync_status = 'syncing' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN sync_status = 'conflict' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN sync_status = 'synced' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN deferred = 1 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN needs_review = 1 THEN 1 ELSE 0 END), 0)
		FROM records;`

	purgeSyncedTombstonesQuery = `
		DELETE FROM records
		WHERE sync_status = 'synced' AND is_deleted = 1;`

	getStateQuery = `SELECT value FROM sync_state WHERE key = ?;`
	setStateQuery = `
		INSERT INTO sync_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value;`
)

// RecordFilter narrows record listings. Zero values do not filter.
type RecordFilter struct {
	Collections []models.Collection
	Statuses    []models.SyncStatus
	// Deferred selects deferred (true) or non-deferred (false) records.
	Deferred *bool
	// NeedsReview selects records by review flag.
	NeedsReview *bool
	// ModifiedBefore keeps records whose last local mutation is older.
	ModifiedBefore time.Time
	// Limit caps the number of rows; zero means no limit.
	Limit uint64
}

func applyRecordFilter(b sq.SelectBuilder, filter RecordFilter) sq.SelectBuilder {
	if len(filter.Collections) > 0 {
		collections := make([]string, 0, len(filter.Collections))
		for _, c := range filter.Collections {
			collections = append(collections, string(c))
		}
		b = b.Where(sq.Eq{"collection": collections})
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		b = b.Where(sq.Eq{"sync_status": statuses})
	}
	if filter.Deferred != nil {
		b = b.Where(sq.Eq{"deferred": *filter.Deferred})
	}
	if filter.NeedsReview != nil {
		b = b.Where(sq.Eq{"needs_review": *filter.NeedsReview})
	}
	if !filter.ModifiedBefore.IsZero() {
		b = b.Where(sq.Lt{"last_modified": toNanos(filter.ModifiedBefore)})
	}
	return b
}

// buildListRecordsQuery selects records oldest mutation first.
func buildListRecordsQuery(filter RecordFilter) (string, []any, error) {
	b := applyRecordFilter(builder.Select(recordColumns...).From(recordsTable), filter).
		OrderBy("last_modified ASC", "local_id ASC")
	if filter.Limit > 0 {
		b = b.Limit(filter.Limit)
	}
	return b.ToSql()
}

func buildCountRecordsQuery(filter RecordFilter) (string, []any, error) {
	return applyRecordFilter(builder.Select("COUNT(*)").From(recordsTable), filter).ToSql()
}

func buildSetStatusQuery(from, to models.SyncStatus, localIDs []string) (string, []any, error) {
	return builder.Update(recordsTable).
		Set("sync_status", string(to)).
		Where(sq.Eq{"sync_status": string(from), "local_id": localIDs}).
		ToSql()
}

func buildDeleteRecordsQuery(localIDs []string) (string, []any, error) {
	return builder.Delete(recordsTable).Where(sq.Eq{"local_id": localIDs}).ToSql()
}

func buildUpdateFlagQuery(column string, value bool, localIDs []string) (string, []any, error) {
	return builder.Update(recordsTable).
		Set(column, value).
		Where(sq.Eq{"local_id": localIDs}).
		ToSql()
}

func toNanos(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func fromNanos(n int64) time.Time {
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n).UTC()
}

func nullableNanos(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UnixNano()
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// encodeBaseFields stores nil as NULL so "never on the server" stays
// distinguishable from an empty server version.
func encodeBaseFields(f models.Fields) (any, error) {
	if f == nil {
		return nil, nil
	}
	encoded, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return string(encoded), nil
}
