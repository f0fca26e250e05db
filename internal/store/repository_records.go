// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/resto-sync/internal/logger"
	"github.com/MKhiriev/resto-sync/models"
)

type recordRepository struct {
	*DB
	logger *logger.Logger
}

func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	return &recordRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.Record, error) {
	var (
		record          models.Record
		collection      string
		serverID        sql.NullString
		status          string
		lastModified    int64
		serverUpdatedAt sql.NullInt64
		rejectReason    sql.NullString
		fields          string
		createdAt       int64
		baseFields      sql.NullString
	)

	err := row.Scan(
		&record.LocalID,
		&collection,
		&serverID,
		&status,
		&lastModified,
		&serverUpdatedAt,
		&record.IsDeleted,
		&record.Deferred,
		&record.NeedsReview,
		&rejectReason,
		&fields,
		&createdAt,
		&baseFields,
	)
	if err != nil {
		return models.Record{}, err
	}

	record.Collection = models.Collection(collection)
	record.SyncStatus = models.SyncStatus(status)
	record.LastModified = fromNanos(lastModified)
	record.CreatedAt = fromNanos(createdAt)
	if serverID.Valid {
		record.ServerID = models.StringPtr(serverID.String)
	}
	if serverUpdatedAt.Valid {
		record.ServerUpdatedAt = models.TimePtr(fromNanos(serverUpdatedAt.Int64))
	}
	if rejectReason.Valid {
		record.RejectReason = models.StringPtr(rejectReason.String)
	}
	if err = json.Unmarshal([]byte(fields), &record.Fields); err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	if record.Fields == nil {
		record.Fields = models.Fields{}
	}
	if baseFields.Valid {
		if err = json.Unmarshal([]byte(baseFields.String), &record.BaseFields); err != nil {
			return models.Record{}, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
		}
		if record.BaseFields == nil {
			record.BaseFields = models.Fields{}
		}
	}

	return record, nil
}

func (r *recordRepository) Get(ctx context.Context, localID string) (models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.Select(recordColumns...).From(recordsTable).
		Where(sq.Eq{"local_id": localID}).ToSql()
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, err := scanRecord(r.conn(ctx).QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Record{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.Get").
			Str("local_id", localID).
			Msg("failed to scan record row")
		return models.Record{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

func (r *recordRepository) GetByServerID(ctx context.Context, collection models.Collection, serverID string) (models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.Select(recordColumns...).From(recordsTable).
		Where(sq.Eq{"collection": string(collection), "server_id": serverID}).ToSql()
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, err := scanRecord(r.conn(ctx).QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Record{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.GetByServerID").
			Str("collection", string(collection)).
			Str("server_id", serverID).
			Msg("failed to scan record row")
		return models.Record{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

// Save upserts records. The stored last_modified never moves backward.
func (r *recordRepository) Save(ctx context.Context, records ...models.Record) error {
	log := logger.FromContext(ctx)

	for _, record := range records {
		if record.SyncStatus == models.SyncStatusSynced && !record.HasServerID() {
			return fmt.Errorf("%w: local_id=%s", ErrSyncedWithoutServerID, record.LocalID)
		}

		fields := record.Fields
		if fields == nil {
			fields = models.Fields{}
		}
		encoded, err := json.Marshal(fields)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncodingColumn, err)
		}
		hash, err := fields.Hash()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncodingColumn, err)
		}
		base, err := encodeBaseFields(record.BaseFields)
		if err != nil {
			return err
		}

		createdAt := record.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}

		query, args, err := builder.Insert(recordsTable).
			Columns(recordInsertColumns...).
			Values(
				record.LocalID,
				string(record.Collection),
				nullableString(record.ServerID),
				string(record.SyncStatus),
				toNanos(record.LastModified),
				nullableNanos(record.ServerUpdatedAt),
				record.IsDeleted,
				record.Deferred,
				record.NeedsReview,
				nullableString(record.RejectReason),
				string(encoded),
				toNanos(createdAt),
				base,
				hash,
			).
			Suffix(upsertRecordSuffix).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		result, err := r.conn(ctx).ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).
				Str("func", "recordRepository.Save").
				Str("local_id", record.LocalID).
				Str("collection", string(record.Collection)).
				Msg("failed to execute upsert for record")
			return fmt.Errorf("%w: local_id=%s: %w", ErrExecutingStatement, record.LocalID, err)
		}
		if affected, err := result.RowsAffected(); err == nil && affected == 0 {
			return fmt.Errorf("%w: local_id=%s", ErrRecordNotSaved, record.LocalID)
		}
	}

	return nil
}

func (r *recordRepository) Delete(ctx context.Context, localIDs ...string) error {
	if len(localIDs) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRecordsQuery(localIDs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.conn(ctx).ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "recordRepository.Delete").
			Strs("local_ids", localIDs).
			Msg("failed to delete records")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *recordRepository) List(ctx context.Context, filter RecordFilter) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecordsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.List").
			Msg("failed to execute query for listing records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			log.Err(err).
				Str("func", "recordRepository.List").
				Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "recordRepository.List").
			Msg("error iterating record rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (r *recordRepository) Count(ctx context.Context, filter RecordFilter) (int, error) {
	query, args, err := buildCountRecordsQuery(filter)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err = r.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "recordRepository.Count").
			Msg("failed to count records")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return n, nil
}

func (r *recordRepository) Stats(ctx context.Context) (models.QueueStats, error) {
	var stats models.QueueStats

	err := r.conn(ctx).QueryRowContext(ctx, statsQuery).Scan(
		&stats.Pending,
		&stats.Syncing,
		&stats.Conflict,
		&stats.Synced,
		&stats.Deferred,
		&stats.NeedsReview,
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "recordRepository.Stats").
			Msg("failed to read queue statistics")
		return models.QueueStats{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return stats, nil
}

func (r *recordRepository) SetStatus(ctx context.Context, from, to models.SyncStatus, localIDs ...string) (int64, error) {
	if len(localIDs) == 0 {
		return 0, nil
	}
	if to == models.SyncStatusSynced {
		return 0, ErrSyncedWithoutServerID
	}

	query, args, err := buildSetStatusQuery(from, to, localIDs)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "recordRepository.SetStatus", query, args...)
}

func (r *recordRepository) ResetSyncing(ctx context.Context) (int64, error) {
	return r.exec(ctx, "recordRepository.ResetSyncing", resetSyncingQuery)
}

// MarkSynced flips a syncing record to synced when its last_modified still
// equals snapshot. A record edited since the snapshot only receives the
// server id and stays pending; flipped reports which case applied.
func (r *recordRepository) MarkSynced(ctx context.Context, localID, serverID string, serverUpdatedAt *time.Time, acked models.Fields, snapshot time.Time) (bool, error) {
	if serverID == "" {
		return false, ErrSyncedWithoutServerID
	}
	if acked == nil {
		acked = models.Fields{}
	}
	base, err := encodeBaseFields(acked)
	if err != nil {
		return false, err
	}

	var flipped bool
	err = r.WithinTx(ctx, func(ctx context.Context) error {
		n, err := r.exec(ctx, "recordRepository.MarkSynced", flipSyncedQuery,
			serverID, nullableNanos(serverUpdatedAt), base, localID, toNanos(snapshot))
		if err != nil {
			return err
		}
		if n > 0 {
			flipped = true
			return nil
		}

		n, err = r.exec(ctx, "recordRepository.MarkSynced", assignServerIDQuery,
			serverID, nullableNanos(serverUpdatedAt), base, localID)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrRecordNotFound
		}
		return nil
	})

	return flipped, err
}

func (r *recordRepository) MarkRejected(ctx context.Context, localID, reason string) error {
	n, err := r.exec(ctx, "recordRepository.MarkRejected", markRejectedQuery, reason, localID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *recordRepository) SetDeferred(ctx context.Context, deferred bool, localIDs ...string) error {
	return r.setFlag(ctx, "recordRepository.SetDeferred", "deferred", deferred, localIDs)
}

func (r *recordRepository) SetNeedsReview(ctx context.Context, needsReview bool, localIDs ...string) error {
	return r.setFlag(ctx, "recordRepository.SetNeedsReview", "needs_review", needsReview, localIDs)
}

func (r *recordRepository) PurgeSyncedTombstones(ctx context.Context) (int64, error) {
	return r.exec(ctx, "recordRepository.PurgeSyncedTombstones", purgeSyncedTombstonesQuery)
}

func (r *recordRepository) setFlag(ctx context.Context, fn, column string, value bool, localIDs []string) error {
	if len(localIDs) == 0 {
		return nil
	}

	query, args, err := buildUpdateFlagQuery(column, value, localIDs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = r.exec(ctx, fn, query, args...)
	return err
}

func (r *recordRepository) exec(ctx context.Context, fn, query string, args ...any) (int64, error) {
	result, err := r.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", fn).
			Msg("failed to execute statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return n, nil
}
