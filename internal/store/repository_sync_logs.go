// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/resto-sync/internal/logger"
	"github.com/MKhiriev/resto-sync/models"
)

const syncLogsTable = "sync_logs"

var syncLogColumns = []string{
	"id",
	"type",
	"sync_trigger",
	"status",
	"started_at",
	"finished_at",
	"pushed",
	"pulled",
	"conflicts_resolved",
	"rejected",
	"errors",
}

type syncLogRepository struct {
	*DB
	logger *logger.Logger
}

func NewSyncLogRepository(db *DB, logger *logger.Logger) SyncLogRepository {
	return &syncLogRepository{
		DB:     db,
		logger: logger,
	}
}

func scanSyncLog(row rowScanner) (models.SyncLog, error) {
	var (
		entry      models.SyncLog
		syncType   string
		trigger    string
		status     string
		startedAt  int64
		finishedAt sql.NullInt64
		errorsJSON string
	)

	err := row.Scan(
		&entry.ID,
		&syncType,
		&trigger,
		&status,
		&startedAt,
		&finishedAt,
		&entry.Pushed,
		&entry.Pulled,
		&entry.ConflictsResolved,
		&entry.Rejected,
		&errorsJSON,
	)
	if err != nil {
		return models.SyncLog{}, err
	}

	entry.Type = models.SyncType(syncType)
	entry.Trigger = models.SyncTrigger(trigger)
	entry.Status = models.SyncLogStatus(status)
	entry.StartedAt = fromNanos(startedAt)
	if finishedAt.Valid {
		entry.FinishedAt = models.TimePtr(fromNanos(finishedAt.Int64))
	}
	if err = json.Unmarshal([]byte(errorsJSON), &entry.Errors); err != nil {
		return models.SyncLog{}, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}

	return entry, nil
}

// Create inserts a started sync log and returns its id.
func (s *syncLogRepository) Create(ctx context.Context, entry models.SyncLog) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.Insert(syncLogsTable).
		Columns("type", "sync_trigger", "status", "started_at").
		Values(string(entry.Type), string(entry.Trigger), string(models.SyncLogStarted), toNanos(entry.StartedAt)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "syncLogRepository.Create").
			Str("type", string(entry.Type)).
			Msg("failed to insert sync log")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

// Finalize writes the terminal status and counts. Only a started log can be
// finalized; any later attempt returns ErrSyncLogFinalized.
func (s *syncLogRepository) Finalize(ctx context.Context, entry models.SyncLog) error {
	log := logger.FromContext(ctx)

	errs := entry.Errors
	if errs == nil {
		errs = []models.SyncError{}
	}
	encoded, err := json.Marshal(errs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}

	query, args, err := builder.Update(syncLogsTable).
		Set("status", string(entry.Status)).
		Set("finished_at", nullableNanos(entry.FinishedAt)).
		Set("pushed", entry.Pushed).
		Set("pulled", entry.Pulled).
		Set("conflicts_resolved", entry.ConflictsResolved).
		Set("rejected", entry.Rejected).
		Set("errors", string(encoded)).
		Where(sq.Eq{"id": entry.ID, "status": string(models.SyncLogStarted)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "syncLogRepository.Finalize").
			Int64("id", entry.ID).
			Msg("failed to finalize sync log")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrSyncLogFinalized
	}

	return nil
}

func (s *syncLogRepository) Get(ctx context.Context, id int64) (models.SyncLog, error) {
	query, args, err := builder.Select(syncLogColumns...).From(syncLogsTable).
		Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.SyncLog{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return s.getOne(ctx, "syncLogRepository.Get", query, args...)
}

// LastSuccessful returns the most recently finished completed sync log.
func (s *syncLogRepository) LastSuccessful(ctx context.Context) (models.SyncLog, error) {
	query, args, err := builder.Select(syncLogColumns...).From(syncLogsTable).
		Where(sq.Eq{"status": string(models.SyncLogCompleted)}).
		OrderBy("finished_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return models.SyncLog{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return s.getOne(ctx, "syncLogRepository.LastSuccessful", query, args...)
}

// List returns the newest logs first.
func (s *syncLogRepository) List(ctx context.Context, limit uint64) ([]models.SyncLog, error) {
	log := logger.FromContext(ctx)

	b := builder.Select(syncLogColumns...).From(syncLogsTable).OrderBy("id DESC")
	if limit > 0 {
		b = b.Limit(limit)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "syncLogRepository.List").Msg("failed to query sync logs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var logs []models.SyncLog
	for rows.Next() {
		entry, err := scanSyncLog(rows)
		if err != nil {
			log.Err(err).Str("func", "syncLogRepository.List").Msg("failed to scan sync log row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		logs = append(logs, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return logs, nil
}

// Purge removes finished logs beyond the newest keep entries.
func (s *syncLogRepository) Purge(ctx context.Context, keep int) (int64, error) {
	query, args, err := builder.Delete(syncLogsTable).
		Where(sq.NotEq{"status": string(models.SyncLogStarted)}).
		Where(sq.Expr("id NOT IN (SELECT id FROM sync_logs ORDER BY id DESC LIMIT ?)", keep)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncLogRepository.Purge").
			Msg("failed to purge sync logs")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return result.RowsAffected()
}

func (s *syncLogRepository) getOne(ctx context.Context, fn, query string, args ...any) (models.SyncLog, error) {
	entry, err := scanSyncLog(s.conn(ctx).QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncLog{}, ErrSyncLogNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", fn).
			Msg("failed to scan sync log row")
		return models.SyncLog{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return entry, nil
}
