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

const conflictsTable = "conflicts"

var conflictColumns = []string{
	"id",
	"local_id",
	"collection",
	"reason",
	"detail",
	"server_id",
	"server_fields",
	"server_updated_at",
	"server_deleted",
	"detected_at",
	"resolved_at",
}

type conflictRepository struct {
	*DB
	logger *logger.Logger
}

func NewConflictRepository(db *DB, logger *logger.Logger) ConflictRepository {
	return &conflictRepository{
		DB:     db,
		logger: logger,
	}
}

func scanConflict(row rowScanner) (models.OpenConflict, error) {
	var (
		c               models.OpenConflict
		collection      string
		reason          string
		serverID        sql.NullString
		serverFields    sql.NullString
		serverUpdatedAt sql.NullInt64
		detectedAt      int64
		resolvedAt      sql.NullInt64
	)

	err := row.Scan(
		&c.ID,
		&c.LocalID,
		&collection,
		&reason,
		&c.Detail,
		&serverID,
		&serverFields,
		&serverUpdatedAt,
		&c.ServerDeleted,
		&detectedAt,
		&resolvedAt,
	)
	if err != nil {
		return models.OpenConflict{}, err
	}

	c.Collection = models.Collection(collection)
	c.Reason = models.ConflictReason(reason)
	c.DetectedAt = fromNanos(detectedAt)
	if serverID.Valid {
		c.ServerID = models.StringPtr(serverID.String)
	}
	if serverFields.Valid && serverFields.String != "" {
		if err = json.Unmarshal([]byte(serverFields.String), &c.ServerFields); err != nil {
			return models.OpenConflict{}, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
		}
	}
	if serverUpdatedAt.Valid {
		c.ServerUpdatedAt = models.TimePtr(fromNanos(serverUpdatedAt.Int64))
	}
	if resolvedAt.Valid {
		c.ResolvedAt = models.TimePtr(fromNanos(resolvedAt.Int64))
	}

	return c, nil
}

// Open records an open conflict for a record. An already open conflict for
// the same record is replaced with the newer server side.
func (c *conflictRepository) Open(ctx context.Context, conflict models.OpenConflict) error {
	log := logger.FromContext(ctx)

	var serverFields any
	if conflict.ServerFields != nil {
		encoded, err := json.Marshal(conflict.ServerFields)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncodingColumn, err)
		}
		serverFields = string(encoded)
	}

	detectedAt := conflict.DetectedAt
	if detectedAt.IsZero() {
		detectedAt = time.Now()
	}

	return c.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := c.GetOpen(ctx, conflict.LocalID); err == nil {
			query, args, err := builder.Update(conflictsTable).
				Set("reason", string(conflict.Reason)).
				Set("detail", conflict.Detail).
				Set("server_id", nullableString(conflict.ServerID)).
				Set("server_fields", serverFields).
				Set("server_updated_at", nullableNanos(conflict.ServerUpdatedAt)).
				Set("server_deleted", conflict.ServerDeleted).
				Set("detected_at", toNanos(detectedAt)).
				Where(sq.Eq{"local_id": conflict.LocalID, "resolved_at": nil}).
				ToSql()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			return c.execLogged(ctx, "conflictRepository.Open", query, args...)
		} else if !errors.Is(err, ErrConflictNotFound) {
			log.Err(err).Str("func", "conflictRepository.Open").Msg("failed to look up open conflict")
			return err
		}

		query, args, err := builder.Insert(conflictsTable).
			Columns("local_id", "collection", "reason", "detail", "server_id",
				"server_fields", "server_updated_at", "server_deleted", "detected_at").
			Values(
				conflict.LocalID,
				string(conflict.Collection),
				string(conflict.Reason),
				conflict.Detail,
				nullableString(conflict.ServerID),
				serverFields,
				nullableNanos(conflict.ServerUpdatedAt),
				conflict.ServerDeleted,
				toNanos(detectedAt),
			).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		return c.execLogged(ctx, "conflictRepository.Open", query, args...)
	})
}

func (c *conflictRepository) GetOpen(ctx context.Context, localID string) (models.OpenConflict, error) {
	query, args, err := builder.Select(conflictColumns...).From(conflictsTable).
		Where(sq.Eq{"local_id": localID, "resolved_at": nil}).ToSql()
	if err != nil {
		return models.OpenConflict{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	conflict, err := scanConflict(c.conn(ctx).QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.OpenConflict{}, ErrConflictNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "conflictRepository.GetOpen").
			Str("local_id", localID).
			Msg("failed to scan conflict row")
		return models.OpenConflict{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return conflict, nil
}

// ListOpen returns unresolved conflicts oldest first.
func (c *conflictRepository) ListOpen(ctx context.Context) ([]models.OpenConflict, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.Select(conflictColumns...).From(conflictsTable).
		Where(sq.Eq{"resolved_at": nil}).
		OrderBy("detected_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "conflictRepository.ListOpen").Msg("failed to query open conflicts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var conflicts []models.OpenConflict
	for rows.Next() {
		conflict, err := scanConflict(rows)
		if err != nil {
			log.Err(err).Str("func", "conflictRepository.ListOpen").Msg("failed to scan conflict row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		conflicts = append(conflicts, conflict)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return conflicts, nil
}

// OpenLocalIDs returns the set of local ids with an unresolved conflict.
func (c *conflictRepository) OpenLocalIDs(ctx context.Context) (map[string]struct{}, error) {
	query, args, err := builder.Select("local_id").From(conflictsTable).
		Where(sq.Eq{"resolved_at": nil}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "conflictRepository.OpenLocalIDs").
			Msg("failed to query open conflict ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids[id] = struct{}{}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

func (c *conflictRepository) Resolve(ctx context.Context, localID string, at time.Time) error {
	query, args, err := builder.Update(conflictsTable).
		Set("resolved_at", toNanos(at)).
		Where(sq.Eq{"local_id": localID, "resolved_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := c.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "conflictRepository.Resolve").
			Str("local_id", localID).
			Msg("failed to resolve conflict")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrConflictNotFound
	}

	return nil
}

// PurgeResolved removes resolved conflict rows.
func (c *conflictRepository) PurgeResolved(ctx context.Context) (int64, error) {
	query, args, err := builder.Delete(conflictsTable).
		Where(sq.NotEq{"resolved_at": nil}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := c.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "conflictRepository.PurgeResolved").
			Msg("failed to purge resolved conflicts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return result.RowsAffected()
}

func (c *conflictRepository) execLogged(ctx context.Context, fn, query string, args ...any) error {
	if _, err := c.conn(ctx).ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
