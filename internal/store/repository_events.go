// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/resto-sync/internal/logger"
	"github.com/MKhiriev/resto-sync/models"
)

const (
	queueEventsTable   = "queue_events"
	networkEventsTable = "network_events"
)

var (
	queueEventColumns   = []string{"id", "kind", "local_id", "collection", "detail", "created_at"}
	networkEventColumns = []string{"id", "event", "connected", "reachable", "type", "quality", "latency_ms", "at"}
)

type queueEventRepository struct {
	*DB
	logger *logger.Logger
}

func NewQueueEventRepository(db *DB, logger *logger.Logger) QueueEventRepository {
	return &queueEventRepository{
		DB:     db,
		logger: logger,
	}
}

func (q *queueEventRepository) Add(ctx context.Context, event models.QueueEvent) error {
	createdAt := event.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query, args, err := builder.Insert(queueEventsTable).
		Columns("kind", "local_id", "collection", "detail", "created_at").
		Values(string(event.Kind), event.LocalID, string(event.Collection), event.Detail, toNanos(createdAt)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = q.conn(ctx).ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "queueEventRepository.Add").
			Str("kind", string(event.Kind)).
			Msg("failed to insert queue event")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// List returns the newest queue events first.
func (q *queueEventRepository) List(ctx context.Context, limit uint64) ([]models.QueueEvent, error) {
	log := logger.FromContext(ctx)

	b := builder.Select(queueEventColumns...).From(queueEventsTable).OrderBy("id DESC")
	if limit > 0 {
		b = b.Limit(limit)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "queueEventRepository.List").Msg("failed to query queue events")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var events []models.QueueEvent
	for rows.Next() {
		var (
			e          models.QueueEvent
			kind       string
			collection string
			createdAt  int64
		)
		if err = rows.Scan(&e.ID, &kind, &e.LocalID, &collection, &e.Detail, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		e.Kind = models.QueueEventKind(kind)
		e.Collection = models.Collection(collection)
		e.CreatedAt = fromNanos(createdAt)
		events = append(events, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return events, nil
}

// Purge keeps the newest keep events.
func (q *queueEventRepository) Purge(ctx context.Context, keep int) (int64, error) {
	return purgeKeepingNewest(ctx, q.DB, queueEventsTable, keep, "queueEventRepository.Purge")
}

type networkEventRepository struct {
	*DB
	logger *logger.Logger
}

func NewNetworkEventRepository(db *DB, logger *logger.Logger) NetworkEventRepository {
	return &networkEventRepository{
		DB:     db,
		logger: logger,
	}
}

func scanNetworkEvent(row rowScanner) (models.NetworkEvent, error) {
	var (
		e         models.NetworkEvent
		eventType string
		connType  string
		quality   string
		latencyMS int64
		at        int64
	)
	err := row.Scan(&e.ID, &eventType, &e.State.Connected, &e.State.Reachable, &connType, &quality, &latencyMS, &at)
	if err != nil {
		return models.NetworkEvent{}, err
	}
	e.Type = models.NetworkEventType(eventType)
	e.State.Type = models.ConnectionType(connType)
	e.State.Quality = models.Quality(quality)
	e.State.Latency = time.Duration(latencyMS) * time.Millisecond
	e.At = fromNanos(at)
	e.State.Since = e.At
	return e, nil
}

func (n *networkEventRepository) Add(ctx context.Context, event models.NetworkEvent) error {
	at := event.At
	if at.IsZero() {
		at = time.Now()
	}

	query, args, err := builder.Insert(networkEventsTable).
		Columns("event", "connected", "reachable", "type", "quality", "latency_ms", "at").
		Values(
			string(event.Type),
			event.State.Connected,
			event.State.Reachable,
			string(event.State.Type),
			string(event.State.Quality),
			event.State.Latency.Milliseconds(),
			toNanos(at),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = n.conn(ctx).ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "networkEventRepository.Add").
			Str("event", string(event.Type)).
			Msg("failed to insert network event")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// List returns the newest network events first.
func (n *networkEventRepository) List(ctx context.Context, limit uint64) ([]models.NetworkEvent, error) {
	log := logger.FromContext(ctx)

	b := builder.Select(networkEventColumns...).From(networkEventsTable).OrderBy("id DESC")
	if limit > 0 {
		b = b.Limit(limit)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := n.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "networkEventRepository.List").Msg("failed to query network events")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var events []models.NetworkEvent
	for rows.Next() {
		e, err := scanNetworkEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		events = append(events, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return events, nil
}

// LastOf returns the newest event of the given type.
func (n *networkEventRepository) LastOf(ctx context.Context, eventType models.NetworkEventType) (models.NetworkEvent, error) {
	query, args, err := builder.Select(networkEventColumns...).From(networkEventsTable).
		Where(sq.Eq{"event": string(eventType)}).
		OrderBy("at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return models.NetworkEvent{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	e, err := scanNetworkEvent(n.conn(ctx).QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.NetworkEvent{}, ErrNetworkEventNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "networkEventRepository.LastOf").
			Str("event", string(eventType)).
			Msg("failed to scan network event row")
		return models.NetworkEvent{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return e, nil
}

// Purge keeps the newest keep events.
func (n *networkEventRepository) Purge(ctx context.Context, keep int) (int64, error) {
	return purgeKeepingNewest(ctx, n.DB, networkEventsTable, keep, "networkEventRepository.Purge")
}

func purgeKeepingNewest(ctx context.Context, db *DB, table string, keep int, fn string) (int64, error) {
	query, args, err := builder.Delete(table).
		Where(sq.Expr("id NOT IN (SELECT id FROM "+table+" ORDER BY id DESC LIMIT ?)", keep)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := db.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to purge events")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return result.RowsAffected()
}
