// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/resto-sync/internal/adapter"
	"github.com/MKhiriev/resto-sync/internal/config"
	"github.com/MKhiriev/resto-sync/internal/logger"
	"github.com/MKhiriev/resto-sync/internal/store"
	"github.com/MKhiriev/resto-sync/internal/validators"
	"github.com/MKhiriev/resto-sync/models"
)

// defaultConnectionWait bounds how long Recover waits for connectivity.
const defaultConnectionWait = 30 * time.Second

type recoveryService struct {
	refresher CredentialRefresher
	monitor   NetworkMonitor

	baseDelay      time.Duration
	maxDelay       time.Duration
	factor         float64
	maxAttempts    int
	connectionWait time.Duration

	logger *logger.Logger
}

// NewRecoveryService creates the error classifier and retry driver. refresher
// and monitor may be nil; auth and network failures are then not recovered.
func NewRecoveryService(cfg config.ClientSync, refresher CredentialRefresher, monitor NetworkMonitor, logger *logger.Logger) Recovery {
	r := &recoveryService{
		refresher:      refresher,
		monitor:        monitor,
		baseDelay:      cfg.RetryBaseDelay,
		maxDelay:       cfg.RetryMaxDelay,
		factor:         cfg.RetryBackoffFactor,
		maxAttempts:    cfg.MaxRetryCount,
		connectionWait: defaultConnectionWait,
		logger:         logger,
	}
	if r.baseDelay <= 0 {
		r.baseDelay = config.DefaultRetryBaseDelay
	}
	if r.maxDelay <= 0 {
		r.maxDelay = config.DefaultRetryMaxDelay
	}
	if r.factor < 1 {
		r.factor = config.DefaultRetryBackoffFactor
	}
	if r.maxAttempts <= 0 {
		r.maxAttempts = config.DefaultMaxRetryCount
	}
	return r
}

func (r *recoveryService) Classify(err error) models.SyncError {
	if err == nil {
		return models.SyncError{}
	}

	code, retryable := classify(err)
	return models.SyncError{
		Code:      code,
		Message:   err.Error(),
		Retryable: retryable,
	}
}

func classify(err error) (models.ErrorCode, bool) {
	var netErr net.Error

	switch {
	case errors.Is(err, context.Canceled):
		return models.ErrorCodeCanceled, false

	case errors.Is(err, adapter.ErrTimeout),
		errors.Is(err, adapter.ErrGatewayTimeout),
		errors.Is(err, context.DeadlineExceeded):
		return models.ErrorCodeTimeout, true
	case errors.Is(err, adapter.ErrDNS):
		return models.ErrorCodeDNS, true
	case errors.Is(err, adapter.ErrUnreachable),
		errors.Is(err, ErrServerUnreachable):
		return models.ErrorCodeUnreachable, true
	case errors.Is(err, ErrOffline):
		return models.ErrorCodeNetwork, true

	case errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable),
		errors.Is(err, adapter.ErrTooManyRequests):
		return models.ErrorCodeServer, true
	case errors.Is(err, adapter.ErrInvalidResponse),
		errors.Is(err, adapter.ErrInvalidSignature):
		return models.ErrorCodeServer, false

	// auth is retryable only once Recover refreshed the credential
	case errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrForbidden),
		errors.Is(err, adapter.ErrNoToken):
		return models.ErrorCodeAuth, false

	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrUnprocessable),
		errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, ErrInvalidRecord),
		errors.Is(err, ErrInvalidSyncType),
		errors.Is(err, validators.ErrMissingRequiredField),
		errors.Is(err, validators.ErrUnknownCollection):
		return models.ErrorCodeValidation, false
	case errors.Is(err, adapter.ErrConflict):
		return models.ErrorCodeConflict, false

	case isStorageError(err):
		return models.ErrorCodeStorage, false

	case errors.As(err, &netErr):
		if netErr.Timeout() {
			return models.ErrorCodeTimeout, true
		}
		return models.ErrorCodeNetwork, true
	}

	return models.ErrorCodeUnknown, false
}

var storageErrors = []error{
	store.ErrBuildingSQLQuery,
	store.ErrExecutingQuery,
	store.ErrBeginningTransaction,
	store.ErrCommitingTransaction,
	store.ErrExecutingStatement,
	store.ErrScanningRow,
	store.ErrScanningRows,
	store.ErrEncodingColumn,
	store.ErrRecordNotSaved,
	store.ErrSyncedWithoutServerID,
	store.ErrSyncLogFinalized,
	ErrApplyFailed,
	ErrSyncLogFailed,
}

func isStorageError(err error) bool {
	for _, target := range storageErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (r *recoveryService) Recover(ctx context.Context, err error) error {
	log := logger.FromContext(ctx)

	code, _ := classify(err)
	switch code {
	case models.ErrorCodeAuth:
		if r.refresher == nil {
			return fmt.Errorf("%w: no credential refresher: %w", ErrCredentialRefreshFailed, err)
		}
		if refreshErr := r.refresher.Refresh(ctx); refreshErr != nil {
			log.Err(refreshErr).Str("func", "recoveryService.Recover").Msg("credential refresh failed")
			return fmt.Errorf("%w: %w", ErrCredentialRefreshFailed, refreshErr)
		}
		log.Info().Str("func", "recoveryService.Recover").Msg("credential refreshed")
		return nil

	case models.ErrorCodeNetwork, models.ErrorCodeTimeout, models.ErrorCodeDNS, models.ErrorCodeUnreachable:
		if r.monitor == nil || r.monitor.GetState().Connected {
			return nil
		}
		log.Info().Str("func", "recoveryService.Recover").Msg("waiting for connection")
		if !r.monitor.WaitForConnection(ctx, r.connectionWait) {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return ErrOffline
		}
		return nil

	case models.ErrorCodeServer:
		return nil
	}

	return fmt.Errorf("%w: %w", ErrNotRecoverable, err)
}

// Backoff returns min(maxDelay, baseDelay * factor^attempt).
func (r *recoveryService) Backoff(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	delay := float64(r.baseDelay) * math.Pow(r.factor, float64(attempt))
	if delay >= float64(r.maxDelay) || math.IsInf(delay, 0) || math.IsNaN(delay) {
		return r.maxDelay
	}
	return time.Duration(delay)
}

func (r *recoveryService) Do(ctx context.Context, op func(ctx context.Context) error) error {
	log := logger.FromContext(ctx)

	attempt := 0
	backoff := retry.BackoffFunc(func() (time.Duration, bool) {
		if attempt+1 >= r.maxAttempts {
			return 0, true
		}
		d := r.Backoff(attempt)
		attempt++
		return d, false
	})

	refreshed := false
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := op(ctx)
		if err == nil {
			return nil
		}

		code, retryable := classify(err)
		if code == models.ErrorCodeAuth && !refreshed {
			if recoverErr := r.Recover(ctx, err); recoverErr != nil {
				return errors.Join(err, recoverErr)
			}
			refreshed = true
			return retry.RetryableError(err)
		}
		if !retryable {
			return err
		}

		log.Warn().Err(err).
			Str("func", "recoveryService.Do").
			Str("code", string(code)).
			Int("attempt", attempt+1).
			Msg("retryable failure")

		if recoverErr := r.Recover(ctx, err); recoverErr != nil {
			return errors.Join(err, recoverErr)
		}
		return retry.RetryableError(err)
	})
}
