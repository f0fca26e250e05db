// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/resto-sync/internal/validators"
	"github.com/MKhiriev/resto-sync/models"
)

// SyncServiceWrapper decorates a SyncService.
type SyncServiceWrapper interface {
	SyncService
	Wrap(inner SyncService) SyncService
}

// SyncValidationService refuses malformed pull and push requests before
// they reach the wrapped SyncService.
type SyncValidationService struct {
	inner     SyncService
	validator validators.Validator
}

func NewSyncValidationService() SyncServiceWrapper {
	return &SyncValidationService{
		validator: validators.NewChangeValidator(),
	}
}

func (v *SyncValidationService) Pull(ctx context.Context, request models.PullRequest) (models.PullResponse, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.PullResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Pull(ctx, request)
}

func (v *SyncValidationService) Push(ctx context.Context, request models.PushRequest) (models.PushResponse, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.PushResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Push(ctx, request)
}

func (v *SyncValidationService) Wrap(inner SyncService) SyncService {
	v.inner = inner
	return v
}
