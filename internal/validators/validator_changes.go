// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/resto-sync/models"
)

// ChangeValidator checks pull and push requests of the sync contract.
// Request-level checks reject the whole call; Change checks produce
// per-record rejections.
type ChangeValidator struct {
}

func NewChangeValidator() Validator {
	return &ChangeValidator{}
}

func (v *ChangeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PullRequest:
		return v.validatePullRequest(ctx, value, fields...)
	case *models.PullRequest:
		return v.validatePullRequest(ctx, *value, fields...)

	case models.PushRequest:
		return v.validatePushRequest(ctx, value, fields...)
	case *models.PushRequest:
		return v.validatePushRequest(ctx, *value, fields...)

	case Change:
		return v.validateChange(ctx, value, fields...)
	case *Change:
		return v.validateChange(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ChangeValidator) validatePullRequest(_ context.Context, request models.PullRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCursor, FieldSchemaVersion, FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldCursor:
			if request.LastPulledAt < 0 {
				return ErrInvalidCursor
			}
		case FieldSchemaVersion:
			if request.SchemaVersion <= 0 {
				return ErrInvalidSchemaVersion
			}
		case FieldLimit:
			if request.Limit < 0 {
				return ErrInvalidLimit
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ChangeValidator) validatePushRequest(_ context.Context, request models.PushRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCursor, FieldChanges}
	}

	for _, f := range fields {
		switch f {
		case FieldCursor:
			if request.LastPulledAt < 0 {
				return ErrInvalidCursor
			}
		case FieldChanges:
			if request.Changes.IsEmpty() {
				return ErrEmptyChanges
			}
			for collection := range request.Changes {
				if !collection.IsValid() {
					return fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ChangeValidator) validateChange(_ context.Context, change Change, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCollection, FieldLocalID, FieldServerID, FieldRequiredFields}
	}

	for _, f := range fields {
		switch f {
		case FieldCollection:
			if !change.Collection.IsValid() {
				return fmt.Errorf("%w: %s", ErrUnknownCollection, change.Collection)
			}
		case FieldLocalID:
			if change.Operation == models.OperationCreated && change.Record.LocalID == "" {
				return ErrEmptyLocalID
			}
		case FieldServerID:
			switch change.Operation {
			case models.OperationCreated:
				if change.Record.ID != "" {
					return ErrUnexpectedServerID
				}
			case models.OperationUpdated, models.OperationDeleted:
				if change.Record.ID == "" {
					return ErrEmptyServerID
				}
			default:
				return ErrUnknownOperation
			}
		case FieldRequiredFields:
			if change.Operation == models.OperationDeleted {
				continue
			}
			for _, name := range requiredFields[change.Collection] {
				if !change.Record.Fields.Has(name) {
					return fmt.Errorf("%w: %s", ErrMissingRequiredField, name)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
