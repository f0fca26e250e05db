// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidCursor        = errors.New("invalid lastPulledAt cursor")
	ErrInvalidSchemaVersion = errors.New("invalid schema version")
	ErrInvalidLimit         = errors.New("invalid limit")
	ErrEmptyChanges         = errors.New("changes cannot be empty")
	ErrUnknownCollection    = errors.New("unknown collection")
	ErrEmptyLocalID         = errors.New("localId is required")
	ErrEmptyServerID        = errors.New("id is required for updated and deleted records")
	ErrUnexpectedServerID   = errors.New("created records cannot carry an id")
	ErrMissingRequiredField = errors.New("required field is missing")
	ErrUnknownOperation     = errors.New("unknown operation")
)
