// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "context"

// Validator checks a value before the sync service applies it. A
// [Change] is validated as a whole; fields names the attributes to check
// when only part of the record matters.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
