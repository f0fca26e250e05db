// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/resto-sync/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validPushRequest() models.PushRequest {
	cs := models.ChangeSet{}
	cs.Add(models.CollectionOrders, models.OperationCreated, models.ChangeRecord{
		LocalID: "local-1",
		Fields:  models.Fields{"status": "open"},
	})
	return models.PushRequest{Changes: cs, LastPulledAt: 10}
}

func validChange(op models.Operation) Change {
	c := Change{
		Collection: models.CollectionMenuItems,
		Operation:  op,
		Record: models.ChangeRecord{
			LocalID: "local-1",
			Fields:  models.Fields{"name": "Soup", "price": 4.5},
		},
	}
	if op != models.OperationCreated {
		c.Record.ID = "srv-1"
	}
	return c
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestNewChangeValidator(t *testing.T) {
	v := NewChangeValidator()
	require.NotNil(t, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewChangeValidator()
	ctx := context.Background()

	pull := models.PullRequest{SchemaVersion: 1}
	push := validPushRequest()
	change := validChange(models.OperationCreated)

	assert.NoError(t, v.Validate(ctx, pull))
	assert.NoError(t, v.Validate(ctx, &pull))
	assert.NoError(t, v.Validate(ctx, push))
	assert.NoError(t, v.Validate(ctx, &push))
	assert.NoError(t, v.Validate(ctx, change))
	assert.NoError(t, v.Validate(ctx, &change))

	assert.ErrorIs(t, v.Validate(ctx, "nope"), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// Pull requests
// ---------------------------------------------------------------------------

func TestValidate_PullRequest(t *testing.T) {
	tests := []struct {
		name    string
		request models.PullRequest
		fields  []string
		wantErr error
	}{
		{"first sync", models.PullRequest{SchemaVersion: 1}, nil, nil},
		{"negative cursor", models.PullRequest{LastPulledAt: -1, SchemaVersion: 1}, nil, ErrInvalidCursor},
		{"missing schema", models.PullRequest{LastPulledAt: 5}, nil, ErrInvalidSchemaVersion},
		{"negative limit", models.PullRequest{SchemaVersion: 1, Limit: -5}, nil, ErrInvalidLimit},
		{"only cursor checked", models.PullRequest{LastPulledAt: 5}, []string{FieldCursor}, nil},
		{"unknown field", models.PullRequest{SchemaVersion: 1}, []string{"bogus"}, ErrUnknownField},
	}

	v := NewChangeValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.request, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// Push requests
// ---------------------------------------------------------------------------

func TestValidate_PushRequest(t *testing.T) {
	v := NewChangeValidator()
	ctx := context.Background()

	t.Run("empty changes", func(t *testing.T) {
		err := v.Validate(ctx, models.PushRequest{Changes: models.ChangeSet{}})
		assert.ErrorIs(t, err, ErrEmptyChanges)
	})

	t.Run("unknown collection", func(t *testing.T) {
		req := validPushRequest()
		req.Changes.Add("invoices", models.OperationCreated, models.ChangeRecord{LocalID: "x"})
		err := v.Validate(ctx, req)
		assert.ErrorIs(t, err, ErrUnknownCollection)
		assert.Contains(t, err.Error(), "invoices")
	})

	t.Run("negative cursor", func(t *testing.T) {
		req := validPushRequest()
		req.LastPulledAt = -3
		assert.ErrorIs(t, v.Validate(ctx, req), ErrInvalidCursor)
	})
}

// ---------------------------------------------------------------------------
// Single changes
// ---------------------------------------------------------------------------

func TestValidate_Change(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Change)
		op      models.Operation
		wantErr error
	}{
		{"valid created", func(c *Change) {}, models.OperationCreated, nil},
		{"valid updated", func(c *Change) {}, models.OperationUpdated, nil},
		{"valid deleted without fields", func(c *Change) { c.Record.Fields = nil }, models.OperationDeleted, nil},
		{"created without local id", func(c *Change) { c.Record.LocalID = "" }, models.OperationCreated, ErrEmptyLocalID},
		{"created with server id", func(c *Change) { c.Record.ID = "srv-9" }, models.OperationCreated, ErrUnexpectedServerID},
		{"updated without server id", func(c *Change) { c.Record.ID = "" }, models.OperationUpdated, ErrEmptyServerID},
		{"deleted without server id", func(c *Change) { c.Record.ID = "" }, models.OperationDeleted, ErrEmptyServerID},
		{"missing required field", func(c *Change) { delete(c.Record.Fields, "price") }, models.OperationCreated, ErrMissingRequiredField},
		{"blank required field", func(c *Change) { c.Record.Fields["name"] = "  " }, models.OperationUpdated, ErrMissingRequiredField},
		{"unknown collection", func(c *Change) { c.Collection = "invoices" }, models.OperationCreated, ErrUnknownCollection},
		{"unknown operation", func(c *Change) { c.Operation = "moved" }, models.OperationCreated, ErrUnknownOperation},
	}

	v := NewChangeValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validChange(tt.op)
			tt.mutate(&c)

			err := v.Validate(context.Background(), c)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequiredFields(t *testing.T) {
	for _, c := range models.AllCollections {
		assert.NotEmpty(t, RequiredFields(c), c)
	}
	assert.Empty(t, RequiredFields("invoices"))
}
