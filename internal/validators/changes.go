// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"github.com/MKhiriev/resto-sync/models"
)

// Field name constants used to specify which fields should be validated.
const (
	// FieldCursor targets the lastPulledAt watermark of pull and push requests.
	FieldCursor = "last_pulled_at"

	// FieldSchemaVersion targets the client schema version of a pull request.
	FieldSchemaVersion = "schema_version"

	// FieldLimit targets the page size of a pull request.
	FieldLimit = "limit"

	// FieldChanges targets the change set of a push request.
	FieldChanges = "changes"

	// FieldCollection targets the collection of a single change.
	FieldCollection = "collection"

	// FieldLocalID targets the device-local identifier of a created record.
	FieldLocalID = "local_id"

	// FieldServerID targets the server identifier of updated and deleted records.
	FieldServerID = "server_id"

	// FieldRequiredFields checks the per-collection mandatory entity fields.
	FieldRequiredFields = "required_fields"
)

// requiredFields lists the entity fields a created or updated record must
// carry, per collection.
var requiredFields = map[models.Collection][]string{
	models.CollectionOrders:    {"status"},
	models.CollectionMenuItems: {"name", "price"},
	models.CollectionCustomers: {"name"},
	models.CollectionStaff:     {"name", "role"},
	models.CollectionShifts:    {"staffId", "startsAt"},
}

// RequiredFields returns the mandatory fields of collection.
func RequiredFields(collection models.Collection) []string {
	return requiredFields[collection]
}

// Change is a single pushed record together with the bucket it arrived in.
type Change struct {
	Collection models.Collection
	Operation  models.Operation
	Record     models.ChangeRecord
}
