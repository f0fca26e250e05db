// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Collection names a synchronized collection of records.
type Collection string

const (
	CollectionOrders    Collection = "orders"
	CollectionMenuItems Collection = "menu_items"
	CollectionCustomers Collection = "customers"
	CollectionStaff     Collection = "staff"
	CollectionShifts    Collection = "shifts"
)

// AllCollections lists every collection managed by the sync engine in the
// order they are pushed: reference data first, then data that refers to it.
var AllCollections = []Collection{
	CollectionMenuItems,
	CollectionStaff,
	CollectionCustomers,
	CollectionShifts,
	CollectionOrders,
}

// IsValid reports whether c is a known collection.
func (c Collection) IsValid() bool {
	for _, known := range AllCollections {
		if c == known {
			return true
		}
	}
	return false
}

func (c Collection) String() string {
	return string(c)
}
