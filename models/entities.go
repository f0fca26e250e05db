// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"
)

// Typed views of the synchronized collections. Each entity has an explicit
// mapping table translating struct fields to and from [Fields], so the sync
// engine can stay generic while application code works with structs.

// OrderLine is a single line item of an order.
type OrderLine struct {
	MenuItemID string
	Name       string
	Quantity   float64
	Price      float64
}

// Order is a restaurant order.
type Order struct {
	Status              string
	PaymentStatus       string
	TableNumber         string
	Total               float64
	Tax                 float64
	Notes               string
	SpecialInstructions string
	Lines               []OrderLine
	Tags                []string
}

// MenuItem is a menu entry.
type MenuItem struct {
	Name        string
	Category    string
	Description string
	Price       float64
	IsAvailable bool
	Tags        []string
	Allergens   []string
}

// Customer is a guest profile.
type Customer struct {
	Name                string
	Phone               string
	Email               string
	LoyaltyPoints       float64
	LoyaltyTier         string
	Notes               string
	PreferenceOverrides map[string]string
	PreferenceTags      []string
	FavoriteItems       []string
}

// StaffMember is an employee.
type StaffMember struct {
	Name       string
	Role       string
	Phone      string
	HourlyRate float64
	Active     bool
	Notes      string
}

// Shift is a scheduled staff shift.
type Shift struct {
	StaffID    string
	StartsAt   time.Time
	EndsAt     time.Time
	Status     string
	ApprovedBy string
	Notes      string
}

type fieldMapping[T any] struct {
	name string
	get  func(*T) any
	set  func(*T, any)
}

var orderMapping = []fieldMapping[Order]{
	{"status", func(o *Order) any { return o.Status }, func(o *Order, v any) { o.Status = asString(v) }},
	{"paymentStatus", func(o *Order) any { return o.PaymentStatus }, func(o *Order, v any) { o.PaymentStatus = asString(v) }},
	{"tableNumber", func(o *Order) any { return o.TableNumber }, func(o *Order, v any) { o.TableNumber = asString(v) }},
	{"total", func(o *Order) any { return o.Total }, func(o *Order, v any) { o.Total = asFloat(v) }},
	{"tax", func(o *Order) any { return o.Tax }, func(o *Order, v any) { o.Tax = asFloat(v) }},
	{"notes", func(o *Order) any { return o.Notes }, func(o *Order, v any) { o.Notes = asString(v) }},
	{"specialInstructions", func(o *Order) any { return o.SpecialInstructions }, func(o *Order, v any) { o.SpecialInstructions = asString(v) }},
	{"lines", func(o *Order) any { return orderLinesToAny(o.Lines) }, func(o *Order, v any) { o.Lines = orderLinesFromAny(v) }},
	{"tags", func(o *Order) any { return stringsToAny(o.Tags) }, func(o *Order, v any) { o.Tags = asStrings(v) }},
}

var menuItemMapping = []fieldMapping[MenuItem]{
	{"name", func(m *MenuItem) any { return m.Name }, func(m *MenuItem, v any) { m.Name = asString(v) }},
	{"category", func(m *MenuItem) any { return m.Category }, func(m *MenuItem, v any) { m.Category = asString(v) }},
	{"description", func(m *MenuItem) any { return m.Description }, func(m *MenuItem, v any) { m.Description = asString(v) }},
	{"price", func(m *MenuItem) any { return m.Price }, func(m *MenuItem, v any) { m.Price = asFloat(v) }},
	{"isAvailable", func(m *MenuItem) any { return m.IsAvailable }, func(m *MenuItem, v any) { m.IsAvailable = asBool(v) }},
	{"tags", func(m *MenuItem) any { return stringsToAny(m.Tags) }, func(m *MenuItem, v any) { m.Tags = asStrings(v) }},
	{"allergens", func(m *MenuItem) any { return stringsToAny(m.Allergens) }, func(m *MenuItem, v any) { m.Allergens = asStrings(v) }},
}

var customerMapping = []fieldMapping[Customer]{
	{"name", func(c *Customer) any { return c.Name }, func(c *Customer, v any) { c.Name = asString(v) }},
	{"phone", func(c *Customer) any { return c.Phone }, func(c *Customer, v any) { c.Phone = asString(v) }},
	{"email", func(c *Customer) any { return c.Email }, func(c *Customer, v any) { c.Email = asString(v) }},
	{"loyaltyPoints", func(c *Customer) any { return c.LoyaltyPoints }, func(c *Customer, v any) { c.LoyaltyPoints = asFloat(v) }},
	{"loyaltyTier", func(c *Customer) any { return c.LoyaltyTier }, func(c *Customer, v any) { c.LoyaltyTier = asString(v) }},
	{"notes", func(c *Customer) any { return c.Notes }, func(c *Customer, v any) { c.Notes = asString(v) }},
	{"preferenceOverrides", func(c *Customer) any { return stringMapToAny(c.PreferenceOverrides) }, func(c *Customer, v any) { c.PreferenceOverrides = asStringMap(v) }},
	{"preferenceTags", func(c *Customer) any { return stringsToAny(c.PreferenceTags) }, func(c *Customer, v any) { c.PreferenceTags = asStrings(v) }},
	{"favoriteItems", func(c *Customer) any { return stringsToAny(c.FavoriteItems) }, func(c *Customer, v any) { c.FavoriteItems = asStrings(v) }},
}

var staffMapping = []fieldMapping[StaffMember]{
	{"name", func(s *StaffMember) any { return s.Name }, func(s *StaffMember, v any) { s.Name = asString(v) }},
	{"role", func(s *StaffMember) any { return s.Role }, func(s *StaffMember, v any) { s.Role = asString(v) }},
	{"phone", func(s *StaffMember) any { return s.Phone }, func(s *StaffMember, v any) { s.Phone = asString(v) }},
	{"hourlyRate", func(s *StaffMember) any { return s.HourlyRate }, func(s *StaffMember, v any) { s.HourlyRate = asFloat(v) }},
	{"active", func(s *StaffMember) any { return s.Active }, func(s *StaffMember, v any) { s.Active = asBool(v) }},
	{"notes", func(s *StaffMember) any { return s.Notes }, func(s *StaffMember, v any) { s.Notes = asString(v) }},
}

var shiftMapping = []fieldMapping[Shift]{
	{"staffId", func(s *Shift) any { return s.StaffID }, func(s *Shift, v any) { s.StaffID = asString(v) }},
	{"startsAt", func(s *Shift) any { return timeToAny(s.StartsAt) }, func(s *Shift, v any) { s.StartsAt = asTime(v) }},
	{"endsAt", func(s *Shift) any { return timeToAny(s.EndsAt) }, func(s *Shift, v any) { s.EndsAt = asTime(v) }},
	{"status", func(s *Shift) any { return s.Status }, func(s *Shift, v any) { s.Status = asString(v) }},
	{"approvedBy", func(s *Shift) any { return s.ApprovedBy }, func(s *Shift, v any) { s.ApprovedBy = asString(v) }},
	{"notes", func(s *Shift) any { return s.Notes }, func(s *Shift, v any) { s.Notes = asString(v) }},
}

func toFields[T any](mapping []fieldMapping[T], entity *T) Fields {
	out := make(Fields, len(mapping))
	for _, m := range mapping {
		out[m.name] = m.get(entity)
	}
	return out
}

func fromFields[T any](mapping []fieldMapping[T], fields Fields) T {
	var entity T
	for _, m := range mapping {
		if v, ok := fields[m.name]; ok {
			m.set(&entity, v)
		}
	}
	return entity
}

// ToFields maps the order to record fields.
func (o Order) ToFields() Fields { return toFields(orderMapping, &o) }

// OrderFromFields maps record fields to an order.
func OrderFromFields(f Fields) Order { return fromFields(orderMapping, f) }

// ToFields maps the menu item to record fields.
func (m MenuItem) ToFields() Fields { return toFields(menuItemMapping, &m) }

// MenuItemFromFields maps record fields to a menu item.
func MenuItemFromFields(f Fields) MenuItem { return fromFields(menuItemMapping, f) }

// ToFields maps the customer to record fields.
func (c Customer) ToFields() Fields { return toFields(customerMapping, &c) }

// CustomerFromFields maps record fields to a customer.
func CustomerFromFields(f Fields) Customer { return fromFields(customerMapping, f) }

// ToFields maps the staff member to record fields.
func (s StaffMember) ToFields() Fields { return toFields(staffMapping, &s) }

// StaffMemberFromFields maps record fields to a staff member.
func StaffMemberFromFields(f Fields) StaffMember { return fromFields(staffMapping, f) }

// ToFields maps the shift to record fields.
func (s Shift) ToFields() Fields { return toFields(shiftMapping, &s) }

// ShiftFromFields maps record fields to a shift.
func ShiftFromFields(f Fields) Shift { return fromFields(shiftMapping, f) }

// FieldNames returns the mapped field names of a collection.
func FieldNames(c Collection) []string {
	switch c {
	case CollectionOrders:
		return mappingNames(orderMapping)
	case CollectionMenuItems:
		return mappingNames(menuItemMapping)
	case CollectionCustomers:
		return mappingNames(customerMapping)
	case CollectionStaff:
		return mappingNames(staffMapping)
	case CollectionShifts:
		return mappingNames(shiftMapping)
	}
	return nil
}

func mappingNames[T any](mapping []fieldMapping[T]) []string {
	names := make([]string, 0, len(mapping))
	for _, m := range mapping {
		names = append(names, m.name)
	}
	return names
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asTime(v any) time.Time {
	s, ok := v.(string)
	if !ok || s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func timeToAny(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func asStrings(v any) []string {
	switch list := v.(type) {
	case []string:
		return append([]string(nil), list...)
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func stringsToAny(list []string) any {
	if list == nil {
		return nil
	}
	out := make([]any, len(list))
	for i := range list {
		out[i] = list[i]
	}
	return out
}

func asStringMap(v any) map[string]string {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, item := range m {
		if s, ok := item.(string); ok {
			out[k] = s
		}
	}
	return out
}

func stringMapToAny(m map[string]string) any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func orderLinesToAny(lines []OrderLine) any {
	if lines == nil {
		return nil
	}
	out := make([]any, 0, len(lines))
	for _, l := range lines {
		out = append(out, map[string]any{
			"menuItemId": l.MenuItemID,
			"name":       l.Name,
			"quantity":   l.Quantity,
			"price":      l.Price,
		})
	}
	return out
}

func orderLinesFromAny(v any) []OrderLine {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]OrderLine, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, OrderLine{
			MenuItemID: asString(m["menuItemId"]),
			Name:       asString(m["name"]),
			Quantity:   asFloat(m["quantity"]),
			Price:      asFloat(m["price"]),
		})
	}
	return out
}
