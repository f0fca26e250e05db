// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/resto-sync/models"
)

// fieldRule says how a field is merged when both sides changed it.
type fieldRule int

const (
	// ruleLastWrite takes the more recent side; a tie goes to the server.
	ruleLastWrite fieldRule = iota
	// ruleServer always takes the server value.
	ruleServer
	// ruleUserAuthored takes the more recent side like ruleLastWrite; it marks
	// fields typed by staff on the device.
	ruleUserAuthored
	// ruleAccumulate unions list values, server items first.
	ruleAccumulate
)

var mergeRules = map[models.Collection]map[string]fieldRule{
	models.CollectionOrders: {
		"status":              ruleServer,
		"paymentStatus":       ruleServer,
		"total":               ruleServer,
		"tax":                 ruleServer,
		"notes":               ruleUserAuthored,
		"specialInstructions": ruleUserAuthored,
		"tags":                ruleAccumulate,
	},
	models.CollectionMenuItems: {
		"price":       ruleServer,
		"isAvailable": ruleServer,
		"description": ruleUserAuthored,
		"tags":        ruleAccumulate,
		"allergens":   ruleAccumulate,
	},
	models.CollectionCustomers: {
		"loyaltyPoints":       ruleServer,
		"loyaltyTier":         ruleServer,
		"notes":               ruleUserAuthored,
		"preferenceOverrides": ruleUserAuthored,
		"preferenceTags":      ruleAccumulate,
		"favoriteItems":       ruleAccumulate,
	},
	models.CollectionStaff: {
		"role":       ruleServer,
		"hourlyRate": ruleServer,
		"active":     ruleServer,
		"notes":      ruleUserAuthored,
	},
	models.CollectionShifts: {
		"status":     ruleServer,
		"approvedBy": ruleServer,
		"notes":      ruleUserAuthored,
	},
}

// mergeFields combines both versions field by field. An empty value never
// replaces a non-empty one, whatever the rule.
func mergeFields(collection models.Collection, local, server models.Fields, localNewer bool) models.Fields {
	rules := mergeRules[collection]

	out := make(models.Fields, len(local)+len(server))
	keys := make(map[string]struct{}, len(local)+len(server))
	for k := range local {
		keys[k] = struct{}{}
	}
	for k := range server {
		keys[k] = struct{}{}
	}

	for k := range keys {
		lv, sv := local[k], server[k]

		var v any
		switch rules[k] {
		case ruleServer:
			v = sv
		case ruleAccumulate:
			v = unionValues(sv, lv)
		default:
			if localNewer {
				v = lv
			} else {
				v = sv
			}
		}

		if models.IsEmptyValue(v) {
			switch {
			case !models.IsEmptyValue(sv):
				v = sv
			case !models.IsEmptyValue(lv):
				v = lv
			}
		}

		out[k] = v
	}

	return out.Clone()
}

// unionValues returns the server items followed by local-only items. Values
// that are not lists fall back to the non-empty side, server first.
func unionValues(server, local any) any {
	serverItems, serverIsList := asList(server)
	localItems, localIsList := asList(local)

	if !serverIsList || !localIsList {
		if !models.IsEmptyValue(server) {
			return server
		}
		return local
	}

	out := make([]any, 0, len(serverItems)+len(localItems))
	seen := make(map[string]struct{}, len(serverItems)+len(localItems))
	for _, items := range [][]any{serverItems, localItems} {
		for _, item := range items {
			key := itemKey(item)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

func asList(v any) ([]any, bool) {
	switch list := v.(type) {
	case []any:
		return list, true
	case []string:
		out := make([]any, len(list))
		for i, s := range list {
			out[i] = s
		}
		return out, true
	}
	return nil, false
}

func itemKey(item any) string {
	if s, ok := item.(string); ok {
		return "s:" + s
	}
	encoded, err := json.Marshal(item)
	if err != nil {
		return fmt.Sprintf("v:%v", item)
	}
	return "j:" + string(encoded)
}
