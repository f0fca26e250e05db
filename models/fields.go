// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Fields is the flat attribute map of a record. Values are JSON-compatible:
// string, float64, bool, nil, []any and map[string]any.
type Fields map[string]any

// Clone returns a deep copy of f.
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case []any:
		out := make([]any, len(val))
		for i := range val {
			out[i] = cloneValue(val[i])
		}
		return out
	case []string:
		out := make([]any, len(val))
		for i := range val {
			out[i] = val[i]
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	default:
		return val
	}
}

// Has reports whether key is present with a non-empty value.
func (f Fields) Has(key string) bool {
	v, ok := f[key]
	return ok && !IsEmptyValue(v)
}

// Hash returns a blake2b-256 digest of the canonical JSON encoding of f.
// encoding/json sorts map keys, so equal maps always hash equally.
func (f Fields) Hash() (string, error) {
	payload, err := json.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("encode fields for hashing: %w", err)
	}
	sum := blake2b.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}

// Equal reports whether f and other carry the same values after JSON
// normalisation.
func (f Fields) Equal(other Fields) bool {
	left, err := f.Hash()
	if err != nil {
		return false
	}
	right, err := other.Hash()
	if err != nil {
		return false
	}
	return left == right
}

// IsEmptyValue reports whether v is null or an empty string, slice or map.
func IsEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val) == ""
	case []any:
		return len(val) == 0
	case []string:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	}
	return false
}
