// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFields_CloneIsDeep(t *testing.T) {
	orig := Fields{
		"tags":  []any{"vip"},
		"prefs": map[string]any{"seat": "window"},
		"names": []string{"a"},
	}

	c := orig.Clone()
	c["tags"].([]any)[0] = "changed"
	c["prefs"].(map[string]any)["seat"] = "bar"

	assert.Equal(t, "vip", orig["tags"].([]any)[0])
	assert.Equal(t, "window", orig["prefs"].(map[string]any)["seat"])
	assert.Equal(t, []any{"a"}, c["names"], "string slices are normalised")
	assert.Nil(t, Fields(nil).Clone())
}

func TestFields_HashAndEqual(t *testing.T) {
	a := Fields{"status": "open", "total": 10.0}
	b := Fields{"total": 10.0, "status": "open"}

	ha, err := a.Hash()
	require.NoError(t, err)
	hb, err := b.Hash()
	require.NoError(t, err)

	assert.Equal(t, ha, hb, "key order does not matter")
	assert.Len(t, ha, 64)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(Fields{"status": "paid", "total": 10.0}))

	// json не умеет каналы
	assert.False(t, Fields{"ch": make(chan int)}.Equal(a))
}

func TestIsEmptyValue(t *testing.T) {
	tests := []struct {
		v     any
		empty bool
	}{
		{nil, true},
		{"", true},
		{"   ", true},
		{[]any{}, true},
		{[]string{}, true},
		{map[string]any{}, true},
		{"x", false},
		{0.0, false},
		{false, false},
		{[]any{1}, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.empty, IsEmptyValue(tt.v), "%#v", tt.v)
	}

	f := Fields{"notes": " ", "name": "Ann"}
	assert.False(t, f.Has("notes"))
	assert.True(t, f.Has("name"))
	assert.False(t, f.Has("missing"))
}
