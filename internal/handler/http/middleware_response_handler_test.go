// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ── bufferedResponseWriter ──────────────────────────────────────────

func TestBufferedResponseWriter_HoldsUntilFlush(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &bufferedResponseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusConflict)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"a":1}`))

	assert.False(t, rec.Flushed)
	assert.Empty(t, rec.Body.String(), "nothing reaches the client before flush")

	// заголовки, выставленные после Write, всё ещё попадают в ответ
	w.Header().Set("X-Late", "yes")
	w.flush()

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, `{"a":1}`, rec.Body.String())
	assert.Equal(t, "yes", rec.Header().Get("X-Late"))
}

func TestBufferedResponseWriter_Defaults(t *testing.T) {
	t.Run("write without header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &bufferedResponseWriter{ResponseWriter: rec}

		_, _ = w.Write([]byte("x"))
		w.flush()

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("nothing written", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &bufferedResponseWriter{ResponseWriter: rec}

		w.flush()

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}
