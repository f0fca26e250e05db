// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/resto-sync/internal/logger"
)

// makeRequest creates a test request carrying a logger that writes to buf,
// the same way withTraceID attaches one.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		path          string
		handlerStatus int
		response      string
		wantContains  []string
	}{
		{
			name:          "pull 200",
			method:        http.MethodPost,
			path:          pullPath,
			handlerStatus: http.StatusOK,
			response:      `{"changes":{}}`,
			wantContains: []string{
				`"level":"info"`,
				`"method":"POST"`,
				`"uri":"/api/sync/pull"`,
				`"status":200`,
				`"size":14`,
				`"duration":`,
			},
		},
		{
			name:          "unauthorized push",
			method:        http.MethodPost,
			path:          pushPath,
			handlerStatus: http.StatusUnauthorized,
			wantContains:  []string{`"level":"info"`, `"status":401`, `"size":0`},
		},
		{
			name:          "server errors are logged as errors",
			method:        http.MethodPost,
			path:          pushPath,
			handlerStatus: http.StatusServiceUnavailable,
			wantContains:  []string{`"level":"error"`, `"status":503`},
		},
		{
			name:          "health probe",
			method:        http.MethodHead,
			path:          healthPath,
			handlerStatus: http.StatusOK,
			wantContains:  []string{`"method":"HEAD"`, `"uri":"/api/health"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.response != "" {
					_, _ = w.Write([]byte(tt.response))
				}
			})

			rec := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rec, makeRequest(tt.method, tt.path, &buf))

			assert.Equal(t, tt.handlerStatus, rec.Code)
			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_NoStatusWritten(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rec := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rec, makeRequest(http.MethodGet, versionPath, &buf))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), `"status":0`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", &buf))
	})
}
