// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Head(healthPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get(healthPath, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	router.Group(func(r chi.Router) {
		r.Post(pullPath, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		r.Post(pushPath, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		// зарегистрированный метод: обработчик отвечает сам
		{http.MethodGet, healthPath, http.StatusOK},
		{http.MethodHead, healthPath, http.StatusOK},
		{http.MethodPost, pullPath, http.StatusOK},
		{http.MethodPost, pushPath, http.StatusAccepted},

		// чужой метод: 404 вместо 405
		{http.MethodPost, healthPath, http.StatusNotFound},
		{http.MethodDelete, healthPath, http.StatusNotFound},
		{http.MethodGet, pullPath, http.StatusNotFound},
		{http.MethodPut, pushPath, http.StatusNotFound},
		{http.MethodPatch, pushPath, http.StatusNotFound},

		// неизвестный путь
		{http.MethodGet, "/api/sync", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestCheckHTTPMethod_ConcurrentRequests(t *testing.T) {
	router := buildRouter()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			method, want := http.MethodPost, http.StatusOK
			if i%2 == 0 {
				method, want = http.MethodGet, http.StatusNotFound
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(method, pullPath, nil))
			assert.Equal(t, want, rec.Code)
		}(i)
	}
	wg.Wait()
}
