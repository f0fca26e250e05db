// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	healthPath  = "/api/health"
	versionPath = "/api/version"
	pullPath    = "/api/sync/pull"
	pushPath    = "/api/sync/push"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get(healthPath, h.health)
		r.Head(healthPath, h.health)
		r.Get(versionPath, h.getServerVersion)
	})

	// sync routes
	router.Group(func(r chi.Router) {
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}
		r.Use(h.auth, h.withHashing)

		r.Post(pullPath, h.pull)
		r.Post(pushPath, h.push)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
