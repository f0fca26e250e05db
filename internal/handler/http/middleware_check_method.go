// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/resto-sync/internal/utils"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A sync client only ever calls a route with its own method, so any other
// method is answered with 404 and a JSON error body instead of chi's 405.
//
// Only exact route patterns are compared; the sync API has no path
// parameters.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		routes := router.Routes()
		i := slices.IndexFunc(routes, func(route chi.Route) bool {
			return route.Pattern == r.URL.Path
		})

		if i >= 0 {
			if _, ok := routes[i].Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
		}

		utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	}
}
