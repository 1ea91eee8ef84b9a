// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-churn-fighter/internal/logger"
)

// hideRoute answers a known path requested with an unregistered method as if
// the path did not exist. Registered with [chi.Mux.MethodNotAllowed], it
// replaces chi's 405 so SDK probes cannot enumerate the sandbox routes.
func hideRoute(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("func", "hideRoute").
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method is not served on this path")

	w.WriteHeader(http.StatusNotFound)
}
