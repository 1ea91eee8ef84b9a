// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// userIDParam is the path parameter carrying the SDK user id.
const userIDParam = "userId"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/version", h.getVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/user/{userId}", h.postUserState)
		r.Post("/receipt/{userId}", h.postReceipt)
		r.Post("/subscriptionOfferSignature/{userId}", h.postOfferSignature)

		r.Get("/debug/users/{userId}", h.getUserSubmissions)
		r.Get("/debug/offerKey", h.getOfferKey)
	})

	router.MethodNotAllowed(hideRoute)

	return router
}
