// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/MKhiriev/go-churn-fighter/internal/logger"
	"github.com/MKhiriev/go-churn-fighter/internal/utils"
)

// Header names carrying the application credentials on every SDK request.
const (
	apiKeyHeader = "apiKey"
	secretHeader = "X-CF-header"
)

// auth is an HTTP middleware that checks the application credentials.
//
// Both the apiKey and X-CF-header headers must be present and equal to the
// configured values, otherwise the request is rejected with 401 Unauthorized.
// On success the API key is stored in the request context under
// [utils.APIKeyCtxKey].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		apiKey := r.Header.Get(apiKeyHeader)
		secret := r.Header.Get(secretHeader)
		if apiKey == "" || secret == "" {
			log.Err(ErrMissingCredentialHeaders).Send()
			http.Error(w, ErrMissingCredentialHeaders.Error(), http.StatusUnauthorized)
			return
		}

		if !equalSecret(apiKey, h.credentials.APIKey) || !equalSecret(secret, h.credentials.Secret) {
			log.Err(ErrInvalidCredentials).Str("api_key", apiKey).Send()
			http.Error(w, ErrInvalidCredentials.Error(), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.APIKeyCtxKey, apiKey)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func equalSecret(got, want string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
