// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware.
var (
	// ErrMissingCredentialHeaders is returned when the apiKey or the
	// X-CF-header header is absent.
	ErrMissingCredentialHeaders = errors.New("missing `apiKey` or `X-CF-header` header")

	// ErrInvalidCredentials is returned when the headers do not match the
	// configured application credentials.
	ErrInvalidCredentials = errors.New("invalid application credentials")

	errInvalidBody = errors.New("invalid request body")
)
