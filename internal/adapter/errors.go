// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors returned by [ServerAdapter] implementations. Non-2xx HTTP
// responses are mapped onto them by mapHTTPError so callers can use
// [errors.Is] regardless of the response body.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrMissingCredentials is returned before any request is made when the
	// adapter has no api key or secret.
	ErrMissingCredentials = errors.New("api key and secret are required")
	// ErrEmptyUserID is returned when a request path would lack the user id.
	ErrEmptyUserID = errors.New("empty user id")
)
