// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package churnfighter

import "errors"

var (
	// ErrMissingCredentials is returned by Initialize when the api key or
	// the secret is empty.
	ErrMissingCredentials = errors.New("churnfighter: api key and secret are required")

	// ErrAlreadyInitialized is returned by a second Initialize without a
	// Teardown in between.
	ErrAlreadyInitialized = errors.New("churnfighter: already initialized")

	// ErrNotInitialized is returned by operations that need the backend
	// before Initialize.
	ErrNotInitialized = errors.New("churnfighter: not initialized")
)
