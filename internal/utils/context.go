// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, offer signing
// and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// APIKeyCtxKey is the key used to store the authenticated application API key
// in the context of a sandbox request.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.APIKeyCtxKey, "app-key")
var APIKeyCtxKey = contextKey("apiKey")

// GetAPIKeyFromContext retrieves the application API key from the context.
//
// Returns the key and an ok flag:
//   - ok == true: value is found, is a string and is not empty
//   - ok == false: value is missing or has an unexpected type
func GetAPIKeyFromContext(ctx context.Context) (string, bool) {
	apiKey, ok := ctx.Value(APIKeyCtxKey).(string)
	return apiKey, ok && apiKey != ""
}
