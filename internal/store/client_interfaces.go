// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// Well-known preference keys persisted by the SDK.
const (
	UserIDKey      = "userIdKey"
	UserHashKey    = "userHashKey"
	ReceiptHashKey = "receiptHashKey"
)

// PreferenceStorage is a suite-scoped string key/value store. Every
// implementation is safe for concurrent use.
type PreferenceStorage interface {
	// Get returns the value stored under key, or [ErrPreferenceNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the underlying resources.
	Close() error
}
