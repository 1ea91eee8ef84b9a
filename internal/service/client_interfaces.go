// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the synchronization core of the SDK: the stable
// user identity, change fingerprints, the user-state aggregate, the purchase
// transaction observer, the action decoder and the upload decisions built on
// top of them.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-churn-fighter/models"
	"github.com/MKhiriev/go-churn-fighter/platform"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// IdentityService returns the stable anonymous id of this installation.
type IdentityService interface {
	// GetOrCreateUserID returns the persisted id, generating and persisting
	// one on first use. It never fails: when storage is unavailable the id
	// lives for the process lifetime only.
	GetOrCreateUserID(ctx context.Context) string
}

// FingerprintService remembers the fingerprint of the last upload of each
// kind and gates new uploads on it.
type FingerprintService interface {
	// ShouldSend reports whether fp differs from the last recorded
	// fingerprint of kind, or nothing was recorded yet.
	ShouldSend(ctx context.Context, kind models.FingerprintKind, fp models.Fingerprint) bool

	// Record overwrites the fingerprint of kind.
	Record(ctx context.Context, kind models.FingerprintKind, fp models.Fingerprint) error
}

// UserStateService holds the mutable user fields and builds snapshots.
type UserStateService interface {
	SetEmail(email string)
	SetLocale(locale string)
	// SetDeviceToken stores the push token as lower-case hex.
	SetDeviceToken(token []byte)
	// SetUserProperty upserts a custom property.
	SetUserProperty(key, value string)
	SetOriginalTransactionID(id string)

	// Snapshot builds a fresh [models.UserState] from the held fields and
	// live environment queries.
	Snapshot() models.UserState
}

// ActionDecoder turns untrusted encoded payloads into typed actions.
type ActionDecoder interface {
	// Decode decodes a base64 JSON action. ok is false for anything that is
	// not a complete, valid action.
	Decode(raw string) (action models.Action, ok bool)

	// DecodeFromNotification reads the "offer" then the "payment" entry of
	// a push payload.
	DecodeFromNotification(content models.NotificationContent) (models.Action, bool)

	// DecodeFromUniversalLink reads the "offer" then the "payment" query
	// parameter of a web-browsing activity.
	DecodeFromUniversalLink(activity models.UserActivity) (models.Action, bool)
}

// TransactionSink receives the side effects of observed transactions.
type TransactionSink interface {
	LinkOriginalTransaction(ctx context.Context, originalTransactionID string)
	SyncReceipt(ctx context.Context)
}

// TransactionObserverService classifies purchase-transaction updates.
type TransactionObserverService interface {
	platform.TransactionObserver

	// ProcessBatch handles batch with ctx and returns the joined errors of
	// transactions in unknown states.
	ProcessBatch(ctx context.Context, batch []models.TransactionRecord) error

	// Events streams processed transactions. The channel is buffered and is
	// never closed; events that do not fit are dropped.
	Events() <-chan models.TransactionEvent
}

// ClientSyncService decides whether the current state has to be uploaded
// and hands uploads to the dispatcher.
type ClientSyncService interface {
	// SyncUserState uploads the user state if it changed since the last
	// upload and reports whether an upload was dispatched.
	SyncUserState(ctx context.Context) bool

	// SyncReceipt uploads the device receipt if it changed since the last
	// upload and reports whether an upload was dispatched.
	SyncReceipt(ctx context.Context) bool

	// RequestOfferSignature asks the backend to sign a promotional offer for
	// this installation.
	RequestOfferSignature(ctx context.Context, productID, offerID string) (models.OfferSignature, error)
}

// ClientSyncJob defines the contract for a background job that periodically
// re-runs the upload decisions.
type ClientSyncJob interface {
	// Start launches the background goroutine. It re-syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
