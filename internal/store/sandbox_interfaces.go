// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-churn-fighter/models"
)

//go:generate mockgen -source=sandbox_interfaces.go -destination=../mock/sandbox_store_mock.go -package=mock

// SubmissionStorage keeps what the sandbox backend received, per user.
type SubmissionStorage interface {
	// SaveUserState replaces the latest user state of userID.
	SaveUserState(ctx context.Context, userID string, state models.UserState) error
	// AppendReceipt records a receipt upload of userID.
	AppendReceipt(ctx context.Context, userID string, receipt string) error
	// AppendOfferRequest records an offer signature request of userID.
	AppendOfferRequest(ctx context.Context, userID string, req models.OfferSignatureRequest) error
	// Get returns the submissions of userID, or [ErrSubmissionsNotFound].
	Get(ctx context.Context, userID string) (models.UserSubmissions, error)
}
