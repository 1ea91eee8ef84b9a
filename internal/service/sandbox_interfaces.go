// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-churn-fighter/models"
)

//go:generate mockgen -source=sandbox_interfaces.go -destination=../mock/sandbox_service_mock.go -package=mock

// SubmissionService accepts the uploads the SDK sends to the sandbox
// backend.
type SubmissionService interface {
	RecordUserState(ctx context.Context, userID string, state models.UserState) error
	// RecordReceipt rejects receipts that are empty or not base64.
	RecordReceipt(ctx context.Context, userID string, req models.ReceiptRequest) error
	Submissions(ctx context.Context, userID string) (models.UserSubmissions, error)
}

// OfferSigningService signs promotional subscription offers.
type OfferSigningService interface {
	// Sign returns a fresh signature for req on behalf of userID.
	Sign(ctx context.Context, userID string, req models.OfferSignatureRequest) (models.OfferSignature, error)
	// PublicKeyPEM returns the PKIX public key verifying the signatures.
	PublicKeyPEM() ([]byte, error)
}

// AppInfoService reports build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
