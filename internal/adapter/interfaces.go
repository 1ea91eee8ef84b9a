// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the SDK and the
// churn-prevention backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-churn-fighter/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the churn
// backend. Implementations attach the application credentials to every
// request and map transport-level errors to the sentinel values defined in
// this package.
type ServerAdapter interface {
	// SendUserState uploads a user-state snapshot to POST /user/{userID}.
	SendUserState(ctx context.Context, userID string, state models.UserState) error

	// SendReceipt uploads a base64-armoured receipt to POST /receipt/{userID}.
	SendReceipt(ctx context.Context, userID string, receipt models.ReceiptRequest) error

	// RequestOfferSignature asks the backend to sign a promotional offer for
	// userID. The returned signature is opaque to the SDK.
	RequestOfferSignature(ctx context.Context, userID string, req models.OfferSignatureRequest) (models.OfferSignature, error)
}
