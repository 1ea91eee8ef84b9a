// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrUnknownTransactionState signals a transaction state outside the
	// closed set the SDK handles: a platform/SDK version mismatch.
	ErrUnknownTransactionState = errors.New("unknown transaction state")

	// ErrUnknownFingerprintKind is returned for a fingerprint slot the SDK
	// does not persist.
	ErrUnknownFingerprintKind = errors.New("unknown fingerprint kind")

	// ErrEmptyProductID is returned when an offer signature is requested
	// without a product.
	ErrEmptyProductID = errors.New("empty product id")

	// ErrEmptyUserID is returned by the sandbox for a request without a user.
	ErrEmptyUserID = errors.New("empty user id")

	// ErrInvalidReceipt is returned by the sandbox for an empty or non-base64
	// receipt.
	ErrInvalidReceipt = errors.New("invalid receipt")

	// ErrApplicationUsernameMismatch is returned when an offer is requested
	// for another user than the one in the path.
	ErrApplicationUsernameMismatch = errors.New("application username does not match user id")

	errUnknownActionType = errors.New("unknown action type")
)
