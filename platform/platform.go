// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package platform declares the host capabilities the SDK consumes: the
// purchase-transaction queue, the receipt store and the device environment.
// Host applications implement these interfaces over their platform APIs; the
// package also ships simple implementations for tests and command-line use.
package platform

import (
	"errors"

	"github.com/MKhiriev/go-churn-fighter/models"
)

// ErrNoReceipt is returned by a [ReceiptProvider] when the device holds no
// receipt yet. It is not a failure.
var ErrNoReceipt = errors.New("no receipt available")

// TransactionObserver receives batches of purchase-transaction updates.
type TransactionObserver interface {
	UpdatedTransactions(batch []models.TransactionRecord)
}

// PaymentQueue is the platform's purchase-transaction queue.
type PaymentQueue interface {
	AddTransactionObserver(observer TransactionObserver)
	RemoveTransactionObserver(observer TransactionObserver)
}

// ReceiptProvider returns the raw App Store receipt.
type ReceiptProvider interface {
	// Receipt returns the receipt bytes, or [ErrNoReceipt].
	Receipt() ([]byte, error)
}

// Environment answers live device queries. Every method may return an empty
// string when the value is unknown.
type Environment interface {
	Locale() string
	OSVersion() string
	Model() string
	IdentifierForVendor() string
	TimeZone() string
}

// Platform bundles the capabilities handed to the SDK.
type Platform struct {
	PaymentQueue    PaymentQueue
	ReceiptProvider ReceiptProvider
	Environment     Environment
}
