// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ReceiptRequest is the body of POST /receipt/{userId}.
type ReceiptRequest struct {
	// Receipt is the base64-armored App Store receipt. Opaque to the SDK.
	Receipt string `json:"receipt"`
}
