// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FingerprintKind selects one of the persisted fingerprint slots.
type FingerprintKind int

const (
	// UserStateFingerprint is the slot for the last sent [UserState].
	UserStateFingerprint FingerprintKind = iota + 1

	// ReceiptFingerprint is the slot for the last sent receipt.
	ReceiptFingerprint
)

// String implements fmt.Stringer.
func (k FingerprintKind) String() string {
	switch k {
	case UserStateFingerprint:
		return "user-state"
	case ReceiptFingerprint:
		return "receipt"
	default:
		return "unknown"
	}
}

// Fingerprint is a deterministic hex digest used purely for change detection.
type Fingerprint string
