// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionState(t *testing.T) {
	tests := []struct {
		state    TransactionState
		name     string
		terminal bool
	}{
		{TransactionPurchasing, "purchasing", false},
		{TransactionPurchased, "purchased", true},
		{TransactionFailed, "failed", true},
		{TransactionRestored, "restored", true},
		{TransactionDeferred, "deferred", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.state.Valid())
			assert.Equal(t, tt.name, tt.state.String())
			assert.Equal(t, tt.terminal, tt.state.IsTerminal())

			parsed, ok := ParseTransactionState(tt.name)
			assert.True(t, ok)
			assert.Equal(t, tt.state, parsed)
		})
	}
}

func TestTransactionState_Unknown(t *testing.T) {
	s := TransactionState(42)

	assert.False(t, s.Valid())
	assert.False(t, s.IsTerminal())
	assert.Equal(t, "unknown(42)", s.String())

	_, ok := ParseTransactionState("refunded")
	assert.False(t, ok)
}

func TestFingerprintKind_String(t *testing.T) {
	assert.Equal(t, "user-state", UserStateFingerprint.String())
	assert.Equal(t, "receipt", ReceiptFingerprint.String())
	assert.Equal(t, "unknown", FingerprintKind(0).String())
}

func TestAction_Type(t *testing.T) {
	assert.Equal(t, ActionTypeOffer, (&Offer{}).Type())
	assert.Equal(t, ActionTypePayment, (&PaymentDetailsUpdate{}).Type())
}
