// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// TransactionState is the lifecycle state of a platform purchase transaction.
// The set is closed: any value outside it signals a platform/SDK mismatch.
type TransactionState int

const (
	// TransactionPurchasing is the initial, non-terminal state.
	TransactionPurchasing TransactionState = iota

	// TransactionPurchased is a successful purchase.
	TransactionPurchased

	// TransactionFailed is a purchase that did not complete.
	TransactionFailed

	// TransactionRestored is a previously purchased product restored to the user.
	TransactionRestored

	// TransactionDeferred is waiting on an external action (e.g. Ask to Buy).
	TransactionDeferred
)

var transactionStateNames = map[TransactionState]string{
	TransactionPurchasing: "purchasing",
	TransactionPurchased:  "purchased",
	TransactionFailed:     "failed",
	TransactionRestored:   "restored",
	TransactionDeferred:   "deferred",
}

// String implements fmt.Stringer.
func (s TransactionState) String() string {
	if name, ok := transactionStateNames[s]; ok {
		return name
	}
	return "unknown(" + strconv.Itoa(int(s)) + ")"
}

// Valid reports whether s belongs to the closed set of known states.
func (s TransactionState) Valid() bool {
	_, ok := transactionStateNames[s]
	return ok
}

// IsTerminal reports whether s ends the transaction lifecycle.
func (s TransactionState) IsTerminal() bool {
	return s == TransactionPurchased || s == TransactionFailed || s == TransactionRestored
}

// ParseTransactionState maps a state name back to its value.
func ParseTransactionState(name string) (TransactionState, bool) {
	for state, n := range transactionStateNames {
		if n == name {
			return state, true
		}
	}
	return 0, false
}

// OriginalTransaction references the first transaction of a renewal or
// restore chain.
type OriginalTransaction struct {
	TransactionID string `json:"transactionId"`
}

// TransactionRecord is an ephemeral transaction update supplied by the
// platform purchase queue.
type TransactionRecord struct {
	TransactionID string               `json:"transactionId"`
	State         TransactionState     `json:"state"`
	Original      *OriginalTransaction `json:"original,omitempty"`
}

// TransactionEvent is emitted by the transaction observer for every processed
// record.
type TransactionEvent struct {
	TransactionID         string
	State                 TransactionState
	OriginalTransactionID string
}
