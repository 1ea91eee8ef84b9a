// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UserSubmissions is everything the sandbox backend received for one user.
// It is served by GET /debug/users/{userId}.
type UserSubmissions struct {
	UserID        string                  `json:"userId"`
	UserState     *UserState              `json:"userState,omitempty"`
	StateUploads  int                     `json:"stateUploads"`
	Receipts      []string                `json:"receipts,omitempty"`
	OfferRequests []OfferSignatureRequest `json:"offerRequests,omitempty"`
	UpdatedAt     time.Time               `json:"updatedAt"`
}
