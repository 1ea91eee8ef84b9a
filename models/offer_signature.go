// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OfferSignatureRequest is the body of POST /subscriptionOfferSignature/{userId}.
type OfferSignatureRequest struct {
	ProductID           string `json:"productId"`
	OfferID             string `json:"offerId"`
	ApplicationUsername string `json:"applicationUsername"`
}

// OfferSignature is returned by the backend and handed unchanged to the
// platform's discount-offer verification.
type OfferSignature struct {
	KeyIdentifier string `json:"keyIdentifier"`
	Nonce         string `json:"nonce"`
	Signature     string `json:"signature"`
	Timestamp     int64  `json:"timestamp"`
}
