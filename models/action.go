// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ActionType is the discriminator carried by action payloads in the "type"
// field. Payloads without a discriminator are matched schema by schema.
type ActionType string

const (
	// ActionTypeOffer marks a retention offer payload.
	ActionTypeOffer ActionType = "offer"

	// ActionTypePayment marks a payment-details-update payload.
	ActionTypePayment ActionType = "payment"
)

// Action is an instruction decoded from an untrusted external payload
// directing the host app to show a retention offer or a payment-update prompt.
// The concrete type is either [*Offer] or [*PaymentDetailsUpdate].
type Action interface {
	// Type returns the discriminator of the concrete variant.
	Type() ActionType
}

// Offer asks the host app to present a subscription offer.
type Offer struct {
	Title              string  `json:"title" validate:"required"`
	Body               string  `json:"body" validate:"required"`
	ProductID          string  `json:"productId" validate:"required"`
	OfferID            *string `json:"offerId,omitempty"`
	OfferType          string  `json:"offerType" validate:"required"`
	ProductDescription *string `json:"productDescription,omitempty"`
}

// Type implements [Action].
func (o *Offer) Type() ActionType {
	return ActionTypeOffer
}

// PaymentDetailsUpdate asks the host app to prompt the user to fix their
// payment method.
type PaymentDetailsUpdate struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
	CTA   string `json:"cta" validate:"required"`
	URL   string `json:"url" validate:"required,url"`
}

// Type implements [Action].
func (p *PaymentDetailsUpdate) Type() ActionType {
	return ActionTypePayment
}
