// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/ecdsa"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// offerFieldSeparator is the invisible separator (U+2063) placed between the
// fields of a subscription-offer signing string.
const offerFieldSeparator = "⁣"

// ErrInvalidSigningKey is returned when no ECDSA key was provided.
var ErrInvalidSigningKey = errors.New("invalid offer signing key")

// OfferSigningString joins the offer fields in the order expected by the
// platform's discount-offer verification.
func OfferSigningString(keyIdentifier, productID, offerID, applicationUsername, nonce string, timestamp int64) string {
	return strings.Join([]string{
		keyIdentifier,
		productID,
		offerID,
		strings.ToLower(applicationUsername),
		strings.ToLower(nonce),
		strconv.FormatInt(timestamp, 10),
	}, offerFieldSeparator)
}

// SignOffer signs signingString with ES256 and returns the signature base64
// encoded.
func SignOffer(signingString string, key *ecdsa.PrivateKey) (string, error) {
	if key == nil {
		return "", ErrInvalidSigningKey
	}

	sig, err := jwt.SigningMethodES256.Sign(signingString, key)
	if err != nil {
		return "", fmt.Errorf("error signing offer: %w", err)
	}

	return base64.StdEncoding.EncodeToString(sig), nil
}

// VerifyOffer checks a signature produced by [SignOffer].
func VerifyOffer(signingString, signature string, key *ecdsa.PublicKey) error {
	if key == nil {
		return ErrInvalidSigningKey
	}

	raw, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return fmt.Errorf("error decoding offer signature: %w", err)
	}

	return jwt.SigningMethodES256.Verify(signingString, raw, key)
}
