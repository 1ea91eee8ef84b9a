// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// HashString computes an HMAC-SHA256 signature over the given bytes
// using the provided hash key and returns the result as a hex-encoded string.
//
// A new HMAC instance is created on each call. The same (data, hashKey) pair
// always produces the same result.
//
// Example usage:
//
//	fp := utils.HashString(stateJSON, userID)
func HashString(data []byte, hashKey string) string {
	return hex.EncodeToString(hashBytes(data, hashKey))
}

// hashBytes computes a raw HMAC-SHA256 digest over data.
func hashBytes(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}

// Digest returns the hex-encoded unkeyed BLAKE2b-256 digest of data.
//
// Example usage:
//
//	fp := utils.Digest([]byte(receipt))
func Digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}
