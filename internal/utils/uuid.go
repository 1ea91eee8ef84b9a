// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// UUIDGenerator produces random 128-bit identifiers in canonical textual form.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a random (version 4) UUID. If the random source fails it
// falls back to a time-based version 7 UUID and, as a last resort, to a
// name-based UUID over the current time so that it never fails.
func (g *UUIDGenerator) Generate() string {
	v4, err := uuid.NewRandom()
	if err == nil {
		return v4.String()
	}

	v7, err := uuid.NewV7()
	if err == nil {
		return v7.String()
	}

	now := strconv.FormatInt(time.Now().UnixNano(), 10)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(now)).String()
}
