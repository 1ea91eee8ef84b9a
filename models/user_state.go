// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "maps"

// UserState is the snapshot of user attributes reported to the backend on
// POST /user/{userId}.
//
// Every field is independently optional: nil means "not yet known", never
// "explicitly empty". A UserState is rebuilt on every sync attempt and is
// never persisted itself; only its fingerprint is.
type UserState struct {
	// Locale is the BCP 47 tag of the user's locale (e.g. "en-US").
	Locale *string `json:"locale,omitempty"`

	// OSVersion is the operating system version of the device.
	OSVersion *string `json:"iosVersion,omitempty"`

	// Model is the localized device model name.
	Model *string `json:"model,omitempty"`

	// IdentifierForVendor is the vendor-scoped device identifier.
	IdentifierForVendor *string `json:"identifierForVendor,omitempty"`

	// TimeZone is the IANA time zone identifier (e.g. "Europe/Paris").
	TimeZone *string `json:"timeZone,omitempty"`

	// Email is the contact email supplied by the host application.
	Email *string `json:"email,omitempty"`

	// DeviceToken is the push-notification device token, hex encoded.
	DeviceToken *string `json:"deviceToken,omitempty"`

	// OriginalTransactionID links the user to the first transaction of a
	// renewal or restore chain.
	OriginalTransactionID *string `json:"originalTransactionId,omitempty"`

	// CustomInfo holds host-defined properties.
	CustomInfo CustomInfo `json:"customInfo,omitempty"`
}

// Equal reports whether s and other carry the same values field by field.
// Custom properties are compared as an unordered mapping.
func (s UserState) Equal(other UserState) bool {
	return equalOptional(s.Locale, other.Locale) &&
		equalOptional(s.OSVersion, other.OSVersion) &&
		equalOptional(s.Model, other.Model) &&
		equalOptional(s.IdentifierForVendor, other.IdentifierForVendor) &&
		equalOptional(s.TimeZone, other.TimeZone) &&
		equalOptional(s.Email, other.Email) &&
		equalOptional(s.DeviceToken, other.DeviceToken) &&
		equalOptional(s.OriginalTransactionID, other.OriginalTransactionID) &&
		maps.Equal(s.CustomInfo, other.CustomInfo)
}

func equalOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// CustomInfo is a string-keyed mapping of custom user properties.
// Insertion order is irrelevant.
type CustomInfo map[string]string

// Upsert sets key to value, overwriting any previous value.
func (c CustomInfo) Upsert(key, value string) {
	c[key] = value
}

// Clone returns an independent copy of c. A nil mapping stays nil.
func (c CustomInfo) Clone() CustomInfo {
	if c == nil {
		return nil
	}
	return maps.Clone(c)
}

// StringPtr returns a pointer to v, or nil when v is empty.
func StringPtr(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
