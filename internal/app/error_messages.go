// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// sandbox handlers and middleware.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies to describe the outcome of a request.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as JSON.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNoUserIDProvided is returned when the userId path segment is empty.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgInvalidReceipt is returned for an empty or non-base64 receipt.
	MsgInvalidReceipt = "invalid receipt"

	// MsgNoProductIDProvided is returned when an offer signature request
	// omits the product.
	MsgNoProductIDProvided = "no product ID provided"

	// MsgApplicationUsernameMismatch is returned when an offer is requested
	// for an application username other than the path user.
	MsgApplicationUsernameMismatch = "application username does not match user"

	// MsgDataNotFound is returned when nothing was recorded for the user.
	MsgDataNotFound = "data not found"
)
