// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line harness around the SDK.
//
// The harness plays the host application: it initialises the SDK against a
// backend, runs a single command (attribute updates, transaction updates,
// action decoding or offer signing) and tears the SDK down, waiting for
// queued uploads.
package client
