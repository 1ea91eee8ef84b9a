// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the sandbox HTTP server until its context is cancelled.
package server
