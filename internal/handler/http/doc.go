// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST surface of the sandbox backend.
//
// It exposes the three endpoints the SDK talks to, a debug endpoint listing
// what was received per user and the middleware chain in front of them:
// request tracing, access logging, gzip and header authentication. Requests
// are delegated to the sandbox services.
package http
