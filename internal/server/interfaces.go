// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is the sandbox process lifecycle.
type Server interface {
	// Run serves until ctx is cancelled or the listener fails. A cancelled
	// context triggers a graceful shutdown and a nil return.
	Run(ctx context.Context) error
}
