// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the SDK.
// It defines the Worker interface, a Workers aggregate that allows
// running multiple workers in a unified way, and the fire-and-forget
// [Dispatcher] that performs outbound sends off the caller's goroutine.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to return promptly and spawn goroutines
// internally.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run() {
//	    // start background processing
//	}
type Worker interface {
	Run()
}

// Stopper is implemented by workers that hold goroutines which must be
// drained on shutdown.
type Stopper interface {
	Stop()
}

// Task is a unit of fire-and-forget work. A returned error is logged and
// never retried.
type Task func(ctx context.Context) error

// TaskDispatcher accepts tasks for asynchronous execution.
type TaskDispatcher interface {
	// Dispatch schedules task and reports whether it was accepted. It never
	// blocks the caller.
	Dispatch(name string, task Task) bool
}
