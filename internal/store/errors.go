// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPreferenceNotFound is returned when no value is stored under the
	// requested key in the current suite.
	ErrPreferenceNotFound = errors.New("preference was not found")

	// ErrStorageClosed is returned by an in-memory storage after Close.
	ErrStorageClosed = errors.New("storage is closed")

	// ErrSubmissionsNotFound is returned by the sandbox recorder for a user
	// it holds nothing for, or whose submissions expired.
	ErrSubmissionsNotFound = errors.New("no submissions recorded for user")
)

// Low-level database operation errors. These are wrapped by storage methods
// when a SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a preference row fails.
	ErrScanningRow = errors.New("failed to scan preference row")
)
