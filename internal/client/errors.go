// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrNoCommand is returned when no command is given.
	ErrNoCommand = errors.New("no command given")

	// ErrUnknownCommand is returned for a command the harness does not know.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrWrongArguments is returned when a command gets too few or too many
	// arguments.
	ErrWrongArguments = errors.New("wrong number of arguments")

	// ErrNoAction is returned when a payload or link carries no valid action.
	ErrNoAction = errors.New("no action found")
)
