// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the user repository. Callers match against
// them with [errors.Is] and translate them to HTTP statuses at the
// transport layer.
var (
	// ErrUserNotFound is returned when no user with the requested id
	// exists.
	ErrUserNotFound = errors.New("no user with such id was found")

	// ErrEmailAlreadyExists is returned when a create or update would
	// leave two users sharing the same email (case-insensitive).
	ErrEmailAlreadyExists = errors.New("email already exists")
)
