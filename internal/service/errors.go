// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Sentinel errors returned by the authentication service. Callers match
// against them with [errors.Is].
var (
	// ErrInvalidCredentials is returned by IssueToken when the username is
	// not present in the credential map or the secret does not match.
	ErrInvalidCredentials = errors.New("invalid username/secret")

	// ErrInvalidToken is returned by ValidateToken when the presented
	// bearer token is not a member of the token store.
	ErrInvalidToken = errors.New("token is not valid")
)
