// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Response bodies written by the authentication middleware. Their exact
// wording is part of the public API contract.
const (
	// MsgMissingOrInvalidToken is the 401 body written when the
	// "Authorization" header is absent, does not carry the Bearer scheme,
	// or carries an empty token value.
	MsgMissingOrInvalidToken = "Unauthorized: Missing or invalid token"

	// MsgInvalidToken is the 401 body written when a well-formed bearer
	// token is presented but is not a member of the token store.
	MsgInvalidToken = "Unauthorized: Invalid token"
)

// MsgInternalServerError is the error field of every 500 response body.
const MsgInternalServerError = "Internal server error."

// MsgEmailAlreadyExists is the message field of every 409 response body.
const MsgEmailAlreadyExists = "Email already exists."

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not carry the "Bearer " scheme prefix.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
