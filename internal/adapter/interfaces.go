// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the user-management server.
//
// The primary abstraction is [ServerAdapter], which decouples callers from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-mgmt/models"
)

// ServerAdapter defines transport-agnostic communication with the
// user-management server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful IssueToken.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// IssueToken exchanges the configured credentials for a bearer token.
	// On success it stores the token via SetToken and returns it.
	IssueToken(ctx context.Context, request models.AuthRequest) (string, error)

	// ListUsers fetches all users currently stored on the server.
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUser fetches one user by id. Returns [ErrNotFound] (wrapped) when
	// the id is unknown.
	GetUser(ctx context.Context, id int) (models.User, error)

	// CreateUser creates a new user. Returns [ErrBadRequest] (wrapped) on
	// validation failure and [ErrConflict] (wrapped) when the email is
	// already taken.
	CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error)

	// UpdateUser replaces both fields of the identified user. Error contract
	// matches CreateUser, plus [ErrNotFound] (wrapped) for an unknown id.
	UpdateUser(ctx context.Context, id int, request models.UpdateUserRequest) (models.User, error)

	// DeleteUser removes one user by id. Returns [ErrNotFound] (wrapped)
	// when the id is unknown.
	DeleteUser(ctx context.Context, id int) error
}
