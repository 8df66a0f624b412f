// Package service implements the business logic of the application:
// credential checking and token issuance, and the user CRUD operations
// composed from the validator and the user repository.
package service

import (
	"context"

	"github.com/MKhiriev/go-user-mgmt/models"
)

// AuthService issues and checks opaque bearer tokens.
type AuthService interface {
	// IssueToken checks the supplied credentials against the configured
	// credential map and returns a bearer token. An existing stored token
	// is reused when present; otherwise a new one is minted and stored.
	// Returns ErrInvalidCredentials when the username is unknown or the
	// secret does not match.
	IssueToken(ctx context.Context, request models.AuthRequest) (models.AuthResponse, error)

	// ValidateToken returns nil when token is a member of the token
	// store, ErrInvalidToken otherwise.
	ValidateToken(ctx context.Context, token string) error
}

// UserService exposes the user CRUD operations backed by the in-memory
// repository. Inputs are validated and normalized before storage; failures
// surface as validators.FieldErrors or wrapped store sentinel errors.
type UserService interface {
	ListUsers(ctx context.Context) []models.User
	GetUser(ctx context.Context, id int) (models.User, error)
	CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error)
	UpdateUser(ctx context.Context, id int, request models.UpdateUserRequest) (models.User, error)
	DeleteUser(ctx context.Context, id int) error
}
