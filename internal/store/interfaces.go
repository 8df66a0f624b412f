// Package store implements the in-memory persistence layer of the
// application: the user repository and the bearer-token store. Both are
// safe for concurrent use by many request goroutines; each serializes
// access through a single mutex.
package store

import (
	"context"

	"github.com/MKhiriev/go-user-mgmt/models"
)

// UserRepository is the data-access contract for user records.
//
// Create and Update perform the case-insensitive email-uniqueness check and
// the write under one lock acquisition, so concurrent writers can never
// insert duplicate emails. EmailExists remains available as a read-only
// probe, but callers must not build check-then-act sequences on it.
type UserRepository interface {
	// GetAll returns all users in insertion order. The returned slice is a
	// copy and may be retained or modified by the caller.
	GetAll(ctx context.Context) []models.User

	// GetByID returns the user with the given id, or ErrUserNotFound.
	GetByID(ctx context.Context, id int) (models.User, error)

	// EmailExists reports whether any user other than excludingID has the
	// given email, compared case-insensitively. Pass excludingID = 0 to
	// exempt nobody (ids start at 1).
	EmailExists(ctx context.Context, email string, excludingID int) bool

	// Create assigns the next sequential id and appends a new user.
	// Returns ErrEmailAlreadyExists if the email is already taken.
	Create(ctx context.Context, name, email string) (models.User, error)

	// Update replaces the stored name and email of the user with the given
	// id. Returns ErrEmailAlreadyExists if another user holds the email,
	// or ErrUserNotFound if the id is unknown. The conflict check runs
	// before the id lookup.
	Update(ctx context.Context, id int, name, email string) (models.User, error)

	// Delete removes the user with the given id, or returns
	// ErrUserNotFound. Deleted ids are never reassigned.
	Delete(ctx context.Context, id int) error
}

// TokenStore is a process-lifetime set of valid bearer tokens.
// Tokens are opaque strings; they are never expired or revoked.
type TokenStore interface {
	// Contains reports whether token is a member of the set.
	Contains(token string) bool

	// Add inserts token into the set and returns it. Adding an existing
	// token is a no-op.
	Add(token string) string

	// FirstOrDefault returns an arbitrary existing token, or ok=false when
	// the set is empty.
	FirstOrDefault() (token string, ok bool)
}
