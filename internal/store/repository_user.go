package store

import (
	"context"
	"strings"
	"sync"

	"github.com/MKhiriev/go-user-mgmt/internal/logger"
	"github.com/MKhiriev/go-user-mgmt/models"
)

// userRepository is the in-memory implementation of [UserRepository].
// Users live in a slice in insertion order; nextID is strictly greater
// than every id ever issued and is never rewound, so ids are unique for
// the lifetime of the process even across deletions.
//
// A single mutex guards both the slice and nextID. Create and Update run
// their email-uniqueness check and the write inside one critical section,
// which is what upholds the no-duplicate-emails invariant under
// concurrent requests.
type userRepository struct {
	logger *logger.Logger

	mu     sync.Mutex
	users  []models.User
	nextID int
}

// NewUserRepository constructs an empty [UserRepository].
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		logger: logger,
		nextID: 1,
	}
}

func (r *userRepository) GetAll(ctx context.Context) []models.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]models.User, len(r.users))
	copy(all, r.users)
	return all
}

func (r *userRepository) GetByID(ctx context.Context, id int) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i >= 0 {
		return r.users[i], nil
	}

	return models.User{}, ErrUserNotFound
}

func (r *userRepository) EmailExists(ctx context.Context, email string, excludingID int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.emailTaken(email, excludingID)
}

func (r *userRepository) Create(ctx context.Context, name, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(email, 0) {
		log.Debug().Str("email", email).Msg("email already taken")
		return models.User{}, ErrEmailAlreadyExists
	}

	user := models.User{
		ID:    r.nextID,
		Name:  name,
		Email: email,
	}
	r.nextID++
	r.users = append(r.users, user)

	log.Debug().Int("id", user.ID).Msg("user created")
	return user, nil
}

func (r *userRepository) Update(ctx context.Context, id int, name, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	// conflict check runs before the id lookup so that an update colliding
	// with another user's email reports the conflict even for unknown ids
	if r.emailTaken(email, id) {
		log.Debug().Str("email", email).Msg("email already taken")
		return models.User{}, ErrEmailAlreadyExists
	}

	i := r.indexOf(id)
	if i < 0 {
		return models.User{}, ErrUserNotFound
	}

	updated := models.User{
		ID:    id,
		Name:  name,
		Email: email,
	}
	r.users[i] = updated

	log.Debug().Int("id", id).Msg("user updated")
	return updated, nil
}

func (r *userRepository) Delete(ctx context.Context, id int) error {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrUserNotFound
	}

	r.users = append(r.users[:i], r.users[i+1:]...)

	log.Debug().Int("id", id).Msg("user deleted")
	return nil
}

// indexOf returns the slice index of the user with the given id, or -1.
// Callers must hold the mutex.
func (r *userRepository) indexOf(id int) int {
	for i, user := range r.users {
		if user.ID == id {
			return i
		}
	}

	return -1
}

// emailTaken reports whether a user other than excludingID holds email,
// compared case-insensitively. Callers must hold the mutex.
func (r *userRepository) emailTaken(email string, excludingID int) bool {
	for _, user := range r.users {
		if user.ID != excludingID && strings.EqualFold(user.Email, email) {
			return true
		}
	}

	return false
}
