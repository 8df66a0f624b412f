package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-mgmt/internal/logger"
	"github.com/MKhiriev/go-user-mgmt/internal/store"
	"github.com/MKhiriev/go-user-mgmt/internal/validators"
	"github.com/MKhiriev/go-user-mgmt/models"
)

// userService is the concrete implementation of UserService. Write
// operations run input through the validator before touching the
// repository; uniqueness and existence checks happen inside the repository
// under its lock.
type userService struct {
	repository store.UserRepository
	validator  validators.Validator
	logger     *logger.Logger
}

// NewUserService constructs a UserService on top of the given repository.
func NewUserService(repository store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		repository: repository,
		validator:  validator,
		logger:     logger,
	}
}

// ListUsers returns every stored user in ascending id order.
func (u *userService) ListUsers(ctx context.Context) []models.User {
	return u.repository.GetAll(ctx)
}

// GetUser returns the user with the given id, or a wrapped
// store.ErrUserNotFound.
func (u *userService) GetUser(ctx context.Context, id int) (models.User, error) {
	user, err := u.repository.GetByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("get user id=%d: %w", id, err)
	}

	return user, nil
}

// CreateUser validates and normalizes the request and stores a new user.
// Returns validators.FieldErrors on invalid input and a wrapped
// store.ErrEmailAlreadyExists when the email is already taken.
func (u *userService) CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	if fieldErrors := u.validator.Validate(request.Name, request.Email); fieldErrors != nil {
		return models.User{}, fieldErrors
	}
	name, email := u.validator.NormalizeInputs(request.Name, request.Email)

	user, err := u.repository.Create(ctx, name, email)
	if err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	logger.FromContext(ctx).Info().Int("id", user.ID).Msg("user created")

	return user, nil
}

// UpdateUser validates and normalizes the request and replaces both fields
// of the identified user. Error contract matches CreateUser, plus a wrapped
// store.ErrUserNotFound for an unknown id.
func (u *userService) UpdateUser(ctx context.Context, id int, request models.UpdateUserRequest) (models.User, error) {
	if fieldErrors := u.validator.Validate(request.Name, request.Email); fieldErrors != nil {
		return models.User{}, fieldErrors
	}
	name, email := u.validator.NormalizeInputs(request.Name, request.Email)

	user, err := u.repository.Update(ctx, id, name, email)
	if err != nil {
		return models.User{}, fmt.Errorf("update user id=%d: %w", id, err)
	}
	logger.FromContext(ctx).Info().Int("id", user.ID).Msg("user updated")

	return user, nil
}

// DeleteUser removes the user with the given id, or returns a wrapped
// store.ErrUserNotFound.
func (u *userService) DeleteUser(ctx context.Context, id int) error {
	if err := u.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user id=%d: %w", id, err)
	}
	logger.FromContext(ctx).Info().Int("id", id).Msg("user deleted")

	return nil
}
