package service

import (
	"context"

	"github.com/MKhiriev/go-user-mgmt/internal/config"
	"github.com/MKhiriev/go-user-mgmt/internal/logger"
	"github.com/MKhiriev/go-user-mgmt/internal/store"
	"github.com/MKhiriev/go-user-mgmt/internal/utils"
	"github.com/MKhiriev/go-user-mgmt/models"
)

// authService is the concrete implementation of AuthService.
// It checks credentials against a static username→secret map loaded from
// configuration and hands out opaque bearer tokens backed by the token
// store.
type authService struct {
	// tokenStore holds every bearer token valid for the process lifetime.
	tokenStore store.TokenStore

	// users is the configured credential map. Read-only after construction.
	users map[string]string

	// tokenGenerator mints new opaque tokens when the store is empty.
	tokenGenerator *utils.UUIDGenerator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given token store
// and populated with the credential map from cfg.
//
// The returned service is safe for concurrent use; all state besides the
// token store is read-only after construction.
func NewAuthService(tokenStore store.TokenStore, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		tokenStore:     tokenStore,
		users:          cfg.Users,
		tokenGenerator: utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// IssueToken authenticates the caller and returns a bearer token.
//
// The username is looked up in the configured credential map and the secret
// is compared byte-for-byte. On success an arbitrary already-stored token
// is reused when the store is non-empty; otherwise a fresh token is minted
// and added to the store. Every caller therefore ends up sharing one
// process-wide token.
func (a *authService) IssueToken(ctx context.Context, request models.AuthRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	expectedSecret, ok := a.users[request.Username]
	if !ok || expectedSecret != request.Secret {
		log.Warn().Str("username", request.Username).Msg("credential check failed")
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	token, ok := a.tokenStore.FirstOrDefault()
	if !ok {
		token = a.tokenStore.Add(a.tokenGenerator.Generate())
		log.Info().Msg("minted new bearer token")
	}

	return models.AuthResponse{Token: token}, nil
}

// ValidateToken reports whether token is currently accepted.
func (a *authService) ValidateToken(ctx context.Context, token string) error {
	if !a.tokenStore.Contains(token) {
		return ErrInvalidToken
	}

	return nil
}
