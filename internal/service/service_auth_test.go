package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-mgmt/internal/config"
	"github.com/MKhiriev/go-user-mgmt/internal/logger"
	"github.com/MKhiriev/go-user-mgmt/internal/store"
	"github.com/MKhiriev/go-user-mgmt/models"
)

func newTestAuthService(t *testing.T, cfg config.Auth) (AuthService, store.TokenStore) {
	t.Helper()
	log := logger.Nop()
	tokenStore := store.NewTokenStore(cfg.Tokens, log)

	return NewAuthService(tokenStore, cfg, log), tokenStore
}

func TestAuthService_IssueToken_TableTest(t *testing.T) {
	cfg := config.Auth{
		Users: map[string]string{"admin": "s3cret"},
	}

	tests := []struct {
		name          string
		request       models.AuthRequest
		expectedError error
	}{
		{
			name:    "valid credentials",
			request: models.AuthRequest{Username: "admin", Secret: "s3cret"},
		},
		{
			name:          "unknown username",
			request:       models.AuthRequest{Username: "nobody", Secret: "s3cret"},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:          "wrong secret",
			request:       models.AuthRequest{Username: "admin", Secret: "guess"},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:          "secret comparison is case sensitive",
			request:       models.AuthRequest{Username: "admin", Secret: "S3CRET"},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:          "empty credentials",
			request:       models.AuthRequest{},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authService, _ := newTestAuthService(t, cfg)

			response, err := authService.IssueToken(context.Background(), tt.request)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, response.Token)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, response.Token)
		})
	}
}

func TestAuthService_IssueToken_ReusesConfiguredToken(t *testing.T) {
	cfg := config.Auth{
		Tokens: []string{"preconfigured-token"},
		Users:  map[string]string{"admin": "s3cret"},
	}
	authService, _ := newTestAuthService(t, cfg)

	response, err := authService.IssueToken(context.Background(), models.AuthRequest{Username: "admin", Secret: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "preconfigured-token", response.Token)
}

func TestAuthService_IssueToken_SharedAcrossCallers(t *testing.T) {
	cfg := config.Auth{
		Users: map[string]string{"admin": "s3cret", "ann": "hunter2"},
	}
	authService, tokenStore := newTestAuthService(t, cfg)

	first, err := authService.IssueToken(context.Background(), models.AuthRequest{Username: "admin", Secret: "s3cret"})
	require.NoError(t, err)
	second, err := authService.IssueToken(context.Background(), models.AuthRequest{Username: "ann", Secret: "hunter2"})
	require.NoError(t, err)

	assert.Equal(t, first.Token, second.Token)
	assert.True(t, tokenStore.Contains(first.Token))
}

func TestAuthService_ValidateToken(t *testing.T) {
	cfg := config.Auth{
		Tokens: []string{"known-token"},
		Users:  map[string]string{"admin": "s3cret"},
	}
	authService, _ := newTestAuthService(t, cfg)

	assert.NoError(t, authService.ValidateToken(context.Background(), "known-token"))
	assert.ErrorIs(t, authService.ValidateToken(context.Background(), "forged-token"), ErrInvalidToken)
	assert.ErrorIs(t, authService.ValidateToken(context.Background(), ""), ErrInvalidToken)
}
