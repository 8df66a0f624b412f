package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseEnv_FullConfig verifies that every supported environment variable
// lands in the expected StructuredConfig field.
func TestParseEnv_FullConfig(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("AUTH_TOKENS", "tok-one,tok-two")
	t.Setenv("AUTH_USERS", "alice:wonder,bob:builder")
	t.Setenv("SERVER_ADDRESS", "localhost:9090")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "45s")
	t.Setenv("CONFIG", "/tmp/cfg.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, []string{"tok-one", "tok-two"}, cfg.Auth.Tokens)
	assert.Equal(t, map[string]string{"alice": "wonder", "bob": "builder"}, cfg.Auth.Users)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/tmp/cfg.json", cfg.JSONFilePath)
}

// TestParseEnv_EmptyEnvironment verifies that an empty environment produces
// an all-zero config rather than an error.
func TestParseEnv_EmptyEnvironment(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.App.Env)
	assert.Empty(t, cfg.Auth.Tokens)
	assert.Empty(t, cfg.Auth.Users)
}

// TestApp_IsDevelopment verifies the case-insensitive development-mode check.
func TestApp_IsDevelopment(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{env: "development", want: true},
		{env: "Development", want: true},
		{env: "DEVELOPMENT", want: true},
		{env: "production", want: false},
		{env: "", want: false},
	}

	for _, tt := range tests {
		t.Run("env="+tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, App{Env: tt.env}.IsDevelopment())
		})
	}
}
