// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"
)

// EnvDevelopment is the App.Env value that switches the service into
// development mode. In development mode the fault boundary includes the
// underlying error message in 500 response bodies.
const EnvDevelopment = "development"

// StructuredConfig is the top-level configuration container for the
// go-user-mgmt application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the runtime environment
	// name.
	App App `envPrefix:"APP_"`

	// Auth holds the static authentication material: the initial bearer
	// tokens and the username→secret credential map.
	Auth Auth `envPrefix:"AUTH_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Env is the runtime environment name ("development" or "production").
	// Defaults to "production"; see [EnvDevelopment].
	// Env var: APP_ENV
	Env string `env:"ENV"`
}

// IsDevelopment reports whether the application runs in development mode.
// The comparison is case-insensitive.
func (a App) IsDevelopment() bool {
	return strings.EqualFold(a.Env, EnvDevelopment)
}

// Auth holds the static authentication material consumed at startup.
// Both fields are read-only after the configuration has been built.
type Auth struct {
	// Tokens is the initial set of valid bearer tokens seeded into the
	// token store at startup.
	// Env var: AUTH_TOKENS (comma-separated)
	Tokens []string `env:"TOKENS" envSeparator:","`

	// Users is the username→secret credential map checked by the token
	// issuance endpoint. Secrets are compared byte-for-byte.
	// Env var: AUTH_USERS (comma-separated "user:secret" pairs)
	Users map[string]string `env:"USERS" envSeparator:"," envKeyValSeparator:":"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env var: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env var: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
