package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAuthConfigs indicates invalid authentication settings
	// (for example, a credential map entry with an empty username or
	// secret).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)
