package store

import (
	"github.com/MKhiriev/go-user-mgmt/internal/config"
	"github.com/MKhiriev/go-user-mgmt/internal/logger"
)

// Storages aggregates all stores the application needs, wired once at
// startup and injected into the service layer.
type Storages struct {
	UserRepository UserRepository
	TokenStore     TokenStore
}

// NewStorages constructs the in-memory stores. The token store is seeded
// with the initial bearer tokens from cfg.
func NewStorages(cfg config.Auth, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(logger),
		TokenStore:     NewTokenStore(cfg.Tokens, logger),
	}
}
