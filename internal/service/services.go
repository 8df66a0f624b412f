// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-user-mgmt/internal/config"
	"github.com/MKhiriev/go-user-mgmt/internal/logger"
	"github.com/MKhiriev/go-user-mgmt/internal/store"
	"github.com/MKhiriev/go-user-mgmt/internal/validators"
)

// Services aggregates every business-logic service of the application.
type Services struct {
	AuthService
	UserService
}

// NewServices wires the service layer on top of the storage layer.
func NewServices(storages *store.Storages, cfg config.Auth, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.TokenStore, cfg, logger),
		UserService: NewUserService(storages.UserRepository, validators.NewUserValidator(), logger),
	}
}
