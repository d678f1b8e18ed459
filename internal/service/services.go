// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/crypto"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/store"
)

// Services groups the business services exposed to the transport layer.
// User, contact and address services are wrapped with validation.
type Services struct {
	UserService    UserService
	ContactService ContactService
	AddressService AddressService
	HealthService  HealthService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	hasher := crypto.NewBcryptHasher(cfg.PasswordHashCost)
	guard := NewOwnershipGuard(storages.ContactRepository, storages.AddressRepository)

	return &Services{
		UserService: NewUserValidationService().
			Wrap(NewUserService(storages.UserRepository, hasher, cfg, logger)),
		ContactService: NewContactValidationService().
			Wrap(NewContactService(storages.ContactRepository, guard, logger)),
		AddressService: NewAddressValidationService().
			Wrap(NewAddressService(storages.AddressRepository, guard, logger)),
		HealthService: NewHealthService(storages.HealthChecker),
	}
}
