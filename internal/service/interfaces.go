// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-contacts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService manages accounts and their single active session.
type UserService interface {
	Register(ctx context.Context, request *models.RegisterUserRequest) (models.UserResponse, error)
	// Login issues a new session token, replacing any previous one.
	Login(ctx context.Context, request *models.LoginUserRequest) (models.TokenResponse, error)
	Get(ctx context.Context, actor models.User) (models.UserResponse, error)
	Update(ctx context.Context, actor models.User, request *models.UpdateUserRequest) (models.UserResponse, error)
	// Logout clears the session token of actor.
	Logout(ctx context.Context, actor models.User) error
	// Authenticate resolves a session token to its user or fails with
	// [ErrUnauthenticated].
	Authenticate(ctx context.Context, token string) (models.User, error)
}

// ContactService manages the contacts owned by the acting user.
type ContactService interface {
	Create(ctx context.Context, actor models.User, request *models.CreateContactRequest) (models.Contact, error)
	Get(ctx context.Context, actor models.User, contactID int64) (models.Contact, error)
	Update(ctx context.Context, actor models.User, request *models.UpdateContactRequest) (models.Contact, error)
	// Remove deletes the contact together with its addresses.
	Remove(ctx context.Context, actor models.User, contactID int64) error
	Search(ctx context.Context, actor models.User, request *models.SearchContactRequest) ([]models.Contact, models.Paging, error)
}

// AddressService manages the addresses of a contact owned by the acting user.
type AddressService interface {
	Create(ctx context.Context, actor models.User, contactID int64, request *models.CreateAddressRequest) (models.Address, error)
	Get(ctx context.Context, actor models.User, contactID, addressID int64) (models.Address, error)
	Update(ctx context.Context, actor models.User, contactID int64, request *models.UpdateAddressRequest) (models.Address, error)
	Remove(ctx context.Context, actor models.User, contactID, addressID int64) error
	List(ctx context.Context, actor models.User, contactID int64) ([]models.Address, error)
}

// OwnershipGuard checks that a record exists under its owner before any
// operation touches it.
type OwnershipGuard interface {
	// RequireContact fails with [ErrContactNotFound] unless exactly one
	// contact with contactID belongs to actor.
	RequireContact(ctx context.Context, actor models.User, contactID int64) error
	// RequireAddress fails with [ErrAddressNotFound] unless exactly one
	// address with addressID belongs to contactID.
	RequireAddress(ctx context.Context, contactID, addressID int64) error
}

// HealthService reports whether the server can reach its store.
type HealthService interface {
	Ping(ctx context.Context) error
}
