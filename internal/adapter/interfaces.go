// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a Go client for the contact book REST API.
//
// [ContactBookAdapter] hides the JSON envelope and the session header:
// Login stores the issued token, every later call sends it, Logout drops it.
// Failure statuses are mapped by mapHTTPError to the sentinels of errors.go
// so callers can use [errors.Is] (for example [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-contacts/models"
)

// ContactBookAdapter is the client side of every API operation.
type ContactBookAdapter interface {
	// SetToken stores the session token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored session token, or "" if there is none.
	Token() string

	Register(ctx context.Context, request models.RegisterUserRequest) (models.UserResponse, error)

	// Login authenticates and stores the issued token via SetToken.
	Login(ctx context.Context, request models.LoginUserRequest) (string, error)

	CurrentUser(ctx context.Context) (models.UserResponse, error)
	UpdateCurrentUser(ctx context.Context, request models.UpdateUserRequest) (models.UserResponse, error)

	// Logout revokes the session on the server and forgets the token.
	Logout(ctx context.Context) error

	CreateContact(ctx context.Context, request models.CreateContactRequest) (models.Contact, error)
	GetContact(ctx context.Context, contactID int64) (models.Contact, error)
	UpdateContact(ctx context.Context, request models.UpdateContactRequest) (models.Contact, error)
	RemoveContact(ctx context.Context, contactID int64) error
	SearchContacts(ctx context.Context, request models.SearchContactRequest) ([]models.Contact, models.Paging, error)

	CreateAddress(ctx context.Context, contactID int64, request models.CreateAddressRequest) (models.Address, error)
	GetAddress(ctx context.Context, contactID, addressID int64) (models.Address, error)
	UpdateAddress(ctx context.Context, contactID int64, request models.UpdateAddressRequest) (models.Address, error)
	RemoveAddress(ctx context.Context, contactID, addressID int64) error
	ListAddresses(ctx context.Context, contactID int64) ([]models.Address, error)

	// Ping reports whether the server and its store are reachable.
	Ping(ctx context.Context) error
}
