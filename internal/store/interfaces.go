// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-contacts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts and their session token.
type UserRepository interface {
	// CountByUsername returns how many users carry the username (0 or 1).
	CountByUsername(ctx context.Context, username string) (int64, error)
	// Create inserts a user. A duplicate username yields [ErrUsernameAlreadyExists].
	Create(ctx context.Context, user models.User) (models.User, error)
	// FindByUsername returns [ErrNoUserWasFound] when no user matches.
	FindByUsername(ctx context.Context, username string) (models.User, error)
	// FindByToken returns the user whose stored token equals token, or
	// [ErrNoUserWasFound].
	FindByToken(ctx context.Context, token string) (models.User, error)
	// Update applies the non-nil fields of update and returns the stored row.
	Update(ctx context.Context, update models.UserUpdate) (models.User, error)
	// SetToken stores token for the user; nil clears the session.
	SetToken(ctx context.Context, username string, token *string) error
}

// ContactRepository persists contacts. Every method is scoped to the owning
// username.
type ContactRepository interface {
	Count(ctx context.Context, username string, id int64) (int64, error)
	Create(ctx context.Context, contact models.Contact) (models.Contact, error)
	Find(ctx context.Context, username string, id int64) (models.Contact, error)
	Update(ctx context.Context, update models.ContactUpdate) (models.Contact, error)
	// Delete removes the contact together with its addresses in one transaction.
	Delete(ctx context.Context, username string, id int64) error
	// Search returns one page of matching contacts ordered by id and the
	// total number of matches ignoring paging.
	Search(ctx context.Context, filter models.ContactFilter) ([]models.Contact, int64, error)
}

// AddressRepository persists addresses. Every method is scoped to the parent
// contact id.
type AddressRepository interface {
	Count(ctx context.Context, contactID, id int64) (int64, error)
	Create(ctx context.Context, address models.Address) (models.Address, error)
	Find(ctx context.Context, contactID, id int64) (models.Address, error)
	Update(ctx context.Context, update models.AddressUpdate) (models.Address, error)
	Delete(ctx context.Context, contactID, id int64) error
	List(ctx context.Context, contactID int64) ([]models.Address, error)
}

// HealthChecker reports whether the database answers.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
