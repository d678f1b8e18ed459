// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/internal/validators"
	"github.com/MKhiriev/go-contacts/models"
)

// ownershipGuard implements [OwnershipGuard] with existence-counting queries.
// Nothing is cached: every call hits the store, so a record deleted by a
// concurrent request is seen as missing.
type ownershipGuard struct {
	contactRepository store.ContactRepository
	addressRepository store.AddressRepository
	validator         validators.Validator
}

func NewOwnershipGuard(contactRepository store.ContactRepository, addressRepository store.AddressRepository) OwnershipGuard {
	return &ownershipGuard{
		contactRepository: contactRepository,
		addressRepository: addressRepository,
		validator:         validators.NewContactBookValidator(),
	}
}

func (g *ownershipGuard) RequireContact(ctx context.Context, actor models.User, contactID int64) error {
	if err := g.validator.Validate(ctx, validators.ID(contactID), "contactId"); err != nil {
		return err
	}

	count, err := g.contactRepository.Count(ctx, actor.Username, contactID)
	if err != nil {
		return fmt.Errorf("error checking contact ownership: %w", err)
	}
	if count != 1 {
		return ErrContactNotFound
	}

	return nil
}

func (g *ownershipGuard) RequireAddress(ctx context.Context, contactID, addressID int64) error {
	if err := g.validator.Validate(ctx, validators.ID(addressID), "addressId"); err != nil {
		return err
	}

	count, err := g.addressRepository.Count(ctx, contactID, addressID)
	if err != nil {
		return fmt.Errorf("error checking address ownership: %w", err)
	}
	if count != 1 {
		return ErrAddressNotFound
	}

	return nil
}
