// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/validators"
	"github.com/MKhiriev/go-contacts/models"
)

// AddressValidationService validates and normalizes address requests and
// path ids before they reach the wrapped AddressService.
type AddressValidationService struct {
	inner     AddressService
	validator validators.Validator
}

func NewAddressValidationService() AddressServiceWrapper {
	return &AddressValidationService{
		validator: validators.NewContactBookValidator(),
	}
}

func (v *AddressValidationService) Create(ctx context.Context, actor models.User, contactID int64, request *models.CreateAddressRequest) (models.Address, error) {
	if err := v.validateContactID(ctx, contactID); err != nil {
		return models.Address{}, err
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Address{}, fmt.Errorf("error during address validation before saving: %w", err)
	}

	return v.inner.Create(ctx, actor, contactID, request)
}

func (v *AddressValidationService) Get(ctx context.Context, actor models.User, contactID, addressID int64) (models.Address, error) {
	if err := v.validateIDs(ctx, contactID, addressID); err != nil {
		return models.Address{}, err
	}

	return v.inner.Get(ctx, actor, contactID, addressID)
}

func (v *AddressValidationService) Update(ctx context.Context, actor models.User, contactID int64, request *models.UpdateAddressRequest) (models.Address, error) {
	if err := v.validateContactID(ctx, contactID); err != nil {
		return models.Address{}, err
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Address{}, fmt.Errorf("error during address validation before update: %w", err)
	}

	return v.inner.Update(ctx, actor, contactID, request)
}

func (v *AddressValidationService) Remove(ctx context.Context, actor models.User, contactID, addressID int64) error {
	if err := v.validateIDs(ctx, contactID, addressID); err != nil {
		return err
	}

	return v.inner.Remove(ctx, actor, contactID, addressID)
}

func (v *AddressValidationService) List(ctx context.Context, actor models.User, contactID int64) ([]models.Address, error) {
	if err := v.validateContactID(ctx, contactID); err != nil {
		return nil, err
	}

	return v.inner.List(ctx, actor, contactID)
}

func (v *AddressValidationService) Wrap(wrapped AddressService) AddressService {
	v.inner = wrapped
	return v
}

func (v *AddressValidationService) validateContactID(ctx context.Context, contactID int64) error {
	if err := v.validator.Validate(ctx, validators.ID(contactID), "contactId"); err != nil {
		return fmt.Errorf("error during contact id validation: %w", err)
	}
	return nil
}

func (v *AddressValidationService) validateIDs(ctx context.Context, contactID, addressID int64) error {
	if err := v.validateContactID(ctx, contactID); err != nil {
		return err
	}
	if err := v.validator.Validate(ctx, validators.ID(addressID), "addressId"); err != nil {
		return fmt.Errorf("error during address id validation: %w", err)
	}
	return nil
}
