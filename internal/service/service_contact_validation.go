// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/validators"
	"github.com/MKhiriev/go-contacts/models"
)

// ContactValidationService validates and normalizes contact requests and
// path ids before they reach the wrapped ContactService.
type ContactValidationService struct {
	inner     ContactService
	validator validators.Validator
}

func NewContactValidationService() ContactServiceWrapper {
	return &ContactValidationService{
		validator: validators.NewContactBookValidator(),
	}
}

func (v *ContactValidationService) Create(ctx context.Context, actor models.User, request *models.CreateContactRequest) (models.Contact, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Contact{}, fmt.Errorf("error during contact validation before saving: %w", err)
	}

	return v.inner.Create(ctx, actor, request)
}

func (v *ContactValidationService) Get(ctx context.Context, actor models.User, contactID int64) (models.Contact, error) {
	if err := v.validator.Validate(ctx, validators.ID(contactID), "contactId"); err != nil {
		return models.Contact{}, fmt.Errorf("error during contact id validation: %w", err)
	}

	return v.inner.Get(ctx, actor, contactID)
}

func (v *ContactValidationService) Update(ctx context.Context, actor models.User, request *models.UpdateContactRequest) (models.Contact, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Contact{}, fmt.Errorf("error during contact validation before update: %w", err)
	}

	return v.inner.Update(ctx, actor, request)
}

func (v *ContactValidationService) Remove(ctx context.Context, actor models.User, contactID int64) error {
	if err := v.validator.Validate(ctx, validators.ID(contactID), "contactId"); err != nil {
		return fmt.Errorf("error during contact id validation: %w", err)
	}

	return v.inner.Remove(ctx, actor, contactID)
}

func (v *ContactValidationService) Search(ctx context.Context, actor models.User, request *models.SearchContactRequest) ([]models.Contact, models.Paging, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return nil, models.Paging{}, fmt.Errorf("error during search validation: %w", err)
	}

	return v.inner.Search(ctx, actor, request)
}

func (v *ContactValidationService) Wrap(wrapped ContactService) ContactService {
	v.inner = wrapped
	return v
}
