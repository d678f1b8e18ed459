// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/internal/validators"
	"github.com/MKhiriev/go-contacts/models"
)

// contactService is the concrete implementation of ContactService. Every
// operation on an existing contact passes the ownership guard first.
type contactService struct {
	contactRepository store.ContactRepository
	guard             OwnershipGuard
	logger            *logger.Logger
}

func NewContactService(contactRepository store.ContactRepository, guard OwnershipGuard, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		guard:             guard,
		logger:            logger,
	}
}

func (s *contactService) Create(ctx context.Context, actor models.User, request *models.CreateContactRequest) (models.Contact, error) {
	contact, err := s.contactRepository.Create(ctx, models.Contact{
		Username:  actor.Username,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Phone:     request.Phone,
	})
	if err != nil {
		return models.Contact{}, fmt.Errorf("contact creation ended with error: %w", err)
	}

	return contact, nil
}

func (s *contactService) Get(ctx context.Context, actor models.User, contactID int64) (models.Contact, error) {
	if err := s.guard.RequireContact(ctx, actor, contactID); err != nil {
		return models.Contact{}, err
	}

	contact, err := s.contactRepository.Find(ctx, actor.Username, contactID)
	if err != nil {
		return models.Contact{}, contactError(err, "contact search ended with error")
	}

	return contact, nil
}

func (s *contactService) Update(ctx context.Context, actor models.User, request *models.UpdateContactRequest) (models.Contact, error) {
	if err := s.guard.RequireContact(ctx, actor, request.ID); err != nil {
		return models.Contact{}, err
	}

	contact, err := s.contactRepository.Update(ctx, models.ContactUpdate{
		ID:        request.ID,
		Username:  actor.Username,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Phone:     request.Phone,
	})
	if err != nil {
		return models.Contact{}, contactError(err, "contact update ended with error")
	}

	return contact, nil
}

func (s *contactService) Remove(ctx context.Context, actor models.User, contactID int64) error {
	if err := s.guard.RequireContact(ctx, actor, contactID); err != nil {
		return err
	}

	if err := s.contactRepository.Delete(ctx, actor.Username, contactID); err != nil {
		return contactError(err, "contact removal ended with error")
	}

	return nil
}

// Search returns one page of the actor's contacts matching the request
// filters. A page past the end yields no contacts and the real totals.
func (s *contactService) Search(ctx context.Context, actor models.User, request *models.SearchContactRequest) ([]models.Contact, models.Paging, error) {
	page, size := validators.DefaultPage, validators.DefaultSize
	if request.Page != nil {
		page = *request.Page
	}
	if request.Size != nil {
		size = *request.Size
	}

	filter := models.ContactFilter{
		Username: actor.Username,
		Name:     request.Name,
		Email:    request.Email,
		Phone:    request.Phone,
		Offset:   pageOffset(page, size),
		Limit:    uint64(size),
	}

	contacts, total, err := s.contactRepository.Search(ctx, filter)
	if err != nil {
		return nil, models.Paging{}, fmt.Errorf("contact search ended with error: %w", err)
	}

	return contacts, models.NewPaging(page, size, total), nil
}

// pageOffset returns the number of rows before page. Offsets that do not fit
// a signed 64-bit SQL integer are clamped to math.MaxInt64, which is still
// past the last row.
func pageOffset(page, size int) uint64 {
	if page <= 1 || size <= 0 {
		return 0
	}

	skipped, rows := uint64(page-1), uint64(size)
	if skipped > math.MaxInt64/rows {
		return math.MaxInt64
	}

	return skipped * rows
}

// contactError maps a vanished contact to ErrContactNotFound and wraps
// anything else.
func contactError(err error, msg string) error {
	if errors.Is(err, store.ErrNoContactWasFound) {
		return ErrContactNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
