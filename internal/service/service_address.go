// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/models"
)

// addressService is the concrete implementation of AddressService. The
// parent contact is checked against the actor before every operation, and
// an existing address against its contact.
type addressService struct {
	addressRepository store.AddressRepository
	guard             OwnershipGuard
	logger            *logger.Logger
}

func NewAddressService(addressRepository store.AddressRepository, guard OwnershipGuard, logger *logger.Logger) AddressService {
	return &addressService{
		addressRepository: addressRepository,
		guard:             guard,
		logger:            logger,
	}
}

func (s *addressService) Create(ctx context.Context, actor models.User, contactID int64, request *models.CreateAddressRequest) (models.Address, error) {
	if err := s.guard.RequireContact(ctx, actor, contactID); err != nil {
		return models.Address{}, err
	}

	address, err := s.addressRepository.Create(ctx, models.Address{
		ContactID:  contactID,
		Street:     request.Street,
		City:       request.City,
		Province:   request.Province,
		Country:    request.Country,
		PostalCode: request.PostalCode,
	})
	if err != nil {
		return models.Address{}, fmt.Errorf("address creation ended with error: %w", err)
	}

	return address, nil
}

func (s *addressService) Get(ctx context.Context, actor models.User, contactID, addressID int64) (models.Address, error) {
	if err := s.requireAddress(ctx, actor, contactID, addressID); err != nil {
		return models.Address{}, err
	}

	address, err := s.addressRepository.Find(ctx, contactID, addressID)
	if err != nil {
		return models.Address{}, addressError(err, "address search ended with error")
	}

	return address, nil
}

func (s *addressService) Update(ctx context.Context, actor models.User, contactID int64, request *models.UpdateAddressRequest) (models.Address, error) {
	if err := s.requireAddress(ctx, actor, contactID, request.ID); err != nil {
		return models.Address{}, err
	}

	address, err := s.addressRepository.Update(ctx, models.AddressUpdate{
		ID:         request.ID,
		ContactID:  contactID,
		Street:     request.Street,
		City:       request.City,
		Province:   request.Province,
		Country:    request.Country,
		PostalCode: request.PostalCode,
	})
	if err != nil {
		return models.Address{}, addressError(err, "address update ended with error")
	}

	return address, nil
}

func (s *addressService) Remove(ctx context.Context, actor models.User, contactID, addressID int64) error {
	if err := s.requireAddress(ctx, actor, contactID, addressID); err != nil {
		return err
	}

	if err := s.addressRepository.Delete(ctx, contactID, addressID); err != nil {
		return addressError(err, "address removal ended with error")
	}

	return nil
}

func (s *addressService) List(ctx context.Context, actor models.User, contactID int64) ([]models.Address, error) {
	if err := s.guard.RequireContact(ctx, actor, contactID); err != nil {
		return nil, err
	}

	addresses, err := s.addressRepository.List(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("address listing ended with error: %w", err)
	}

	return addresses, nil
}

func (s *addressService) requireAddress(ctx context.Context, actor models.User, contactID, addressID int64) error {
	if err := s.guard.RequireContact(ctx, actor, contactID); err != nil {
		return err
	}

	return s.guard.RequireAddress(ctx, contactID, addressID)
}

func addressError(err error, msg string) error {
	if errors.Is(err, store.ErrNoAddressWasFound) {
		return ErrAddressNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
